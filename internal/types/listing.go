// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type ListingStatus string

const (
	ListingPending  ListingStatus = "PENDING"
	ListingApproved ListingStatus = "APPROVED"
	ListingRejected ListingStatus = "REJECTED"
	ListingDisabled ListingStatus = "DISABLED"
	ListingRented   ListingStatus = "RENTED"
)

func ParseListingStatus(s string) (ListingStatus, error) {
	switch st := ListingStatus(s); st {
	case ListingPending, ListingApproved, ListingRejected, ListingDisabled, ListingRented:
		return st, nil
	}

	return "", NewError(ErrValidation, "unknown listing status %q", s)
}

const (
	MinListingPrice = 0
	MaxListingPrice = 20000
)

type Listing struct {
	ID             string        `db:"id" json:"id"`
	Title          string        `db:"title" json:"title"`
	Subtitle       string        `db:"subtitle" json:"subtitle,omitempty"`
	Description    string        `db:"description" json:"description"`
	Address        string        `db:"address" json:"address"`
	Price          int           `db:"price" json:"price"`
	PricePerArea   int           `db:"price_per_area" json:"price_per_area"`
	Size           int           `db:"size" json:"size"`
	Rooms          int           `db:"rooms" json:"rooms"`
	PropertyType   string        `db:"property_type" json:"property_type"`
	RentalDuration string        `db:"rental_duration" json:"rental_duration"`
	Status         ListingStatus `db:"status" json:"status"`
	External       bool          `db:"external" json:"external"`
	SourceURL      string        `db:"source_url" json:"source_url,omitempty"`
	DateScraped    *time.Time    `db:"date_scraped" json:"date_scraped,omitempty"`
	Images         []string      `json:"images"`
	OwnerID        string        `db:"owner_id" json:"owner_id,omitempty"`
	TenantID       string        `db:"tenant_id" json:"tenant_id,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

func (l *Listing) HasRenter() bool {
	return l.TenantID != ""
}

func (l *Listing) HasOwner() bool {
	return l.OwnerID != ""
}

// Approve moves a PENDING listing to APPROVED
func (l *Listing) Approve() error {
	if l.Status != ListingPending {
		return &TransitionError{Action: "approve", From: l.Status, Kind: ErrConflict}
	}

	l.Status = ListingApproved
	return nil
}

// Reject moves a PENDING listing to REJECTED
func (l *Listing) Reject() error {
	if l.Status != ListingPending {
		return &TransitionError{Action: "reject", From: l.Status, Kind: ErrConflict}
	}

	l.Status = ListingRejected
	return nil
}

// MarkRented links the renter, only an APPROVED listing can be rented
func (l *Listing) MarkRented(tenantID string) error {
	if tenantID == "" {
		return NewError(ErrBadRequest, "a tenant is required to rent a listing")
	}

	if l.Status != ListingApproved || l.HasRenter() {
		return &TransitionError{Action: "rent", From: l.Status, Kind: ErrConflict}
	}

	l.TenantID = tenantID
	l.Status = ListingRented
	return nil
}

// Disable is refused while the listing is rented, it has to be vacated first
func (l *Listing) Disable() error {
	if l.Status == ListingRented || l.HasRenter() {
		return &TransitionError{Action: "disable", From: l.Status, Kind: ErrForbidden}
	}

	l.Status = ListingDisabled
	return nil
}

// Vacate clears the renter and puts the listing back on the market
func (l *Listing) Vacate() error {
	if l.Status != ListingRented {
		return &TransitionError{Action: "vacate", From: l.Status, Kind: ErrConflict}
	}

	l.TenantID = ""
	l.Status = ListingApproved
	return nil
}
