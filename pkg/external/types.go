// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"strings"
	"time"

	"github.com/canonical/rental-service/internal/types"
)

// Listing is a scraped listing as delivered by the ingestion pipeline
type Listing struct {
	Title          string     `json:"title" validate:"required,notblank,max=150"`
	Subtitle       string     `json:"subtitle" validate:"max=250"`
	Description    string     `json:"description" validate:"max=5000"`
	Address        string     `json:"address" validate:"max=255"`
	Price          int        `json:"price" validate:"gte=0,lte=20000"`
	PricePerArea   int        `json:"price_per_area" validate:"gte=0,lte=200"`
	Size           int        `json:"size" validate:"gte=0,lte=1000"`
	Rooms          int        `json:"rooms" validate:"gte=0,lte=20"`
	PropertyType   string     `json:"property_type" validate:"max=50"`
	RentalDuration string     `json:"rental_duration" validate:"max=50"`
	SourceURL      string     `json:"source_url" validate:"required,notblank,max=500"`
	DateScraped    *time.Time `json:"date_scraped" validate:"required"`
	Images         []string   `json:"images" validate:"max=30,dive,max=500"`
}

// apply overwrites the descriptive fields of l and forces the external
// invariants, a rented listing keeps its renter and status
func (e Listing) apply(l *types.Listing, ownerID string) {
	l.Title = strings.TrimSpace(e.Title)
	l.Subtitle = strings.TrimSpace(e.Subtitle)
	l.Description = strings.TrimSpace(e.Description)
	l.Address = strings.TrimSpace(e.Address)
	l.Price = e.Price
	l.PricePerArea = e.PricePerArea
	l.Size = e.Size
	l.Rooms = e.Rooms
	l.PropertyType = strings.TrimSpace(e.PropertyType)
	l.RentalDuration = strings.TrimSpace(e.RentalDuration)
	l.SourceURL = strings.TrimSpace(e.SourceURL)

	scraped := e.DateScraped.UTC()
	l.DateScraped = &scraped

	l.Images = make([]string, 0, len(e.Images))
	for _, img := range e.Images {
		if img = strings.TrimSpace(img); img != "" {
			l.Images = append(l.Images, img)
		}
	}

	l.External = true
	l.OwnerID = ownerID
	if !l.HasRenter() {
		l.Status = types.ListingApproved
	}
}

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type CleanupResult struct {
	Removed   int       `json:"removed"`
	GraceDays int       `json:"grace_days"`
	Cutoff    time.Time `json:"cutoff"`
}
