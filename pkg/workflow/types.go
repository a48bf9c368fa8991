// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"slices"

	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/pkg/listings"
)

// Result carries the side outcomes of a committed mutation
type Result struct {
	// Warnings are soft failures, typically notifications that were not sent
	Warnings []string
	// InvalidateSessions lists the users whose role set changed
	InvalidateSessions []string

	AwaitingApproval bool
	AlreadyApplied   bool
}

func (r *Result) warn(d notifications.Delivery) {
	if d.Failed() {
		r.Warnings = append(r.Warnings, d.Warning())
	}
}

func (r *Result) invalidate(userID string) {
	if userID != "" && !slices.Contains(r.InvalidateSessions, userID) {
		r.InvalidateSessions = append(r.InvalidateSessions, userID)
	}
}

// SubmitListingRequest is a listing plus the owner profile needed the first
// time a user submits one
type SubmitListingRequest struct {
	listings.ListingRequest

	Profile *types.Profile `json:"profile,omitempty"`
}

type ApplyRequest struct {
	Profile *types.Profile `json:"profile,omitempty"`
}

type AssignOwnerRequest struct {
	OwnerID string `json:"owner_id"`
}

type AssignTenantRequest struct {
	TenantID string `json:"tenant_id"`
}

// ProfileRequest creates an owner or tenant profile, UserID defaults to the
// caller
type ProfileRequest struct {
	types.Profile

	UserID string `json:"user_id,omitempty"`
}

type RoleRequest struct {
	Role string `json:"role"`
}
