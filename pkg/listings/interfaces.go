// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package listings

import (
	"context"

	"github.com/canonical/rental-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, req ListingRequest) (*types.Listing, error)
	GetListing(ctx context.Context, id string) (*types.Listing, error)
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
	Search(ctx context.Context, title string, minPrice, maxPrice *int) ([]*types.Listing, error)
	ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error)
	ListVisibleOwnerListings(ctx context.Context, ownerID string) ([]*types.Listing, error)
	Approve(ctx context.Context, id string) (*types.Listing, error)
	Reject(ctx context.Context, id string) (*types.Listing, error)
	Disable(ctx context.Context, id string) (*types.Listing, error)
	DisableForOwnerRemoval(ctx context.Context, id string) (*types.Listing, error)
	Delete(ctx context.Context, id string) (*types.Listing, error)
	Remove(ctx context.Context, id string) (*types.Listing, error)
}

// StorageInterface is the subset of internal/storage used by the catalog
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateListing(ctx context.Context, l *types.Listing) (*types.Listing, error)
	GetListingByID(ctx context.Context, id string) (*types.Listing, error)
	LockListing(ctx context.Context, id string) (*types.Listing, error)
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
	UpdateListing(ctx context.Context, l *types.Listing) error
	DeleteListing(ctx context.Context, id string) error
	ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error)
	DeleteApplicationsByListing(ctx context.Context, listingID string) error
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant) error
}
