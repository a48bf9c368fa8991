// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/rental-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	UpdateUser(ctx context.Context, u *types.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	DeleteUser(ctx context.Context, id string) error
	AddUserRole(ctx context.Context, userID string, role types.Role) error
	RemoveUserRole(ctx context.Context, userID string, role types.Role) error

	CreateOwner(ctx context.Context, o *types.Owner) (*types.Owner, error)
	GetOwnerByID(ctx context.Context, id string) (*types.Owner, error)
	GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error)
	GetSystemOwner(ctx context.Context) (*types.Owner, error)
	ListOwners(ctx context.Context) ([]*types.Owner, error)
	UpdateOwner(ctx context.Context, o *types.Owner) error
	DeleteOwner(ctx context.Context, id string) error

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant) error
	DeleteTenant(ctx context.Context, id string) error

	CreateListing(ctx context.Context, l *types.Listing) (*types.Listing, error)
	GetListingByID(ctx context.Context, id string) (*types.Listing, error)
	LockListing(ctx context.Context, id string) (*types.Listing, error)
	GetListingBySourceURL(ctx context.Context, sourceURL string) (*types.Listing, error)
	GetListingByTenantID(ctx context.Context, tenantID string) (*types.Listing, error)
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
	UpdateListing(ctx context.Context, l *types.Listing) error
	DeleteListing(ctx context.Context, id string) error

	AddApplication(ctx context.Context, tenantID, listingID string) error
	HasApplication(ctx context.Context, tenantID, listingID string) (bool, error)
	ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error)
	ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error)
	DeleteApplicationsByListing(ctx context.Context, listingID string) error
	DeleteApplicationsByTenant(ctx context.Context, tenantID string) error
}
