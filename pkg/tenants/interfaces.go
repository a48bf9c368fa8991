// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"

	"github.com/canonical/rental-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, tenantID string, actor *types.User) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error)
	CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Tenant, bool, error)
	SubmitApplication(ctx context.Context, listingID string, tenant *types.Tenant) (bool, error)
	ApproveApplication(ctx context.Context, tenantID, listingID string) (*types.Listing, error)
	AssignToListing(ctx context.Context, listingID string, tenant *types.Tenant) (*types.Listing, bool, error)
	UnassignFromListing(ctx context.Context, listingID, tenantID string) (*types.Listing, error)
	Delete(ctx context.Context, tenantID string) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error)
	RentedListing(ctx context.Context, tenantID string) (*types.Listing, error)
}

// StorageInterface is the subset of internal/storage used by the registry
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	AddUserRole(ctx context.Context, userID string, role types.Role) error
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant) error
	DeleteTenant(ctx context.Context, id string) error
	GetListingByID(ctx context.Context, id string) (*types.Listing, error)
	LockListing(ctx context.Context, id string) (*types.Listing, error)
	GetListingByTenantID(ctx context.Context, tenantID string) (*types.Listing, error)
	UpdateListing(ctx context.Context, l *types.Listing) error
	AddApplication(ctx context.Context, tenantID, listingID string) error
	HasApplication(ctx context.Context, tenantID, listingID string) (bool, error)
	ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error)
	DeleteApplicationsByTenant(ctx context.Context, tenantID string) error
}

// ActorResolverInterface loads the user behind the current request
type ActorResolverInterface interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}
