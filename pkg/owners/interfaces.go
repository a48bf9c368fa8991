// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package owners

import (
	"context"

	"github.com/canonical/rental-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, ownerID string, actor *types.User) (*types.Owner, error)
	GetOwner(ctx context.Context, id string) (*types.Owner, error)
	GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error)
	CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Owner, bool, error)
	AssignToListing(ctx context.Context, listingID string, owner *types.Owner) (*types.Listing, bool, error)
	UnassignFromListing(ctx context.Context, listingID string) (*types.Listing, error)
	Deactivate(ctx context.Context, ownerID string) (*types.Owner, []*types.Listing, error)
	Delete(ctx context.Context, ownerID string) error
	ListOwners(ctx context.Context) ([]*types.Owner, error)
	GetSystemOwner(ctx context.Context) (*types.Owner, error)
	EnsureSystemOwner(ctx context.Context) (*types.Owner, error)
}

// StorageInterface is the subset of internal/storage used by the registry
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	AddUserRole(ctx context.Context, userID string, role types.Role) error
	CreateOwner(ctx context.Context, o *types.Owner) (*types.Owner, error)
	GetOwnerByID(ctx context.Context, id string) (*types.Owner, error)
	GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error)
	GetSystemOwner(ctx context.Context) (*types.Owner, error)
	ListOwners(ctx context.Context) ([]*types.Owner, error)
	UpdateOwner(ctx context.Context, o *types.Owner) error
	DeleteOwner(ctx context.Context, id string) error
	LockListing(ctx context.Context, id string) (*types.Listing, error)
	UpdateListing(ctx context.Context, l *types.Listing) error
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
}

// CatalogInterface drives the listing state machine on behalf of the registry
type CatalogInterface interface {
	Disable(ctx context.Context, id string) (*types.Listing, error)
	DisableForOwnerRemoval(ctx context.Context, id string) (*types.Listing, error)
	ListVisibleOwnerListings(ctx context.Context, ownerID string) ([]*types.Listing, error)
}

// ActorResolverInterface loads the user behind the current request
type ActorResolverInterface interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}
