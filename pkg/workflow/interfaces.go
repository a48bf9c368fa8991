// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"

	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/pkg/listings"
)

type ServiceInterface interface {
	SubmitListing(ctx context.Context, actor *types.User, req SubmitListingRequest) (*types.Listing, Result, error)
	ApproveListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error)
	RejectListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error)
	DisableListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error)
	DeleteListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error)

	AssignOwner(ctx context.Context, actor *types.User, listingID, ownerID string) (*types.Listing, Result, error)
	UnassignOwner(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error)
	AssignTenant(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error)
	UnassignTenant(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error)

	ApplyForListing(ctx context.Context, actor *types.User, listingID string, profile *types.Profile) (*types.Tenant, Result, error)
	ApproveApplication(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error)
	ViewApplications(ctx context.Context, actor *types.User, listingID string) ([]*types.Tenant, error)

	CreateOwnerProfile(ctx context.Context, actor *types.User, userID string, profile types.Profile) (*types.Owner, Result, error)
	CreateTenantProfile(ctx context.Context, actor *types.User, userID string, profile types.Profile) (*types.Tenant, Result, error)
	DeactivateOwner(ctx context.Context, actor *types.User, ownerID string) (*types.Owner, Result, error)

	DeleteUser(ctx context.Context, actor *types.User, userID string) (Result, error)
	GrantRole(ctx context.Context, actor *types.User, userID string, role types.Role) (*types.User, Result, error)
	RevokeRole(ctx context.Context, actor *types.User, userID string, role types.Role) (*types.User, Result, error)
}

// StorageInterface is the subset of internal/storage the workflow touches
// directly, everything else goes through the registries
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	DeleteUser(ctx context.Context, id string) error
	AddUserRole(ctx context.Context, userID string, role types.Role) error
	RemoveUserRole(ctx context.Context, userID string, role types.Role) error
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
}

type CatalogInterface interface {
	Create(ctx context.Context, req listings.ListingRequest) (*types.Listing, error)
	GetListing(ctx context.Context, id string) (*types.Listing, error)
	ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error)
	Approve(ctx context.Context, id string) (*types.Listing, error)
	Reject(ctx context.Context, id string) (*types.Listing, error)
	Disable(ctx context.Context, id string) (*types.Listing, error)
	Delete(ctx context.Context, id string) (*types.Listing, error)
	Remove(ctx context.Context, id string) (*types.Listing, error)
}

type OwnerRegistryInterface interface {
	GetOwner(ctx context.Context, id string) (*types.Owner, error)
	GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error)
	CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Owner, bool, error)
	AssignToListing(ctx context.Context, listingID string, owner *types.Owner) (*types.Listing, bool, error)
	UnassignFromListing(ctx context.Context, listingID string) (*types.Listing, error)
	Deactivate(ctx context.Context, ownerID string) (*types.Owner, []*types.Listing, error)
	Delete(ctx context.Context, ownerID string) error
}

type TenantRegistryInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error)
	CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Tenant, bool, error)
	SubmitApplication(ctx context.Context, listingID string, tenant *types.Tenant) (bool, error)
	ApproveApplication(ctx context.Context, tenantID, listingID string) (*types.Listing, error)
	AssignToListing(ctx context.Context, listingID string, tenant *types.Tenant) (*types.Listing, bool, error)
	UnassignFromListing(ctx context.Context, listingID, tenantID string) (*types.Listing, error)
	RentedListing(ctx context.Context, tenantID string) (*types.Listing, error)
	Delete(ctx context.Context, tenantID string) error
}

type NotifierInterface interface {
	Notify(context.Context, notifications.Notification) error
}

type EventPublisherInterface interface {
	Publish(context.Context, ...events.Event) error
}

// AuthorizerInterface mirrors ownership, tenancy and admin rights into OpenFGA
type AuthorizerInterface interface {
	LinkListing(context.Context, string) error
	AssignListingOwner(context.Context, string, string) error
	RemoveListingOwner(context.Context, string, string) error
	AssignListingTenant(context.Context, string, string) error
	RemoveListingTenant(context.Context, string, string) error
	AssignPlatformAdmin(context.Context, string) error
	RemovePlatformAdmin(context.Context, string) error
	DeleteListing(context.Context, string) error
}

// IdentityInterface removes the identity provider side of a deleted user
type IdentityInterface interface {
	DeleteIdentity(ctx context.Context, id string) error
}

type ActorResolverInterface interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}

type SessionInvalidatorInterface interface {
	InvalidateUserSessions(ctx context.Context, userIDs ...string) error
}
