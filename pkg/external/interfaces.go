// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"

	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/types"
)

type ServiceInterface interface {
	ImportListings(ctx context.Context, batch []Listing) (*ImportResult, error)
	CleanupExternalListings(ctx context.Context, graceDays int) (*CleanupResult, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetSystemOwner(ctx context.Context) (*types.Owner, error)
	GetListingBySourceURL(ctx context.Context, sourceURL string) (*types.Listing, error)
	CreateListing(ctx context.Context, l *types.Listing) (*types.Listing, error)
	UpdateListing(ctx context.Context, l *types.Listing) error
	ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error)
}

// CatalogInterface removes listings with the full cascade
type CatalogInterface interface {
	Remove(ctx context.Context, id string) (*types.Listing, error)
}

type EventPublisherInterface interface {
	Publish(context.Context, ...events.Event) error
}

type AuthorizerInterface interface {
	LinkListing(context.Context, string) error
	AssignListingOwner(context.Context, string, string) error
	DeleteListing(context.Context, string) error
}

type ActorResolverInterface interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}
