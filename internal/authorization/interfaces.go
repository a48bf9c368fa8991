// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/rental-service/internal/openfga"
)

// AuthorizerInterface mirrors listing ownership and tenancy into OpenFGA so
// other services can query the relationships
type AuthorizerInterface interface {
	ValidateModel(context.Context) error

	// LinkListing attaches the listing to the global platform, platform
	// admins inherit every permission on it
	LinkListing(context.Context, string) error
	AssignListingOwner(context.Context, string, string) error
	RemoveListingOwner(context.Context, string, string) error
	AssignListingTenant(context.Context, string, string) error
	RemoveListingTenant(context.Context, string, string) error
	AssignPlatformAdmin(context.Context, string) error
	RemovePlatformAdmin(context.Context, string) error

	DeleteListing(context.Context, string) error
}

type AuthzClientInterface interface {
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
