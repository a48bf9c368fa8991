// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/openfga"
	"github.com/canonical/rental-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) LinkListing(ctx context.Context, listingId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkListing")
	defer span.End()

	return a.client.WriteTuple(ctx, PlatformTuple(GlobalPlatform), PLATFORM_RELATION, ListingTuple(listingId))
}

func (a *Authorizer) AssignListingOwner(ctx context.Context, listingId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignListingOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), OWNER_RELATION, ListingTuple(listingId))
}

func (a *Authorizer) RemoveListingOwner(ctx context.Context, listingId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveListingOwner")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), OWNER_RELATION, ListingTuple(listingId))
}

func (a *Authorizer) AssignListingTenant(ctx context.Context, listingId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignListingTenant")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), TENANT_RELATION, ListingTuple(listingId))
}

func (a *Authorizer) RemoveListingTenant(ctx context.Context, listingId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveListingTenant")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), TENANT_RELATION, ListingTuple(listingId))
}

func (a *Authorizer) AssignPlatformAdmin(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignPlatformAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ADMIN_RELATION, PlatformTuple(GlobalPlatform))
}

func (a *Authorizer) RemovePlatformAdmin(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemovePlatformAdmin")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), ADMIN_RELATION, PlatformTuple(GlobalPlatform))
}

// DeleteListing drops every tuple pointing at the listing, page by page
func (a *Authorizer) DeleteListing(ctx context.Context, listingId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteListing")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", ListingTuple(listingId), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
