// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rental-service/internal/types"
)

// AddApplication returns ErrDuplicateKey when the tenant already applied
func (s *Storage) AddApplication(ctx context.Context, tenantID, listingID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddApplication")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("applications").
		Columns("tenant_id", "listing_id").
		Values(tenantID, listingID).
		ExecContext(ctx)

	return translate(err, "insert application")
}

func (s *Storage) HasApplication(ctx context.Context, tenantID, listingID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasApplication")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM applications WHERE tenant_id = ? AND listing_id = ?)", tenantID, listingID)).
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}

	return exists, nil
}

// ListApplicants returns the tenants who applied to the listing, oldest application first
func (s *Storage) ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApplicants")
	defer span.End()

	return s.queryTenants(ctx, s.db.Statement(ctx).
		Select(qualified("t", tenantColumns)...).
		From("applications a").
		Join("tenants t ON t.id = a.tenant_id").
		Where(sq.Eq{"a.listing_id": listingID}).
		OrderBy("a.created_at", "t.id"))
}

func (s *Storage) ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAppliedListings")
	defer span.End()

	return s.queryListings(ctx, s.db.Statement(ctx).
		Select(qualified("l", listingColumns)...).
		From("applications a").
		Join("listings l ON l.id = a.listing_id").
		Where(sq.Eq{"a.tenant_id": tenantID}).
		OrderBy("a.created_at", "l.id"))
}

func (s *Storage) DeleteApplicationsByListing(ctx context.Context, listingID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteApplicationsByListing")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("applications").
		Where(sq.Eq{"listing_id": listingID}).
		ExecContext(ctx)

	return translate(err, "delete applications")
}

func (s *Storage) DeleteApplicationsByTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteApplicationsByTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("applications").
		Where(sq.Eq{"tenant_id": tenantID}).
		ExecContext(ctx)

	return translate(err, "delete applications")
}
