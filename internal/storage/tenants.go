// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rental-service/internal/types"
)

var tenantColumns = []string{"id", "user_id", "first_name", "last_name", "phone", "rental_status", "created_at"}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var (
		t      types.Tenant
		status string
	)

	if err := row.Scan(&t.ID, &t.UserID, &t.FirstName, &t.LastName, &t.Phone, &status, &t.CreatedAt); err != nil {
		return nil, err
	}

	t.RentalStatus = types.RentalStatus(status)
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID("tenant")
	if err != nil {
		return nil, err
	}

	status := t.RentalStatus
	if status == "" {
		status = types.RentalApplied
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "user_id", "first_name", "last_name", "phone", "rental_status").
		Values(id, t.UserID, t.FirstName, t.LastName, t.Phone, string(status)).
		Suffix("RETURNING " + columnList(tenantColumns)).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		return nil, translate(err, "insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByUserID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) getTenant(ctx context.Context, pred any) (*types.Tenant, error) {
	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(pred).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, translate(err, "get tenant")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	return s.queryTenants(ctx, s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at", "id"))
}

func (s *Storage) queryTenants(ctx context.Context, query sq.SelectBuilder) ([]*types.Tenant, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := []*types.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(map[string]any{
			"first_name":    t.FirstName,
			"last_name":     t.LastName,
			"phone":         t.Phone,
			"rental_status": string(t.RentalStatus),
		}).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "update tenant")
	}

	return checkAffected(res, "update tenant")
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete tenant")
	}

	return checkAffected(res, "delete tenant")
}
