// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rental-service/internal/types"
)

var ownerColumns = []string{"id", "user_id", "first_name", "last_name", "phone", "system_owner", "active", "created_at"}

func scanOwner(row sq.RowScanner) (*types.Owner, error) {
	var o types.Owner
	if err := row.Scan(&o.ID, &o.UserID, &o.FirstName, &o.LastName, &o.Phone, &o.SystemOwner, &o.Active, &o.CreatedAt); err != nil {
		return nil, err
	}

	return &o, nil
}

func (s *Storage) CreateOwner(ctx context.Context, o *types.Owner) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOwner")
	defer span.End()

	id, err := newID("owner")
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("owners").
		Columns("id", "user_id", "first_name", "last_name", "phone", "system_owner", "active").
		Values(id, o.UserID, o.FirstName, o.LastName, o.Phone, o.SystemOwner, o.Active).
		Suffix("RETURNING " + columnList(ownerColumns)).
		QueryRowContext(ctx)

	created, err := scanOwner(row)
	if err != nil {
		return nil, translate(err, "insert owner")
	}

	return created, nil
}

func (s *Storage) GetOwnerByID(ctx context.Context, id string) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOwnerByID")
	defer span.End()

	return s.getOwner(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOwnerByUserID")
	defer span.End()

	return s.getOwner(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) GetSystemOwner(ctx context.Context) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSystemOwner")
	defer span.End()

	return s.getOwner(ctx, sq.Eq{"system_owner": true})
}

func (s *Storage) getOwner(ctx context.Context, pred any) (*types.Owner, error) {
	row := s.db.Statement(ctx).
		Select(ownerColumns...).
		From("owners").
		Where(pred).
		QueryRowContext(ctx)

	o, err := scanOwner(row)
	if err != nil {
		return nil, translate(err, "get owner")
	}

	return o, nil
}

func (s *Storage) ListOwners(ctx context.Context) ([]*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOwners")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(ownerColumns...).
		From("owners").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	owners := []*types.Owner{}
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return owners, nil
}

func (s *Storage) UpdateOwner(ctx context.Context, o *types.Owner) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOwner")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("owners").
		SetMap(map[string]any{
			"first_name": o.FirstName,
			"last_name":  o.LastName,
			"phone":      o.Phone,
			"active":     o.Active,
		}).
		Where(sq.Eq{"id": o.ID}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "update owner")
	}

	return checkAffected(res, "update owner")
}

func (s *Storage) DeleteOwner(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOwner")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("owners").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete owner")
	}

	return checkAffected(res, "delete owner")
}
