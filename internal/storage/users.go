// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rental-service/internal/types"
)

var userColumns = []string{"id", "username", "email", "password_hash", "last_login", "created_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var (
		u         types.User
		lastLogin sql.NullTime
	)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &lastLogin, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.LastLogin = timePtr(lastLogin)
	u.Roles = []types.Role{}

	return &u, nil
}

// CreateUser persists the user and its roles, an empty ID gets a generated one
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id := u.ID
	if id == "" {
		var err error
		if id, err = newID("user"); err != nil {
			return nil, err
		}
	}

	var created *types.User
	err := s.WithTx(ctx, func(ctx context.Context) error {
		row := s.db.Statement(ctx).
			Insert("users").
			Columns("id", "username", "email", "password_hash").
			Values(id, u.Username, u.Email, u.PasswordHash).
			Suffix("RETURNING " + columnList(userColumns)).
			QueryRowContext(ctx)

		var err error
		if created, err = scanUser(row); err != nil {
			return translate(err, "insert user")
		}

		for _, r := range u.Roles {
			if err := s.AddUserRole(ctx, created.ID, r); err != nil {
				return err
			}
			created.GrantRole(r)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByUsername")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"username": username})
}

// GetUserByEmail matches case-insensitively
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Expr("lower(email) = lower(?)", email))
}

func (s *Storage) getUser(ctx context.Context, pred any) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(pred).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "get user")
	}

	if err := s.loadRoles(ctx, map[string]*types.User{u.ID: u}); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*types.User{}
	byID := map[string]*types.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
		byID[u.ID] = u
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if err := s.loadRoles(ctx, byID); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Storage) loadRoles(ctx context.Context, users map[string]*types.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}

	rows, err := s.db.Statement(ctx).
		Select("user_id", "role").
		From("user_roles").
		Where(sq.Eq{"user_id": ids}).
		OrderBy("user_id", "role").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, role string
		if err := rows.Scan(&userID, &role); err != nil {
			return fmt.Errorf("failed to scan role: %w", err)
		}

		r, err := types.ParseRole(role)
		if err != nil {
			s.logger.Warnf("ignoring unknown role %q of user %s", role, userID)
			continue
		}

		if u, ok := users[userID]; ok {
			u.GrantRole(r)
		}
	}

	return rows.Err()
}

// UpdateUser writes username, email and password hash
func (s *Storage) UpdateUser(ctx context.Context, u *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]any{
			"username":      u.Username,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
		}).
		Where(sq.Eq{"id": u.ID}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "update user")
	}

	return checkAffected(res, "update user")
}

func (s *Storage) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLastLogin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("last_login", at).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "update last login")
	}

	return checkAffected(res, "update last login")
}

// DeleteUser removes the user, its roles go with it; owner and tenant
// profiles must be removed first
func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete user")
	}

	return checkAffected(res, "delete user")
}

// AddUserRole is idempotent
func (s *Storage) AddUserRole(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddUserRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, role.String()).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ExecContext(ctx)

	return translate(err, "add user role")
}

func (s *Storage) RemoveUserRole(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveUserRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID, "role": role.String()}).
		ExecContext(ctx)

	return translate(err, "remove user role")
}
