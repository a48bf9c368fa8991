// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/types"
)

func (s *Store) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	created := cloneUser(u)
	if created.ID == "" {
		created.ID = newID()
	}
	created.CreatedAt = time.Now().UTC()
	created.Roles = []types.Role{}
	for _, r := range u.Roles {
		created.GrantRole(r)
	}

	err := s.write(ctx, func(txn *memdb.Txn) error {
		if err := checkUserUnique(txn, created); err != nil {
			return err
		}

		if existing, err := first[types.User](txn, tableUsers, "id", created.ID); err != nil {
			return err
		} else if existing != nil {
			return duplicate("insert user", "id")
		}

		return txn.Insert(tableUsers, created)
	})
	if err != nil {
		return nil, err
	}

	return cloneUser(created), nil
}

func checkUserUnique(txn *memdb.Txn, u *types.User) error {
	if u.Username == "" {
		return fmt.Errorf("write user: username is required")
	}

	if other, err := first[types.User](txn, tableUsers, "username", u.Username); err != nil {
		return err
	} else if other != nil && other.ID != u.ID {
		return duplicate("write user", "username")
	}

	if u.Email == "" {
		return nil
	}

	if other, err := first[types.User](txn, tableUsers, "email", strings.ToLower(u.Email)); err != nil {
		return err
	} else if other != nil && other.ID != u.ID {
		return duplicate("write user", "email")
	}

	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.getUser(ctx, "username", username)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return s.getUser(ctx, "email", email)
}

func (s *Store) getUser(ctx context.Context, index, value string) (*types.User, error) {
	u, err := first[types.User](s.read(ctx), tableUsers, index, value)
	if err != nil {
		return nil, err
	}

	if u == nil {
		return nil, notFound("user", value)
	}

	return cloneUser(u), nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*types.User, error) {
	users, err := all[types.User](s.read(ctx), tableUsers, "id")
	if err != nil {
		return nil, err
	}

	out := make([]*types.User, 0, len(users))
	for _, u := range users {
		out = append(out, cloneUser(u))
	}

	slices.SortFunc(out, func(a, b *types.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

// updateUser applies mutate to a copy of the stored user and writes it back
func (s *Store) updateUser(ctx context.Context, id string, mutate func(*types.User) error) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.User](txn, tableUsers, "id", id)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("user", id)
		}

		updated := cloneUser(existing)
		if err := mutate(updated); err != nil {
			return err
		}

		return txn.Insert(tableUsers, updated)
	})
}

func (s *Store) UpdateUser(ctx context.Context, u *types.User) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.User](txn, tableUsers, "id", u.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("user", u.ID)
		}

		if err := checkUserUnique(txn, u); err != nil {
			return err
		}

		updated := cloneUser(existing)
		updated.Username = u.Username
		updated.Email = u.Email
		updated.PasswordHash = u.PasswordHash

		return txn.Insert(tableUsers, updated)
	})
}

func (s *Store) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return s.updateUser(ctx, id, func(u *types.User) error {
		t := at
		u.LastLogin = &t
		return nil
	})
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.User](txn, tableUsers, "id", id)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("user", id)
		}

		if o, err := first[types.Owner](txn, tableOwners, "user_id", id); err != nil {
			return err
		} else if o != nil {
			return dangling("delete user", "owners")
		}

		if t, err := first[types.Tenant](txn, tableTenants, "user_id", id); err != nil {
			return err
		} else if t != nil {
			return dangling("delete user", "tenants")
		}

		if err := txn.Delete(tableUsers, existing); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
}

func (s *Store) AddUserRole(ctx context.Context, userID string, role types.Role) error {
	err := s.updateUser(ctx, userID, func(u *types.User) error {
		u.GrantRole(role)
		return nil
	})
	if isNotFound(err) {
		return dangling("add user role", "users")
	}

	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func (s *Store) RemoveUserRole(ctx context.Context, userID string, role types.Role) error {
	err := s.updateUser(ctx, userID, func(u *types.User) error {
		u.RevokeRole(role)
		return nil
	})
	if err != nil && !isNotFound(err) {
		return err
	}

	return nil
}
