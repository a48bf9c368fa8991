// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/canonical/rental-service/internal/types"
)

func requireUser(txn *memdb.Txn, what, userID string) error {
	u, err := first[types.User](txn, tableUsers, "id", userID)
	if err != nil {
		return err
	}

	if u == nil {
		return dangling(what, "users")
	}

	return nil
}

func checkOwnerUnique(txn *memdb.Txn, o *types.Owner) error {
	if other, err := first[types.Owner](txn, tableOwners, "user_id", o.UserID); err != nil {
		return err
	} else if other != nil && other.ID != o.ID {
		return duplicate("write owner", "user_id")
	}

	if o.Phone != "" {
		if other, err := first[types.Owner](txn, tableOwners, "phone", o.Phone); err != nil {
			return err
		} else if other != nil && other.ID != o.ID {
			return duplicate("write owner", "phone")
		}
	}

	if o.SystemOwner {
		if other, err := first[types.Owner](txn, tableOwners, "system_owner", true); err != nil {
			return err
		} else if other != nil && other.ID != o.ID {
			return duplicate("write owner", "system_owner")
		}
	}

	return nil
}

func (s *Store) CreateOwner(ctx context.Context, o *types.Owner) (*types.Owner, error) {
	created := cloneOwner(o)
	created.ID = newID()
	created.CreatedAt = time.Now().UTC()

	err := s.write(ctx, func(txn *memdb.Txn) error {
		if err := requireUser(txn, "insert owner", created.UserID); err != nil {
			return err
		}

		if err := checkOwnerUnique(txn, created); err != nil {
			return err
		}

		return txn.Insert(tableOwners, created)
	})
	if err != nil {
		return nil, err
	}

	return cloneOwner(created), nil
}

func (s *Store) GetOwnerByID(ctx context.Context, id string) (*types.Owner, error) {
	return s.getOwner(ctx, "id", id)
}

func (s *Store) GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error) {
	return s.getOwner(ctx, "user_id", userID)
}

func (s *Store) GetSystemOwner(ctx context.Context) (*types.Owner, error) {
	return s.getOwner(ctx, "system_owner", true)
}

func (s *Store) getOwner(ctx context.Context, index string, value any) (*types.Owner, error) {
	o, err := first[types.Owner](s.read(ctx), tableOwners, index, value)
	if err != nil {
		return nil, err
	}

	if o == nil {
		return nil, notFound("owner", fmt.Sprint(value))
	}

	return cloneOwner(o), nil
}

func (s *Store) ListOwners(ctx context.Context) ([]*types.Owner, error) {
	owners, err := all[types.Owner](s.read(ctx), tableOwners, "id")
	if err != nil {
		return nil, err
	}

	out := make([]*types.Owner, 0, len(owners))
	for _, o := range owners {
		out = append(out, cloneOwner(o))
	}

	slices.SortFunc(out, func(a, b *types.Owner) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

// UpdateOwner writes the profile fields and the active flag
func (s *Store) UpdateOwner(ctx context.Context, o *types.Owner) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Owner](txn, tableOwners, "id", o.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("owner", o.ID)
		}

		updated := cloneOwner(existing)
		updated.FirstName = o.FirstName
		updated.LastName = o.LastName
		updated.Phone = o.Phone
		updated.Active = o.Active

		if err := checkOwnerUnique(txn, updated); err != nil {
			return err
		}

		return txn.Insert(tableOwners, updated)
	})
}

func (s *Store) DeleteOwner(ctx context.Context, id string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Owner](txn, tableOwners, "id", id)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("owner", id)
		}

		if l, err := first[types.Listing](txn, tableListings, "owner_id", id); err != nil {
			return err
		} else if l != nil {
			return dangling("delete owner", "listings")
		}

		if err := txn.Delete(tableOwners, existing); err != nil {
			return fmt.Errorf("failed to delete owner: %w", err)
		}

		return nil
	})
}

func (s *Store) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	created := cloneTenant(t)
	created.ID = newID()
	created.CreatedAt = time.Now().UTC()
	if created.RentalStatus == "" {
		created.RentalStatus = types.RentalApplied
	}

	err := s.write(ctx, func(txn *memdb.Txn) error {
		if err := requireUser(txn, "insert tenant", created.UserID); err != nil {
			return err
		}

		if other, err := first[types.Tenant](txn, tableTenants, "user_id", created.UserID); err != nil {
			return err
		} else if other != nil {
			return duplicate("insert tenant", "user_id")
		}

		return txn.Insert(tableTenants, created)
	})
	if err != nil {
		return nil, err
	}

	return cloneTenant(created), nil
}

func (s *Store) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	return s.getTenant(ctx, "id", id)
}

func (s *Store) GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error) {
	return s.getTenant(ctx, "user_id", userID)
}

func (s *Store) getTenant(ctx context.Context, index, value string) (*types.Tenant, error) {
	t, err := first[types.Tenant](s.read(ctx), tableTenants, index, value)
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, notFound("tenant", value)
	}

	return cloneTenant(t), nil
}

func (s *Store) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	tenants, err := all[types.Tenant](s.read(ctx), tableTenants, "id")
	if err != nil {
		return nil, err
	}

	out := make([]*types.Tenant, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, cloneTenant(t))
	}

	slices.SortFunc(out, func(a, b *types.Tenant) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (s *Store) UpdateTenant(ctx context.Context, t *types.Tenant) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Tenant](txn, tableTenants, "id", t.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("tenant", t.ID)
		}

		updated := cloneTenant(existing)
		updated.FirstName = t.FirstName
		updated.LastName = t.LastName
		updated.Phone = t.Phone
		updated.RentalStatus = t.RentalStatus

		return txn.Insert(tableTenants, updated)
	})
}

// DeleteTenant drops the tenant and its applications, a tenant still renting
// a listing cannot be deleted
func (s *Store) DeleteTenant(ctx context.Context, id string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Tenant](txn, tableTenants, "id", id)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("tenant", id)
		}

		if l, err := first[types.Listing](txn, tableListings, "tenant_id", id); err != nil {
			return err
		} else if l != nil {
			return dangling("delete tenant", "listings")
		}

		if _, err := txn.DeleteAll(tableApplications, "tenant", id); err != nil {
			return fmt.Errorf("failed to delete applications: %w", err)
		}

		if err := txn.Delete(tableTenants, existing); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		return nil
	})
}
