// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memory is an in-process implementation of the storage interface
// backed by go-memdb. Write transactions are serialised, which gives the
// workflow the same all-or-nothing behaviour as the PostgreSQL store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

const (
	tableUsers        = "users"
	tableOwners       = "owners"
	tableTenants      = "tenants"
	tableListings     = "listings"
	tableApplications = "applications"
)

var _ storage.StorageInterface = (*Store)(nil)

type txContextKey struct{}

// applicationRecord is the join row between a tenant and a listing
type applicationRecord struct {
	TenantID  string
	ListingID string
	CreatedAt time.Time
	Seq       uint64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableUsers: {
				Name: tableUsers,
				Indexes: map[string]*memdb.IndexSchema{
					"id":       {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}},
					"username": {Name: "username", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Username"}},
					"email":    {Name: "email", Unique: true, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Email", Lowercase: true}},
				},
			},
			tableOwners: {
				Name: tableOwners,
				Indexes: map[string]*memdb.IndexSchema{
					"id":           {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}},
					"user_id":      {Name: "user_id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "UserID"}},
					"phone":        {Name: "phone", Unique: true, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Phone"}},
					"system_owner": {Name: "system_owner", Indexer: &memdb.BoolFieldIndex{Field: "SystemOwner"}},
				},
			},
			tableTenants: {
				Name: tableTenants,
				Indexes: map[string]*memdb.IndexSchema{
					"id":      {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}},
					"user_id": {Name: "user_id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "UserID"}},
				},
			},
			tableListings: {
				Name: tableListings,
				Indexes: map[string]*memdb.IndexSchema{
					"id":         {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}},
					"source_url": {Name: "source_url", Unique: true, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "SourceURL"}},
					"owner_id":   {Name: "owner_id", AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "OwnerID"}},
					"tenant_id":  {Name: "tenant_id", Unique: true, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "TenantID"}},
				},
			},
			tableApplications: {
				Name: tableApplications,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:   "id",
						Unique: true,
						Indexer: &memdb.CompoundIndex{Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "TenantID"},
							&memdb.StringFieldIndex{Field: "ListingID"},
						}},
					},
					"tenant":  {Name: "tenant", Indexer: &memdb.StringFieldIndex{Field: "TenantID"}},
					"listing": {Name: "listing", Indexer: &memdb.StringFieldIndex{Field: "ListingID"}},
				},
			},
		},
	}
}

type Store struct {
	db  *memdb.MemDB
	seq atomic.Uint64

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func txFromContext(ctx context.Context) *memdb.Txn {
	if txn, ok := ctx.Value(txContextKey{}).(*memdb.Txn); ok {
		return txn
	}
	return nil
}

// WithTx runs fn inside one write transaction. Nested calls join the outer one.
func (s *Store) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := s.tracer.Start(ctx, "memory.Store.WithTx")
	defer span.End()

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(context.WithValue(ctx, txContextKey{}, txn)); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

func (s *Store) read(ctx context.Context) *memdb.Txn {
	if txn := txFromContext(ctx); txn != nil {
		return txn
	}
	return s.db.Txn(false)
}

// write runs fn in the transaction carried by ctx, or in its own one.
// fn must validate before it mutates: a caller may swallow the error and
// keep using the outer transaction.
func (s *Store) write(ctx context.Context, fn func(*memdb.Txn) error) error {
	if txn := txFromContext(ctx); txn != nil {
		return fn(txn)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

func first[T any](txn *memdb.Txn, table, index string, args ...any) (*T, error) {
	raw, err := txn.First(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	if raw == nil {
		return nil, nil
	}

	return raw.(*T), nil
}

func all[T any](txn *memdb.Txn, table, index string, args ...any) ([]*T, error) {
	it, err := txn.Get(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	out := []*T{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*T))
	}

	return out, nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, storage.ErrNotFound)
}

func duplicate(what, field string) error {
	return &storage.DuplicateKeyError{What: what, Key: field}
}

func dangling(what, ref string) error {
	return fmt.Errorf("%s (%s): %w", what, ref, storage.ErrForeignKeyViolation)
}

func cloneUser(u *types.User) *types.User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if c.Roles == nil {
		c.Roles = []types.Role{}
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}

func cloneOwner(o *types.Owner) *types.Owner {
	c := *o
	return &c
}

func cloneTenant(t *types.Tenant) *types.Tenant {
	c := *t
	return &c
}

func cloneListing(l *types.Listing) *types.Listing {
	c := *l
	c.Images = slices.Clone(l.Images)
	if c.Images == nil {
		c.Images = []string{}
	}
	if l.DateScraped != nil {
		t := *l.DateScraped
		c.DateScraped = &t
	}
	return &c
}

func NewStore(tracer tracing.TracingInterface, logger logging.LoggerInterface) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}

	s := new(Store)
	s.db = db
	s.tracer = tracer
	s.logger = logger

	return s, nil
}
