// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(tracing.NewNoopTracer(), logging.NewNoopLogger())
	require.NoError(t, err)

	return s
}

func seedOwner(t *testing.T, s *Store, username, phone string) (*types.User, *types.Owner) {
	t.Helper()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, &types.User{Username: username, Email: username + "@example.com", Roles: []types.Role{types.RoleUser}})
	require.NoError(t, err)

	o, err := s.CreateOwner(ctx, &types.Owner{UserID: u.ID, FirstName: "Ana", LastName: "Horvat", Phone: phone, Active: true})
	require.NoError(t, err)

	return u, o
}

func seedTenant(t *testing.T, s *Store, username string) *types.Tenant {
	t.Helper()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, &types.User{Username: username, Email: username + "@example.com"})
	require.NoError(t, err)

	tenant, err := s.CreateTenant(ctx, &types.Tenant{UserID: u.ID, FirstName: "Ivo", LastName: "Ivic", Phone: "+385 1 234 567"})
	require.NoError(t, err)

	return tenant
}

func TestStore_UserUniqueness(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, &types.User{Username: "ana", Email: "Ana@Example.com"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, &types.User{Username: "ana", Email: "other@example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = s.CreateUser(ctx, &types.User{Username: "ana2", Email: "ana@example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	u, err := s.GetUserByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
}

func TestStore_RolesAreCopied(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, &types.User{Username: "ana", Email: "ana@example.com", Roles: []types.Role{types.RoleUser}})
	require.NoError(t, err)

	u.GrantRole(types.RoleAdmin)

	stored, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin())

	require.NoError(t, s.AddUserRole(ctx, u.ID, types.RoleOwner))
	require.NoError(t, s.AddUserRole(ctx, u.ID, types.RoleOwner))

	stored, err = s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.Role{types.RoleUser, types.RoleOwner}, stored.Roles)

	assert.ErrorIs(t, s.AddUserRole(ctx, "missing", types.RoleOwner), storage.ErrForeignKeyViolation)
}

func TestStore_WithTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.CreateUser(ctx, &types.User{Username: "ana", Email: "ana@example.com"}); err != nil {
			return err
		}

		return s.WithTx(ctx, func(ctx context.Context) error {
			if _, err := s.GetUserByUsername(ctx, "ana"); err != nil {
				return err
			}
			return boom
		})
	})

	assert.ErrorIs(t, err, boom)

	_, err = s.GetUserByUsername(ctx, "ana")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_SingleSystemOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1, err := s.CreateUser(ctx, &types.User{Username: "system", Email: "system@external.local"})
	require.NoError(t, err)
	u2, err := s.CreateUser(ctx, &types.User{Username: "other", Email: "other@external.local"})
	require.NoError(t, err)

	_, err = s.CreateOwner(ctx, &types.Owner{UserID: u1.ID, FirstName: "System", LastName: "Owner", Phone: "+0000000000", SystemOwner: true, Active: true})
	require.NoError(t, err)

	_, err = s.CreateOwner(ctx, &types.Owner{UserID: u2.ID, FirstName: "Other", LastName: "Owner", Phone: "+1111111111", SystemOwner: true, Active: true})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	o, err := s.GetSystemOwner(ctx)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, o.UserID)
}

func TestStore_OwnerPhoneUnique(t *testing.T) {
	s := newTestStore(t)

	seedOwner(t, s, "ana", "+385 91 000 0000")

	u, err := s.CreateUser(context.Background(), &types.User{Username: "marko", Email: "marko@example.com"})
	require.NoError(t, err)

	_, err = s.CreateOwner(context.Background(), &types.Owner{UserID: u.ID, FirstName: "Marko", LastName: "Maric", Phone: "+385 91 000 0000"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestStore_ListingRenterConstraints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, owner := seedOwner(t, s, "ana", "+385 91 000 0000")
	tenant := seedTenant(t, s, "ivo")

	rentedFlat, err := s.CreateListing(ctx, &types.Listing{Title: "First", Price: 500, Status: types.ListingApproved, OwnerID: owner.ID})
	require.NoError(t, err)
	freeFlat, err := s.CreateListing(ctx, &types.Listing{Title: "Second", Price: 700, Status: types.ListingApproved, OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, rentedFlat.MarkRented(tenant.ID))
	require.NoError(t, s.UpdateListing(ctx, rentedFlat))

	require.NoError(t, freeFlat.MarkRented(tenant.ID))
	assert.ErrorIs(t, s.UpdateListing(ctx, freeFlat), storage.ErrDuplicateKey)

	inconsistent := &types.Listing{ID: freeFlat.ID, Title: "Second", Status: types.ListingRented}
	assert.Error(t, s.UpdateListing(ctx, inconsistent))

	rented, err := s.GetListingByTenantID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, rentedFlat.ID, rented.ID)

	assert.ErrorIs(t, s.DeleteTenant(ctx, tenant.ID), storage.ErrForeignKeyViolation)
	assert.ErrorIs(t, s.DeleteOwner(ctx, owner.ID), storage.ErrForeignKeyViolation)
}

func TestStore_Applications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, owner := seedOwner(t, s, "ana", "+385 91 000 0000")
	t1 := seedTenant(t, s, "ivo")
	t2 := seedTenant(t, s, "eva")

	l, err := s.CreateListing(ctx, &types.Listing{Title: "Flat", Price: 500, Status: types.ListingApproved, OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, s.AddApplication(ctx, t1.ID, l.ID))
	require.NoError(t, s.AddApplication(ctx, t2.ID, l.ID))
	assert.ErrorIs(t, s.AddApplication(ctx, t1.ID, l.ID), storage.ErrDuplicateKey)
	assert.ErrorIs(t, s.AddApplication(ctx, t1.ID, "missing"), storage.ErrForeignKeyViolation)

	applicants, err := s.ListApplicants(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 2)
	assert.Equal(t, t1.ID, applicants[0].ID)
	assert.Equal(t, t2.ID, applicants[1].ID)

	applied, err := s.ListAppliedListings(ctx, t2.ID)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, l.ID, applied[0].ID)

	require.NoError(t, s.DeleteListing(ctx, l.ID))

	ok, err := s.HasApplication(ctx, t1.ID, l.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ListListings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, owner := seedOwner(t, s, "ana", "+385 91 000 0000")
	scraped := time.Now().Add(-10 * 24 * time.Hour)

	for _, l := range []*types.Listing{
		{Title: "Sunny FLAT", Price: 300, Status: types.ListingApproved, OwnerID: owner.ID},
		{Title: "Dark flat", Price: 3000, Status: types.ListingApproved, OwnerID: owner.ID},
		{Title: "House", Price: 900, Status: types.ListingPending, OwnerID: owner.ID},
		{Title: "Imported flat", Price: 800, Status: types.ListingApproved, External: true, SourceURL: "https://source/1", DateScraped: &scraped},
	} {
		_, err := s.CreateListing(ctx, l)
		require.NoError(t, err)
	}

	external := false
	minPrice, maxPrice := 0, 1000

	listings, err := s.ListListings(ctx, types.ListingFilter{Title: "flat", MinPrice: &minPrice, MaxPrice: &maxPrice, External: &external})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Sunny FLAT", listings[0].Title)

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	stale, err := s.ListListings(ctx, types.ListingFilter{ScrapedBefore: &cutoff})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.True(t, stale[0].External)

	page, err := s.ListListings(ctx, types.ListingFilter{OwnerID: owner.ID, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	empty, err := s.ListListings(ctx, types.ListingFilter{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.CreateListing(ctx, &types.Listing{Title: "Copy", External: true, SourceURL: "https://source/1", DateScraped: &scraped, Status: types.ListingApproved})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}
