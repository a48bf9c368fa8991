// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/storage/memory"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/pkg/listings"
)

//go:generate mockgen -build_flags=--mod=mod -package owners -destination ./mock_interfaces.go -source=./interfaces.go

type fixture struct {
	store   *memory.Store
	catalog *listings.Service
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	store, err := memory.NewStore(tracer, logger)
	require.NoError(t, err)

	catalog := listings.NewService(store, tracer, monitor, logger)

	return &fixture{
		store:   store,
		catalog: catalog,
		service: NewService(store, catalog, tracer, monitor, logger),
	}
}

func (f *fixture) user(t *testing.T, name string) *types.User {
	t.Helper()

	u, err := f.store.CreateUser(context.Background(), &types.User{Username: name, Email: name + "@example.com", Roles: []types.Role{types.RoleUser}})
	require.NoError(t, err)

	return u
}

func (f *fixture) listing(t *testing.T, ownerID string, approve bool) *types.Listing {
	t.Helper()
	ctx := context.Background()

	l, err := f.catalog.Create(ctx, listings.ListingRequest{
		Title:          "Flat",
		Description:    "A flat",
		Address:        "Main street 1",
		Price:          500,
		Size:           40,
		Rooms:          1,
		PropertyType:   "apartment",
		RentalDuration: "6 months",
		OwnerID:        ownerID,
	})
	require.NoError(t, err)

	if approve {
		l, err = f.catalog.Approve(ctx, l.ID)
		require.NoError(t, err)
	}

	return l
}

var profile = types.Profile{FirstName: "Ana", LastName: "Horvat", Phone: "+385 91 111 111"}

func TestService_CreateForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "ana")

	owner, granted, err := f.service.CreateForUser(ctx, u.ID, profile)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.True(t, owner.Active)

	stored, err := f.store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasRole(types.RoleOwner))

	_, _, err = f.service.CreateForUser(ctx, u.ID, profile)
	assert.ErrorIs(t, err, types.ErrConflict)

	other := f.user(t, "bob")
	_, _, err = f.service.CreateForUser(ctx, other.ID, profile)
	assert.ErrorIs(t, err, types.ErrConflict, "phone numbers are unique")

	_, _, err = f.service.CreateForUser(ctx, other.ID, types.Profile{FirstName: "Bob", LastName: "B", Phone: "call me"})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, _, err = f.service.CreateForUser(ctx, other.ID, types.Profile{FirstName: "Bartholomew-Maximilian", LastName: "B", Phone: "+385 91 333 333"})
	assert.ErrorIs(t, err, types.ErrValidation, "first name is limited to 20 characters")
}

func TestService_CreateForUserDuplicateKeys(t *testing.T) {
	testCases := []struct {
		name            string
		insertErr       error
		expectedMessage string
	}{
		{
			name:            "concurrent profile for the same user",
			insertErr:       &storage.DuplicateKeyError{What: "insert owner", Key: "owners_user_id_key"},
			expectedMessage: "already has an owner profile",
		},
		{
			name:            "phone taken by another owner",
			insertErr:       &storage.DuplicateKeyError{What: "insert owner", Key: "owners_phone_key"},
			expectedMessage: "phone number",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			logger := logging.NewNoopLogger()
			s := NewService(mockStorage, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

			mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
			mockStorage.EXPECT().GetOwnerByUserID(gomock.Any(), "user-1").Return(nil, fmt.Errorf("get owner: %w", storage.ErrNotFound))
			mockStorage.EXPECT().CreateOwner(gomock.Any(), gomock.Any()).Return(nil, tc.insertErr)

			_, _, err := s.CreateForUser(context.Background(), "user-1", profile)
			if !errors.Is(err, types.ErrConflict) {
				t.Fatalf("expected conflict, got %v", err)
			}

			if !strings.Contains(err.Error(), tc.expectedMessage) {
				t.Errorf("expected %q in %q", tc.expectedMessage, err.Error())
			}
		})
	}
}

func TestService_AssignToListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.user(t, "ana")
	owner, _, err := f.service.CreateForUser(ctx, first.ID, profile)
	require.NoError(t, err)
	l := f.listing(t, owner.ID, true)

	// bob has a profile but no OWNER role yet
	second := f.user(t, "bob")
	next, err := f.store.CreateOwner(ctx, &types.Owner{UserID: second.ID, FirstName: "Bob", LastName: "B", Phone: "+385 91 222 222", Active: true})
	require.NoError(t, err)

	assigned, granted, err := f.service.AssignToListing(ctx, l.ID, next)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, next.ID, assigned.OwnerID)

	stored, err := f.store.GetUserByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasRole(types.RoleOwner))

	unassigned, err := f.service.UnassignFromListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, unassigned.OwnerID)
	assert.Equal(t, types.ListingDisabled, unassigned.Status)
}

func TestService_Deactivate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")
	owner, _, err := f.service.CreateForUser(ctx, u.ID, profile)
	require.NoError(t, err)

	pending := f.listing(t, owner.ID, false)
	approved := f.listing(t, owner.ID, true)

	_, disabled, err := f.service.Deactivate(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, disabled, 2)

	for _, id := range []string{pending.ID, approved.ID} {
		l, err := f.store.GetListingByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, types.ListingDisabled, l.Status)
		assert.Equal(t, owner.ID, l.OwnerID)
	}

	_, _, err = f.service.Deactivate(ctx, owner.ID)
	assert.ErrorIs(t, err, types.ErrConflict)
}

func TestService_DeactivateWithRentedListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")
	owner, _, err := f.service.CreateForUser(ctx, u.ID, profile)
	require.NoError(t, err)

	l := f.listing(t, owner.ID, true)
	other := f.listing(t, owner.ID, true)

	tu := f.user(t, "ivo")
	tenant, err := f.store.CreateTenant(ctx, &types.Tenant{UserID: tu.ID, FirstName: "Ivo", LastName: "I", Phone: "+385 91 999 999"})
	require.NoError(t, err)

	require.NoError(t, l.MarkRented(tenant.ID))
	require.NoError(t, f.store.UpdateListing(ctx, l))

	_, _, err = f.service.Deactivate(ctx, owner.ID)
	assert.ErrorIs(t, err, types.ErrConflict)

	stored, err := f.store.GetOwnerByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)

	untouched, err := f.store.GetListingByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, untouched.Status)
}

func TestService_SystemOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	system, err := f.service.EnsureSystemOwner(ctx)
	require.NoError(t, err)
	assert.True(t, system.SystemOwner)

	again, err := f.service.EnsureSystemOwner(ctx)
	require.NoError(t, err)
	assert.Equal(t, system.ID, again.ID)

	_, _, err = f.service.Deactivate(ctx, system.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	assert.ErrorIs(t, f.service.Delete(ctx, system.ID), types.ErrForbidden)

	user, err := f.store.GetUserByUsername(ctx, SystemUsername)
	require.NoError(t, err)
	assert.True(t, user.HasRole(types.RoleOwner))
}

func TestService_Resolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")
	owner, _, err := f.service.CreateForUser(ctx, u.ID, profile)
	require.NoError(t, err)

	byActor, err := f.service.Resolve(ctx, "", u)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, byActor.ID)

	byID, err := f.service.Resolve(ctx, owner.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, byID.ID)

	stranger := f.user(t, "bob")
	_, err = f.service.Resolve(ctx, "", stranger)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
