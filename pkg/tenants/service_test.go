// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"errors"
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
)

//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_interfaces.go -source=./interfaces.go

type fixture struct {
	store   *memory.Store
	service *Service
	owner   *types.Owner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	logger := logging.NewNoopLogger()
	store, err := memory.NewStore(tracing.NewNoopTracer(), logger)
	require.NoError(t, err)

	ou, err := store.CreateUser(ctx, &types.User{Username: "owner", Email: "owner@example.com", Roles: []types.Role{types.RoleUser, types.RoleOwner}})
	require.NoError(t, err)
	owner, err := store.CreateOwner(ctx, &types.Owner{UserID: ou.ID, FirstName: "Ana", LastName: "Horvat", Phone: "+385 91 111 111", Active: true})
	require.NoError(t, err)

	return &fixture{
		store:   store,
		service: NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger),
		owner:   owner,
	}
}

func (f *fixture) listing(t *testing.T, status types.ListingStatus) *types.Listing {
	t.Helper()

	l, err := f.store.CreateListing(context.Background(), &types.Listing{
		Title:   "Flat",
		Address: "Main street 1",
		Price:   700,
		Rooms:   2,
		Status:  status,
		OwnerID: f.owner.ID,
	})
	require.NoError(t, err)

	return l
}

func (f *fixture) tenant(t *testing.T, name, phone string) (*types.User, *types.Tenant) {
	t.Helper()
	ctx := context.Background()

	u, err := f.store.CreateUser(ctx, &types.User{Username: name, Email: name + "@example.com", Roles: []types.Role{types.RoleUser}})
	require.NoError(t, err)

	tenant, granted, err := f.service.CreateForUser(ctx, u.ID, types.Profile{FirstName: name, LastName: "Tenant", Phone: phone})
	require.NoError(t, err)
	require.True(t, granted)

	return u, tenant
}

func TestService_CreateForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, tenant := f.tenant(t, "ivo", "+385 91 222 222")
	assert.Equal(t, types.RentalApplied, tenant.RentalStatus)

	stored, err := f.store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasRole(types.RoleTenant))

	_, _, err = f.service.CreateForUser(ctx, u.ID, types.Profile{FirstName: "Ivo", LastName: "Tenant", Phone: "+385 91 333 333"})
	assert.ErrorIs(t, err, types.ErrConflict)

	_, _, err = f.service.CreateForUser(ctx, "missing", types.Profile{FirstName: "Ivo", LastName: "Tenant", Phone: "+385 91 333 333"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestService_SubmitApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, tenant := f.tenant(t, "ivo", "+385 91 222 222")
	open := f.listing(t, types.ListingApproved)
	pending := f.listing(t, types.ListingPending)

	already, err := f.service.SubmitApplication(ctx, open.ID, tenant)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = f.service.SubmitApplication(ctx, open.ID, tenant)
	require.NoError(t, err)
	assert.True(t, already)

	applicants, err := f.store.ListApplicants(ctx, open.ID)
	require.NoError(t, err)
	assert.Len(t, applicants, 1, "applying twice keeps a single application")

	_, err = f.service.SubmitApplication(ctx, pending.ID, tenant)
	assert.ErrorIs(t, err, types.ErrConflict)

	_, err = f.service.SubmitApplication(ctx, "missing", tenant)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestService_ApproveApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, first := f.tenant(t, "ivo", "+385 91 222 222")
	_, second := f.tenant(t, "eva", "+385 91 333 333")
	l := f.listing(t, types.ListingApproved)
	other := f.listing(t, types.ListingApproved)

	_, err := f.service.ApproveApplication(ctx, first.ID, l.ID)
	assert.ErrorIs(t, err, types.ErrNotFound, "approval needs an application")

	for _, tenant := range []*types.Tenant{first, second} {
		_, err := f.service.SubmitApplication(ctx, l.ID, tenant)
		require.NoError(t, err)
	}

	rented, err := f.service.ApproveApplication(ctx, first.ID, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingRented, rented.Status)
	assert.Equal(t, first.ID, rented.TenantID)

	stored, err := f.store.GetTenantByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RentalRenting, stored.RentalStatus)

	_, err = f.service.ApproveApplication(ctx, second.ID, l.ID)
	assert.ErrorIs(t, err, types.ErrConflict, "listing already has a renter")

	_, err = f.service.SubmitApplication(ctx, other.ID, first)
	assert.ErrorIs(t, err, types.ErrConflict, "renting tenants cannot apply elsewhere")

	require.NoError(t, f.store.AddApplication(ctx, first.ID, other.ID))
	_, err = f.service.ApproveApplication(ctx, first.ID, other.ID)
	assert.ErrorIs(t, err, types.ErrConflict, "tenant already rents a listing")

	untouched, err := f.store.GetListingByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, untouched.Status)
}

func TestService_ApproveApplicationConflictsBeforeMissingApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, ivo := f.tenant(t, "ivo", "+385 91 222 222")
	_, eva := f.tenant(t, "eva", "+385 91 333 333")
	l := f.listing(t, types.ListingApproved)
	other := f.listing(t, types.ListingApproved)

	_, err := f.service.SubmitApplication(ctx, l.ID, ivo)
	require.NoError(t, err)
	_, err = f.service.ApproveApplication(ctx, ivo.ID, l.ID)
	require.NoError(t, err)

	_, err = f.service.ApproveApplication(ctx, eva.ID, l.ID)
	assert.ErrorIs(t, err, types.ErrConflict, "a rented listing conflicts even without an application")

	_, err = f.service.ApproveApplication(ctx, ivo.ID, other.ID)
	assert.ErrorIs(t, err, types.ErrConflict, "a renting tenant conflicts even without an application")

	_, err = f.service.ApproveApplication(ctx, eva.ID, other.ID)
	assert.ErrorIs(t, err, types.ErrNotFound, "a free pair still needs an application")

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, ivo.ID, stored.TenantID)

	storedEva, err := f.store.GetTenantByID(ctx, eva.ID)
	require.NoError(t, err)
	assert.NotEqual(t, types.RentalRenting, storedEva.RentalStatus)
}

func TestService_AssignAndUnassign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.store.CreateUser(ctx, &types.User{Username: "eva", Email: "eva@example.com", Roles: []types.Role{types.RoleUser}})
	require.NoError(t, err)
	tenant, err := f.store.CreateTenant(ctx, &types.Tenant{UserID: u.ID, FirstName: "Eva", LastName: "E", Phone: "+385 91 444 444"})
	require.NoError(t, err)

	_, other := f.tenant(t, "ivo", "+385 91 222 222")
	l := f.listing(t, types.ListingApproved)

	assigned, granted, err := f.service.AssignToListing(ctx, l.ID, tenant)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, tenant.ID, assigned.TenantID)

	_, err = f.service.UnassignFromListing(ctx, l.ID, other.ID)
	assert.ErrorIs(t, err, types.ErrBadRequest)

	vacated, err := f.service.UnassignFromListing(ctx, l.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, vacated.Status)
	assert.Empty(t, vacated.TenantID)

	stored, err := f.store.GetTenantByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RentalCanceled, stored.RentalStatus)

	rented, err := f.service.RentedListing(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, rented)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, tenant := f.tenant(t, "ivo", "+385 91 222 222")
	l := f.listing(t, types.ListingApproved)

	_, err := f.service.SubmitApplication(ctx, l.ID, tenant)
	require.NoError(t, err)
	_, err = f.service.ApproveApplication(ctx, tenant.ID, l.ID)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, tenant.ID))

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, stored.Status)
	assert.Empty(t, stored.TenantID)

	applicants, err := f.store.ListApplicants(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, applicants)

	_, err = f.service.GetTenant(ctx, tenant.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestService_ApproveApplicationStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   error
	}{
		{
			name: "listing missing",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().LockListing(gomock.Any(), "listing-1").Return(nil, storage.ErrNotFound)
			},
			expected: types.ErrNotFound,
		},
		{
			name: "lookup failure is not a domain error",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().LockListing(gomock.Any(), "listing-1").Return(&types.Listing{ID: "listing-1", Status: types.ListingApproved}, nil)
				m.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)
				m.EXPECT().GetListingByTenantID(gomock.Any(), "tenant-1").Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			)
			tc.setupMocks(mockStorage)

			_, err := s.ApproveApplication(context.Background(), "tenant-1", "listing-1")
			if err == nil {
				t.Fatalf("expected error")
			}

			if tc.expected != nil && !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}

			if tc.expected == nil && types.IsKind(err) {
				t.Errorf("expected an internal error, got %v", err)
			}
		})
	}
}

// tenantWritesFail lets every listing write through and rejects tenant updates
type tenantWritesFail struct {
	*memory.Store
}

func (s tenantWritesFail) UpdateTenant(context.Context, *types.Tenant) error {
	return errors.New("disk full")
}

func TestService_ApproveApplicationRollsBackListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, ivo := f.tenant(t, "ivo", "+385 91 222 222")
	l := f.listing(t, types.ListingApproved)

	_, err := f.service.SubmitApplication(ctx, l.ID, ivo)
	require.NoError(t, err)

	logger := logging.NewNoopLogger()
	failing := NewService(tenantWritesFail{f.store}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	_, err = failing.ApproveApplication(ctx, ivo.ID, l.ID)
	require.Error(t, err)
	assert.False(t, types.IsKind(err), "a storage failure is an internal error")

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, stored.Status, "the listing update is rolled back")
	assert.Empty(t, stored.TenantID)

	rented, err := f.service.RentedListing(ctx, ivo.ID)
	require.NoError(t, err)
	assert.Nil(t, rented)

	applied, err := f.store.HasApplication(ctx, ivo.ID, l.ID)
	require.NoError(t, err)
	assert.True(t, applied)
}
