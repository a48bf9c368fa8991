// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/storage/memory"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/pkg/listings"
	"github.com/canonical/rental-service/pkg/owners"
	"github.com/canonical/rental-service/pkg/tenants"
)

//go:generate mockgen -build_flags=--mod=mod -package workflow -destination ./mock_interfaces.go -source=./interfaces.go

type fixture struct {
	store    *memory.Store
	service  *Service
	authz    *MockAuthorizerInterface
	identity *MockIdentityInterface

	sent      []notifications.Notification
	notifyErr error

	// listing id to user id of every renter tuple removed
	removedRenters map[string]string

	admin *types.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	store, err := memory.NewStore(tracer, logger)
	require.NoError(t, err)

	f := &fixture{
		store:    store,
		authz:    NewMockAuthorizerInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
	}

	notifier := NewMockNotifierInterface(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, n notifications.Notification) error {
			f.sent = append(f.sent, n)
			return f.notifyErr
		},
	)

	publisher := NewMockEventPublisherInterface(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	f.authz.EXPECT().LinkListing(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	f.authz.EXPECT().AssignListingOwner(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	f.authz.EXPECT().RemoveListingOwner(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	f.authz.EXPECT().AssignListingTenant(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	f.removedRenters = map[string]string{}
	f.authz.EXPECT().RemoveListingTenant(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, listingID, userID string) error {
			f.removedRenters[listingID] = userID
			return nil
		},
	)
	f.authz.EXPECT().DeleteListing(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	catalog := listings.NewService(store, tracer, monitor, logger)
	f.service = NewService(
		store,
		catalog,
		owners.NewService(store, catalog, tracer, monitor, logger),
		tenants.NewService(store, tracer, monitor, logger),
		notifier,
		publisher,
		f.authz,
		f.identity,
		tracer,
		monitor,
		logger,
	)

	f.admin = f.user(t, "admin", types.RoleAdmin)

	return f
}

func (f *fixture) user(t *testing.T, name string, roles ...types.Role) *types.User {
	t.Helper()

	u, err := f.store.CreateUser(context.Background(), &types.User{
		Username: name,
		Email:    name + "@example.com",
		Roles:    append([]types.Role{types.RoleUser}, roles...),
	})
	require.NoError(t, err)

	return u
}

// reload returns the stored user, roles included
func (f *fixture) reload(t *testing.T, u *types.User) *types.User {
	t.Helper()

	stored, err := f.store.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)

	return stored
}

func (f *fixture) lastSent(t *testing.T) notifications.Notification {
	t.Helper()
	require.NotEmpty(t, f.sent, "no notification was sent")

	return f.sent[len(f.sent)-1]
}

func listingRequest(title string) SubmitListingRequest {
	return SubmitListingRequest{
		ListingRequest: listings.ListingRequest{
			Title:          title,
			Description:    "Bright and quiet",
			Address:        "Ilica 10, Zagreb",
			Price:          650,
			Size:           45,
			Rooms:          2,
			PropertyType:   "apartment",
			RentalDuration: "12 months",
		},
	}
}

func profile(first, phone string) *types.Profile {
	return &types.Profile{FirstName: first, LastName: "Test", Phone: phone}
}

// submitApproved lists a new approved listing of u, creating the owner profile if needed
func (f *fixture) submitApproved(t *testing.T, u *types.User, phone string) *types.Listing {
	t.Helper()
	ctx := context.Background()

	req := listingRequest("Flat of " + u.Username)
	req.Profile = profile(u.Username, phone)

	l, _, err := f.service.SubmitListing(ctx, f.reload(t, u), req)
	require.NoError(t, err)

	l, _, err = f.service.ApproveListing(ctx, f.admin, l.ID)
	require.NoError(t, err)

	return l
}

// rentTo makes tenant user tu the renter of l
func (f *fixture) rentTo(t *testing.T, owner, tu *types.User, l *types.Listing) *types.Tenant {
	t.Helper()
	ctx := context.Background()

	tenant, _, err := f.service.ApplyForListing(ctx, f.reload(t, tu), l.ID, profile(tu.Username, "+385 98 765 432"))
	require.NoError(t, err)

	_, _, err = f.service.ApproveApplication(ctx, f.reload(t, owner), l.ID, tenant.ID)
	require.NoError(t, err)

	return tenant
}

// assertConsistent checks the invariants linking listings and tenants
func (f *fixture) assertConsistent(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	all, err := f.store.ListListings(ctx, types.ListingFilter{})
	require.NoError(t, err)

	renters := map[string]int{}
	for _, l := range all {
		assert.Equal(t, l.HasRenter(), l.Status == types.ListingRented, "listing %s: renter and status disagree", l.ID)
		if l.HasRenter() {
			renters[l.TenantID]++
		}
	}

	for tenantID, n := range renters {
		assert.Equal(t, 1, n, "tenant %s rents %d listings", tenantID, n)
	}
}

func TestService_SubmitListingGrantsOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")

	req := listingRequest("Sunny flat")
	req.Profile = profile("Ana", "+385 91 123 4567")

	l, res, err := f.service.SubmitListing(ctx, u, req)
	require.NoError(t, err)

	assert.True(t, res.AwaitingApproval)
	assert.Equal(t, []string{u.ID}, res.InvalidateSessions)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, types.ListingPending, l.Status)
	assert.False(t, l.External)
	assert.Empty(t, l.TenantID)

	owner, err := f.store.GetOwnerByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, l.OwnerID)
	assert.True(t, f.reload(t, u).HasRole(types.RoleOwner))

	sent := f.lastSent(t)
	assert.Equal(t, notifications.Template("ownerCreated"), sent.Template)
	assert.Equal(t, u.Email, sent.To)
	assert.Equal(t, "Sunny flat", sent.Data["title"])

	// a known owner needs no profile and keeps the session
	_, res, err = f.service.SubmitListing(ctx, f.reload(t, u), listingRequest("Second flat"))
	require.NoError(t, err)
	assert.Empty(t, res.InvalidateSessions)
}

func TestService_SubmitListingValidation(t *testing.T) {
	testCases := []struct {
		name    string
		profile *types.Profile
		mutate  func(*SubmitListingRequest)
	}{
		{
			name: "missing profile",
		},
		{
			name:    "bad phone",
			profile: profile("Ana", "not a phone"),
		},
		{
			name:    "first name too long",
			profile: profile("Anastasia-Magdalena-X", "+385 91 123 4567"),
		},
		{
			name:    "invalid listing rolls back the profile",
			profile: profile("Ana", "+385 91 123 4567"),
			mutate:  func(r *SubmitListingRequest) { r.Price = 25000 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			u := f.user(t, "ana")

			req := listingRequest("Flat")
			req.Profile = tc.profile
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			_, _, err := f.service.SubmitListing(ctx, u, req)
			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}

			if _, err := f.store.GetOwnerByUserID(ctx, u.ID); err == nil {
				t.Errorf("owner profile was created")
			}

			if f.reload(t, u).HasRole(types.RoleOwner) {
				t.Errorf("owner role was granted")
			}

			if len(f.sent) != 0 {
				t.Errorf("expected no notification, got %v", f.sent)
			}
		})
	}
}

func TestService_NotificationFailureIsAWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.notifyErr = errors.New("smtp unavailable")

	req := listingRequest("Flat")
	req.Profile = profile("Ana", "+385 91 123 4567")

	l, res, err := f.service.SubmitListing(ctx, f.user(t, "ana"), req)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)

	_, err = f.store.GetListingByID(ctx, l.ID)
	assert.NoError(t, err, "listing must survive a failed notification")
}

func TestService_ApproveListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")
	req := listingRequest("Flat")
	req.Profile = profile("Ana", "+385 91 123 4567")

	l, _, err := f.service.SubmitListing(ctx, u, req)
	require.NoError(t, err)

	_, _, err = f.service.ApproveListing(ctx, f.reload(t, u), l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden, "owners cannot approve")

	approved, _, err := f.service.ApproveListing(ctx, f.admin, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, approved.Status)

	sent := f.lastSent(t)
	assert.Equal(t, notifications.Template("adminApproved"), sent.Template)
	assert.Equal(t, u.Email, sent.To)

	_, _, err = f.service.ApproveListing(ctx, f.admin, l.ID)
	assert.ErrorIs(t, err, types.ErrIllegalState)

	_, _, err = f.service.RejectListing(ctx, f.admin, l.ID)
	assert.ErrorIs(t, err, types.ErrIllegalState)
}

func TestService_ApplicationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")
	tu := f.user(t, "ivo")

	_, _, err := f.service.ApplyForListing(ctx, tu, l.ID, nil)
	assert.ErrorIs(t, err, types.ErrValidation, "first application needs a profile")

	tenant, res, err := f.service.ApplyForListing(ctx, tu, l.ID, profile("Ivo", "+385 98 765 432"))
	require.NoError(t, err)
	assert.False(t, res.AlreadyApplied)
	assert.Equal(t, []string{tu.ID}, res.InvalidateSessions)
	assert.Equal(t, types.RentalApplied, tenant.RentalStatus)
	assert.True(t, f.reload(t, tu).HasRole(types.RoleTenant))

	_, res, err = f.service.ApplyForListing(ctx, f.reload(t, tu), l.ID, nil)
	require.NoError(t, err)
	assert.True(t, res.AlreadyApplied)
	assert.Empty(t, res.InvalidateSessions)

	applicants, err := f.service.ViewApplications(ctx, f.reload(t, ou), l.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)

	_, err = f.service.ViewApplications(ctx, f.reload(t, tu), l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	rented, _, err := f.service.ApproveApplication(ctx, f.reload(t, ou), l.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingRented, rented.Status)
	assert.Equal(t, tenant.ID, rented.TenantID)

	stored, err := f.store.GetTenantByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RentalRenting, stored.RentalStatus)

	sent := f.lastSent(t)
	assert.Equal(t, notifications.Template("tenantApproval"), sent.Template)
	assert.Equal(t, tu.Email, sent.To)

	f.assertConsistent(t)
}

func TestService_DoubleRenting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	first := f.submitApproved(t, ou, "+385 91 123 4567")
	second := f.submitApproved(t, ou, "+385 91 123 4567")

	t1 := f.user(t, "ivo")
	t2 := f.user(t, "eva")

	tenant1 := f.rentTo(t, ou, t1, first)

	tenant2, _, err := f.service.ApplyForListing(ctx, t2, first.ID, profile("Eva", "+385 95 111 222"))
	require.NoError(t, err)

	_, _, err = f.service.ApproveApplication(ctx, f.reload(t, ou), first.ID, tenant2.ID)
	assert.ErrorIs(t, err, types.ErrConflict, "listing already rented")

	_, _, err = f.service.ApplyForListing(ctx, f.reload(t, t1), second.ID, nil)
	assert.ErrorIs(t, err, types.ErrConflict, "tenant already renting")

	_, _, err = f.service.AssignTenant(ctx, f.admin, second.ID, tenant1.ID)
	assert.ErrorIs(t, err, types.ErrConflict)

	f.assertConsistent(t)
}

func TestService_UnassignWrongTenant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")
	renter := f.rentTo(t, ou, f.user(t, "ivo"), l)

	other, _, err := f.service.CreateTenantProfile(ctx, f.admin, f.user(t, "eva").ID, *profile("Eva", "+385 95 111 222"))
	require.NoError(t, err)

	_, _, err = f.service.UnassignTenant(ctx, f.reload(t, ou), l.ID, other.ID)
	assert.ErrorIs(t, err, types.ErrBadRequest)

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingRented, stored.Status)
	assert.Equal(t, renter.ID, stored.TenantID)

	for id, status := range map[string]types.RentalStatus{renter.ID: types.RentalRenting, other.ID: types.RentalApplied} {
		tenant, err := f.store.GetTenantByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, tenant.RentalStatus)
	}
}

func TestService_Guard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")

	intruder := f.user(t, "mallory")
	f.submitApproved(t, intruder, "+385 92 000 000")
	intruder = f.reload(t, intruder)

	_, _, err := f.service.DeleteListing(ctx, intruder, l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	_, _, err = f.service.DisableListing(ctx, intruder, l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	_, _, err = f.service.UnassignOwner(ctx, f.user(t, "plain"), l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	_, _, err = f.service.AssignOwner(ctx, nil, l.ID, "any")
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, stored.Status)
}

func TestService_DeleteListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")
	tenant := f.rentTo(t, ou, f.user(t, "ivo"), l)
	owner := f.reload(t, ou)

	_, _, err := f.service.DeleteListing(ctx, owner, l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden, "rented listings are vacated first")

	_, _, err = f.service.DisableListing(ctx, owner, l.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	vacated, _, err := f.service.UnassignTenant(ctx, owner, l.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, vacated.Status)

	removed, _, err := f.service.DeleteListing(ctx, owner, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, removed.ID)

	sent := f.lastSent(t)
	assert.Equal(t, notifications.TemplateListingDeleted, sent.Template)
	assert.Equal(t, ou.Email, sent.To)
	assert.Equal(t, l.Address, sent.Data["address"])

	stored, err := f.store.GetTenantByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RentalCanceled, stored.RentalStatus)

	applied, err := f.store.ListAppliedListings(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestService_AssignOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.user(t, "ana")
	l := f.submitApproved(t, first, "+385 91 123 4567")

	second := f.user(t, "bob")
	next, _, err := f.service.CreateOwnerProfile(ctx, f.admin, second.ID, *profile("Bob", "+385 92 222 333"))
	require.NoError(t, err)

	// revoke so the assignment has a role to grant back
	_, _, err = f.service.RevokeRole(ctx, f.admin, second.ID, types.RoleOwner)
	require.NoError(t, err)

	assigned, res, err := f.service.AssignOwner(ctx, f.admin, l.ID, next.ID)
	require.NoError(t, err)
	assert.Equal(t, next.ID, assigned.OwnerID)
	assert.Equal(t, []string{second.ID}, res.InvalidateSessions)
	assert.True(t, f.reload(t, second).HasRole(types.RoleOwner))

	unassigned, _, err := f.service.UnassignOwner(ctx, f.reload(t, second), l.ID)
	require.NoError(t, err)
	assert.Empty(t, unassigned.OwnerID)
	assert.Equal(t, types.ListingDisabled, unassigned.Status)
}

func TestService_DeactivateOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	rented := f.submitApproved(t, ou, "+385 91 123 4567")
	other := f.submitApproved(t, ou, "+385 91 123 4567")
	f.rentTo(t, ou, f.user(t, "ivo"), rented)

	owner, err := f.store.GetOwnerByUserID(ctx, ou.ID)
	require.NoError(t, err)

	_, _, err = f.service.DeactivateOwner(ctx, f.reload(t, ou), owner.ID)
	assert.ErrorIs(t, err, types.ErrForbidden, "admins only")

	_, _, err = f.service.DeactivateOwner(ctx, f.admin, owner.ID)
	assert.ErrorIs(t, err, types.ErrConflict)

	for id, status := range map[string]types.ListingStatus{rented.ID: types.ListingRented, other.ID: types.ListingApproved} {
		l, err := f.store.GetListingByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, l.Status)
	}
}

func TestService_DeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")
	tenant := f.rentTo(t, ou, f.user(t, "ivo"), l)

	_, err := f.service.DeleteUser(ctx, f.admin, f.admin.ID)
	assert.ErrorIs(t, err, types.ErrForbidden, "admins cannot be deleted")

	_, err = f.service.DeleteUser(ctx, f.user(t, "stranger"), ou.ID)
	assert.ErrorIs(t, err, types.ErrForbidden)

	f.identity.EXPECT().DeleteIdentity(gomock.Any(), ou.ID).Return(errors.New("identity provider down"))

	res, err := f.service.DeleteUser(ctx, f.reload(t, ou), ou.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ou.ID}, res.InvalidateSessions)

	_, err = f.store.GetUserByID(ctx, ou.ID)
	assert.Error(t, err)

	_, err = f.store.GetListingByID(ctx, l.ID)
	assert.Error(t, err)

	stored, err := f.store.GetTenantByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RentalCanceled, stored.RentalStatus)

	sent := f.lastSent(t)
	assert.Equal(t, notifications.TemplateAccountDeleted, sent.Template)
	assert.Equal(t, ou.Email, sent.To)

	f.assertConsistent(t)
}

func TestService_DeleteTenantUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ou := f.user(t, "ana")
	l := f.submitApproved(t, ou, "+385 91 123 4567")
	tu := f.user(t, "ivo")
	f.rentTo(t, ou, tu, l)

	f.identity.EXPECT().DeleteIdentity(gomock.Any(), tu.ID).Return(nil)

	_, err := f.service.DeleteUser(ctx, f.admin, tu.ID)
	require.NoError(t, err)

	stored, err := f.store.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ListingApproved, stored.Status)
	assert.Empty(t, stored.TenantID)

	assert.Equal(t, tu.ID, f.removedRenters[l.ID], "the renter tuple goes with the tenant")
}

func TestService_Roles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "ana")

	_, _, err := f.service.GrantRole(ctx, f.admin, u.ID, types.RoleOwner)
	assert.ErrorIs(t, err, types.ErrValidation, "owner role needs a profile")

	_, _, err = f.service.GrantRole(ctx, u, u.ID, types.RoleAdmin)
	assert.ErrorIs(t, err, types.ErrForbidden)

	f.authz.EXPECT().AssignPlatformAdmin(gomock.Any(), u.ID).Return(nil)

	granted, res, err := f.service.GrantRole(ctx, f.admin, u.ID, types.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, granted.IsAdmin())
	assert.Equal(t, []string{u.ID}, res.InvalidateSessions)

	_, res, err = f.service.GrantRole(ctx, f.admin, u.ID, types.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.Empty(t, res.InvalidateSessions)

	_, _, err = f.service.RevokeRole(ctx, f.admin, u.ID, types.RoleUser)
	assert.ErrorIs(t, err, types.ErrValidation)

	_, _, err = f.service.RevokeRole(ctx, f.admin, f.admin.ID, types.RoleAdmin)
	assert.ErrorIs(t, err, types.ErrForbidden)

	f.authz.EXPECT().RemovePlatformAdmin(gomock.Any(), u.ID).Return(nil)

	revoked, _, err := f.service.RevokeRole(ctx, f.admin, u.ID, types.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, revoked.IsAdmin())
	assert.False(t, f.reload(t, u).IsAdmin())
}
