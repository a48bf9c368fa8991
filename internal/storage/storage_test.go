// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/rental-service/internal/db"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	return NewStorage(db.NewDBClientFromSQL(sqlDB, tracer, monitor, logger), tracer, monitor, logger), mock
}

func ownerRow(id string) *sqlmock.Rows {
	return sqlmock.NewRows(ownerColumns).
		AddRow(id, "user-1", "Ana", "Horvat", "+385 91 123 4567", false, true, time.Now())
}

func listingRow(rows *sqlmock.Rows, id, tenantID string, status types.ListingStatus) *sqlmock.Rows {
	var tenant any
	if tenantID != "" {
		tenant = tenantID
	}

	return rows.AddRow(
		id, "Flat in the centre", "", "Bright flat", "Main street 1", 900, 15, 60, 2,
		"apartment", "long term", string(status), false, nil, nil,
		"owner-1", tenant, time.Now(),
	)
}

func TestStorage_CreateOwner(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO owners")).
		WithArgs(sqlmock.AnyArg(), "user-1", "Ana", "Horvat", "+385 91 123 4567", false, true).
		WillReturnRows(ownerRow("owner-1"))

	o, err := s.CreateOwner(context.Background(), &types.Owner{
		UserID:    "user-1",
		FirstName: "Ana",
		LastName:  "Horvat",
		Phone:     "+385 91 123 4567",
		Active:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "owner-1", o.ID)
	assert.True(t, o.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_CreateOwnerDuplicate(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO owners")).
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "owners_user_id_key"})

	_, err := s.CreateOwner(context.Background(), &types.Owner{UserID: "user-1"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "owners_user_id_key")
	assert.True(t, DuplicateOn(err, "user_id"))
	assert.False(t, DuplicateOn(err, "phone"))
}

func TestStorage_GetOwnerByIDNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, first_name")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(ownerColumns))

	_, err := s.GetOwnerByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_GetUserByIDLoadsRoles(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "ana", "ana@example.com", "hash", nil, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_roles WHERE user_id IN ($1)")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role"}).
			AddRow("user-1", "OWNER").
			AddRow("user-1", "USER").
			AddRow("user-1", "SUPERUSER"))

	u, err := s.GetUserByID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.ElementsMatch(t, []types.Role{types.RoleOwner, types.RoleUser}, u.Roles)
	assert.Nil(t, u.LastLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_CreateUserWithRoles(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("kratos-1", "ana", "ana@example.com", "").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("kratos-1", "ana", "ana@example.com", "", nil, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
		WithArgs("kratos-1", "USER").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := s.CreateUser(context.Background(), &types.User{
		ID:       "kratos-1",
		Username: "ana",
		Email:    "ana@example.com",
		Roles:    []types.Role{types.RoleUser},
	})

	require.NoError(t, err)
	assert.Equal(t, []types.Role{types.RoleUser}, u.Roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_ListListingsFilter(t *testing.T) {
	s, mock := newTestStorage(t)

	external := false
	minPrice, maxPrice := 100, 1000

	mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE external = $1 AND status = $2 AND title ILIKE $3 AND price >= $4 AND price <= $5 ORDER BY created_at DESC, id LIMIT 10 OFFSET 10")).
		WithArgs(false, "APPROVED", `%50\% off%`, 100, 1000).
		WillReturnRows(listingRow(sqlmock.NewRows(listingColumns), "listing-1", "", types.ListingApproved))
	mock.ExpectQuery(regexp.QuoteMeta("FROM listing_images")).
		WillReturnRows(sqlmock.NewRows([]string{"listing_id", "url"}).
			AddRow("listing-1", "https://img/1.jpg").
			AddRow("listing-1", "https://img/2.jpg"))

	listings, err := s.ListListings(context.Background(), types.ListingFilter{
		External: &external,
		Status:   types.ListingApproved,
		Title:    " 50% off ",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Page:     2,
		PageSize: 10,
	})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, listings[0].Images)
	assert.Empty(t, listings[0].TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_LockListing(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1 FOR UPDATE")).
		WithArgs("listing-1").
		WillReturnRows(listingRow(sqlmock.NewRows(listingColumns), "listing-1", "tenant-1", types.ListingRented))
	mock.ExpectQuery(regexp.QuoteMeta("FROM listing_images")).
		WillReturnRows(sqlmock.NewRows([]string{"listing_id", "url"}))

	l, err := s.LockListing(context.Background(), "listing-1")

	require.NoError(t, err)
	assert.Equal(t, "tenant-1", l.TenantID)
	assert.True(t, l.HasRenter())
	assert.Equal(t, []string{}, l.Images)
}

func TestStorage_UpdateListingNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE listings SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.UpdateListing(context.Background(), &types.Listing{ID: "missing", Status: types.ListingApproved})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_UpdateListingReplacesImages(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE listings SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listing_images WHERE listing_id = $1")).
		WithArgs("listing-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listing_images (listing_id,position,url) VALUES ($1,$2,$3)")).
		WithArgs("listing-1", 0, "https://img/new.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpdateListing(context.Background(), &types.Listing{
		ID:     "listing-1",
		Status: types.ListingApproved,
		Images: []string{"https://img/new.jpg"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_AddApplicationDuplicate(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO applications")).
		WithArgs("tenant-1", "listing-1").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation})

	err := s.AddApplication(context.Background(), "tenant-1", "listing-1")

	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStorage_HasApplication(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM applications WHERE tenant_id = $1 AND listing_id = $2)")).
		WithArgs("tenant-1", "listing-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := s.HasApplication(context.Background(), "tenant-1", "listing-1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStorage_DeleteTenantForeignKey(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenants WHERE id = $1")).
		WithArgs("tenant-1").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation})

	err := s.DeleteTenant(context.Background(), "tenant-1")

	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
}

func TestAsDomainError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedKind error
	}{
		{name: "not found", err: fmt.Errorf("get owner: %w", ErrNotFound), expectedKind: types.ErrNotFound},
		{name: "duplicate", err: fmt.Errorf("create owner (owners_phone_key): %w", ErrDuplicateKey), expectedKind: types.ErrConflict},
		{name: "foreign key", err: fmt.Errorf("delete tenant: %w", ErrForeignKeyViolation), expectedKind: types.ErrConflict},
		{name: "domain error kept", err: types.NewError(types.ErrForbidden, "nope"), expectedKind: types.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := AsDomainError(tc.err, "owner %s", "o1")
			assert.ErrorIs(t, err, tc.expectedKind)
		})
	}

	assert.NoError(t, AsDomainError(nil, "unused"))

	internal := AsDomainError(errors.New("connection reset"), "load owner")
	assert.False(t, types.IsKind(internal))
	assert.Contains(t, internal.Error(), "load owner")
}
