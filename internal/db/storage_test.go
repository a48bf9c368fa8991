// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logging.NewNoopLogger()

	return NewDBClientFromSQL(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestWithTxCommits(t *testing.T) {
	d, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := d.Statement(ctx).Update("listings").Set("status", "APPROVED").ExecContext(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	d, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Update("listings").Set("status", "APPROVED").ExecContext(ctx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTxNestedJoinsOuter(t *testing.T) {
	d, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE listings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Update("listings").Set("status", "RENTED").ExecContext(ctx); err != nil {
			return err
		}

		return d.WithTx(ctx, func(ctx context.Context) error {
			_, err := d.Statement(ctx).Update("tenants").Set("rental_status", "RENTING").ExecContext(ctx)
			return err
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTxBeginFailureRunsNothing(t *testing.T) {
	d, mock := newMockClient(t)

	refused := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(refused)

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := d.Statement(ctx).Update("listings").Set("status", "RENTED").ExecContext(ctx); err != nil {
			return err
		}

		var id string
		if err := d.Statement(ctx).Select("id").From("tenants").QueryRowContext(ctx).Scan(&id); err != nil {
			return err
		}

		_, err := d.Statement(ctx).Update("tenants").Set("rental_status", "RENTING").ExecContext(ctx)
		return err
	})
	if !errors.Is(err, refused) {
		t.Fatalf("expected the begin error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTxBeginFailureSurfacesWhenSwallowed(t *testing.T) {
	d, mock := newMockClient(t)

	refused := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(refused)

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		_, _ = d.Statement(ctx).Update("listings").Set("status", "RENTED").ExecContext(ctx)
		return nil
	})
	if !errors.Is(err, refused) {
		t.Fatalf("expected the begin error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestWithTxWithoutStatementsSkipsTransaction(t *testing.T) {
	d, mock := newMockClient(t)

	if err := d.WithTx(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	d := NewDBClientFromSQL(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing().WillReturnError(errors.New("down"))

	if err := d.Ping(context.Background()); err == nil {
		t.Error("expected ping error")
	}
}

func TestPagination(t *testing.T) {
	if PageSize(0) != defaultPageSize {
		t.Errorf("expected default page size")
	}
	if PageSize(20) != 20 {
		t.Errorf("expected page size 20")
	}
	if Offset(0, 20) != 0 || Offset(3, 20) != 40 {
		t.Errorf("unexpected offsets %d %d", Offset(0, 20), Offset(3, 20))
	}
}
