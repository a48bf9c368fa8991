// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

func TestCleanupWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	svc := NewMockServiceInterface(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sweeps atomic.Int32

	// a failing sweep does not stop the worker
	first := svc.EXPECT().CleanupExternalListings(gomock.Any(), 7).DoAndReturn(
		func(context.Context, int) (*CleanupResult, error) {
			sweeps.Add(1)
			return nil, errors.New("database unavailable")
		},
	)
	svc.EXPECT().CleanupExternalListings(gomock.Any(), 7).After(first).MinTimes(1).DoAndReturn(
		func(context.Context, int) (*CleanupResult, error) {
			sweeps.Add(1)
			cancel()
			return &CleanupResult{}, nil
		},
	)

	w := NewCleanupWorker(svc, 10*time.Millisecond, 7, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}

	if n := sweeps.Load(); n < 2 {
		t.Errorf("expected at least 2 sweeps, got %d", n)
	}
}

func TestCleanupWorker_StopsBeforeFirstTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewCleanupWorker(NewMockServiceInterface(ctrl), time.Hour, 7, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
	w.Run(ctx)
}
