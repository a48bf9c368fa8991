// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"time"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

// CleanupWorker runs the stale listing sweep on a fixed interval
type CleanupWorker struct {
	service   ServiceInterface
	interval  time.Duration
	graceDays int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run sweeps once per interval until ctx is cancelled, a failed sweep is
// logged and retried on the next tick
func (w *CleanupWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Infof("external cleanup every %s with %d grace days", w.interval, w.graceDays)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("external cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	ctx, span := w.tracer.Start(ctx, "external.CleanupWorker.sweep")
	defer span.End()

	if _, err := w.service.CleanupExternalListings(ctx, w.graceDays); err != nil {
		w.logger.Errorf("external cleanup failed: %v", err)
		w.monitor.IncrementDomainEvent(map[string]string{"event": "external_cleanup_failed"})
	}
}

func NewCleanupWorker(service ServiceInterface, interval time.Duration, graceDays int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CleanupWorker {
	w := new(CleanupWorker)

	w.service = service
	w.interval = interval
	w.graceDays = graceDays
	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}
