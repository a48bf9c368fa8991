// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/rental-service/internal/logging"
)

func TestMonitorRegistersOnce(t *testing.T) {
	logger := logging.NewNoopLogger()

	m1 := NewMonitor("rental-service", logger)
	m2 := NewMonitor("rental-service", logger)

	if err := m1.IncrementDomainEvent(map[string]string{"event": "listing_submitted"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m2.IncrementDomainEvent(map[string]string{"event": "listing_submitted"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := testutil.ToFloat64(m1.domainEvents.With(map[string]string{"event": "listing_submitted"}))
	if got != 2 {
		t.Errorf("expected shared counter value 2, got %v", got)
	}
}

func TestMonitorMetrics(t *testing.T) {
	m := NewMonitor("rental-service", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/listings", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if m.GetService() != "rental-service" {
		t.Errorf("unexpected service %s", m.GetService())
	}
}
