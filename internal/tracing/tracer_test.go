// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
)

func TestNoopTracerStartsSpans(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("noop tracer must not produce sampled spans")
	}
}

func TestNewConfig(t *testing.T) {
	c := NewConfig(true, "collector:4317", "", logging.NewNoopLogger())

	if !c.Enabled || c.OtelGRPCEndpoint != "collector:4317" || c.ServiceName != serviceName {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestMiddlewareOpenTelemetry(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logger), logger)

	h := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected wrapped handler to run, got %d", rr.Code)
	}
}
