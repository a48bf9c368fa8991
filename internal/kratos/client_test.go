// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
}

func TestClient_DeleteIdentitySessions(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		expectErr bool
	}{
		{name: "sessions deleted", status: http.StatusNoContent},
		{name: "no sessions", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var path, method string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				path, method = r.URL.Path, r.Method
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				if tc.status >= 400 {
					w.Write([]byte(`{"error":{"message":"failed"}}`))
				}
			})

			err := c.DeleteIdentitySessions(context.Background(), "identity-1")

			if tc.expectErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectErr, err)
			}
			if method != http.MethodDelete || path != "/admin/identities/identity-1/sessions" {
				t.Errorf("unexpected request %s %s", method, path)
			}
		})
	}
}

func TestClient_DeleteIdentity(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteIdentity(context.Background(), "identity-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if path != "/admin/identities/identity-1" {
		t.Errorf("unexpected path %s", path)
	}
}
