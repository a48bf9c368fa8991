// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		expectedID string
		expectedOK bool
	}{
		{name: "header set", header: "user-1", expectedID: "user-1", expectedOK: true},
		{name: "header padded", header: " user-1 ", expectedID: "user-1", expectedOK: true},
		{name: "header blank", header: "   "},
		{name: "header missing"},
	}

	logger := logging.NewNoopLogger()
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				id string
				ok bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok = GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(HeaderName, tc.header)
			}

			m.HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if id != tc.expectedID || ok != tc.expectedOK {
				t.Errorf("expected (%q, %v), got (%q, %v)", tc.expectedID, tc.expectedOK, id, ok)
			}
		})
	}
}
