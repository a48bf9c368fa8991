// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

const (
	// HeaderName is set by the identity-aware proxy in front of the service
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

// Middleware trusts the proxy header, it is used when bearer token
// authentication is disabled
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		// a blank header leaves the request anonymous, handlers decide whether that is a 401
		if userID := strings.TrimSpace(r.Header.Get(HeaderName)); userID != "" {
			ctx = WithUserID(ctx, userID)
		} else {
			m.logger.Debugf("anonymous %s %s", r.Method, r.URL.Path)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
