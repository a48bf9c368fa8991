// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/contact"
	"github.com/canonical/rental-service/pkg/external"
	"github.com/canonical/rental-service/pkg/listings"
	"github.com/canonical/rental-service/pkg/metrics"
	"github.com/canonical/rental-service/pkg/owners"
	"github.com/canonical/rental-service/pkg/status"
	"github.com/canonical/rental-service/pkg/tenants"
	"github.com/canonical/rental-service/pkg/users"
	"github.com/canonical/rental-service/pkg/webhooks"
	"github.com/canonical/rental-service/pkg/workflow"
)

const APIPrefix = "/api/v0"

// Services groups the domain services exposed over HTTP
type Services struct {
	Users    users.ServiceInterface
	Listings *listings.Service
	Owners   owners.ServiceInterface
	Tenants  tenants.ServiceInterface
	Workflow workflow.ServiceInterface
	Contact  contact.ServiceInterface
	External external.ServiceInterface
	Webhooks webhooks.ServiceInterface

	Sessions     workflow.SessionInvalidatorInterface
	Dependencies map[string]status.PingerInterface

	ExternalGraceDays int
}

func NewRouter(
	svc Services,
	authenticate func(http.Handler) http.Handler,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	usersAPI := users.NewAPI(svc.Users, svc.Sessions, tracer, logger)
	listingsAPI := listings.NewAPI(svc.Listings, tracer, logger)
	ownersAPI := owners.NewAPI(svc.Owners, svc.Listings, svc.Users, tracer, logger)
	tenantsAPI := tenants.NewAPI(svc.Tenants, svc.Users, tracer, logger)
	workflowAPI := workflow.NewAPI(svc.Workflow, svc.Users, svc.Sessions, tracer, logger)
	externalAPI := external.NewAPI(svc.External, svc.Users, svc.ExternalGraceDays, tracer, logger)

	router.Route(APIPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(svc.Dependencies, tracer, monitor, logger).RegisterEndpoints(r)
		webhooks.NewAPI(svc.Webhooks, tracer, logger).RegisterEndpoints(r)
		contact.NewAPI(svc.Contact, tracer, logger).RegisterEndpoints(r)

		usersAPI.RegisterEndpoints(r)
		listingsAPI.RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			usersAPI.RegisterProtectedEndpoints(r)
			ownersAPI.RegisterProtectedEndpoints(r)
			tenantsAPI.RegisterProtectedEndpoints(r)
			workflowAPI.RegisterProtectedEndpoints(r)
			externalAPI.RegisterProtectedEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
