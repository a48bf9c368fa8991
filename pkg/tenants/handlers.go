// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rental-service/internal/authorization"
	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

type API struct {
	service ServiceInterface
	actors  ActorResolverInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Get("/tenants", a.listTenants)
	mux.Get("/tenants/{id}", a.getTenant)
	mux.Get("/tenants/{id}/applications", a.listApplications)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.listTenants")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := authorization.RequireAdmin(actor).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, "list_tenants", "tenants")
		a.writeError(w, err)
		return
	}

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: tenants})
}

// authorizedTenant loads the tenant in the path, visible to its own user and admins
func (a *API) authorizedTenant(r *http.Request, action string) (*types.Tenant, error) {
	ctx := r.Context()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	if err := authorization.RequireSelfOrAdmin(actor, tenant.UserID).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, action, "tenant:"+tenant.ID)
		return nil, err
	}

	return tenant, nil
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.getTenant")
	defer span.End()

	tenant, err := a.authorizedTenant(r.WithContext(ctx), "get_tenant")
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: tenant})
}

func (a *API) listApplications(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.listApplications")
	defer span.End()

	tenant, err := a.authorizedTenant(r.WithContext(ctx), "list_applications")
	if err != nil {
		a.writeError(w, err)
		return
	}

	listings, err := a.service.ListAppliedListings(ctx, tenant.ID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: listings})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("tenants request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func NewAPI(service ServiceInterface, actors ActorResolverInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.actors = actors
	a.tracer = tracer
	a.logger = logger

	return a
}
