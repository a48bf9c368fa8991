// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package owners

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rental-service/internal/authorization"
	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
)

type API struct {
	service ServiceInterface
	catalog CatalogInterface
	actors  ActorResolverInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Get("/owners", a.listOwners)
	mux.Get("/owners/{id}", a.getOwner)
	mux.Get("/owners/{id}/listings", a.listOwnerListings)
}

func (a *API) listOwners(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "owners.API.listOwners")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := authorization.RequireAdmin(actor).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, "list_owners", "owners")
		a.writeError(w, err)
		return
	}

	owners, err := a.service.ListOwners(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: owners})
}

func (a *API) getOwner(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "owners.API.getOwner")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	owner, err := a.service.GetOwner(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := authorization.RequireSelfOrAdmin(actor, owner.UserID).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, "get_owner", "owner:"+owner.ID)
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: owner})
}

func (a *API) listOwnerListings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "owners.API.listOwnerListings")
	defer span.End()

	owner, err := a.service.GetOwner(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	listings, err := a.catalog.ListVisibleOwnerListings(ctx, owner.ID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: listings})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("owners request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func NewAPI(service ServiceInterface, catalog CatalogInterface, actors ActorResolverInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.catalog = catalog
	a.actors = actors
	a.tracer = tracer
	a.logger = logger

	return a
}
