// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rental-service/internal/authorization"
	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

type API struct {
	service   ServiceInterface
	actors    ActorResolverInterface
	graceDays int

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/external/listings", a.importListings)
	mux.Post("/external/cleanup", a.cleanup)
}

func (a *API) admin(w http.ResponseWriter, r *http.Request, action string) (*types.User, bool) {
	actor, err := a.actors.CurrentUser(r.Context())
	if err != nil {
		a.writeError(w, err)
		return nil, false
	}

	if err := authorization.RequireAdmin(actor).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, action, "external_listings")
		a.writeError(w, err)
		return nil, false
	}

	return actor, true
}

func (a *API) importListings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "external.API.importListings")
	defer span.End()

	actor, ok := a.admin(w, r.WithContext(ctx), "import_external")
	if !ok {
		return
	}

	var batch []Listing
	if err := httptypes.DecodeJSON(r, &batch); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	res, err := a.service.ImportListings(ctx, batch)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.logger.Security().AdminAction(actor.ID, "import_external", "external_listings")

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{
		Data:    res,
		Message: fmt.Sprintf("%d listings created, %d updated", res.Created, res.Updated),
	})
}

func (a *API) cleanup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "external.API.cleanup")
	defer span.End()

	actor, ok := a.admin(w, r.WithContext(ctx), "cleanup_external")
	if !ok {
		return
	}

	graceDays := a.graceDays
	if v := r.URL.Query().Get("grace_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httptypes.WriteError(w, types.NewError(types.ErrBadRequest, "grace_days must be an integer"))
			return
		}
		graceDays = n
	}

	res, err := a.service.CleanupExternalListings(ctx, graceDays)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.logger.Security().AdminAction(actor.ID, "cleanup_external", "external_listings")

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{
		Data:    res,
		Message: fmt.Sprintf("%d stale external listings removed", res.Removed),
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("external request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func NewAPI(service ServiceInterface, actors ActorResolverInterface, graceDays int, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.actors = actors
	a.graceDays = graceDays
	a.tracer = tracer
	a.logger = logger

	return a
}
