// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rental-service/internal/authorization"
	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
)

type API struct {
	service  ServiceInterface
	sessions SessionInvalidatorInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the routes open to anonymous callers
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/register", a.register)
}

// RegisterProtectedEndpoints mounts the routes that need an authenticated user
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Get("/me", a.me)
	mux.Get("/users", a.listUsers)
	mux.Get("/users/{id}", a.getUser)
	mux.Put("/users/{id}", a.updateDetails)
	mux.Put("/users/{id}/password", a.changePassword)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.register")
	defer span.End()

	var req RegisterRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	user, warnings, err := a.service.Register(ctx, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, httptypes.Response{
		Data:     user,
		Message:  "user registered",
		Warnings: warnings,
	})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.me")
	defer span.End()

	user, err := a.service.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: user})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.listUsers")
	defer span.End()

	actor, err := a.service.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := authorization.RequireAdmin(actor).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, "list_users", "users")
		a.writeError(w, err)
		return
	}

	users, err := a.service.ListUsers(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: users})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.getUser")
	defer span.End()

	id := chi.URLParam(r, "id")

	actor, err := a.service.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := authorization.RequireSelfOrAdmin(actor, id).Err(); err != nil {
		a.logger.Security().AuthzFailure(actor.ID, "get_user", "user:"+id)
		a.writeError(w, err)
		return
	}

	user, err := a.service.GetUser(ctx, id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: user})
}

func (a *API) updateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.updateDetails")
	defer span.End()

	id := chi.URLParam(r, "id")

	var req UpdateDetailsRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.service.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	user, warnings, err := a.service.UpdateDetails(ctx, actor, id, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// changed credentials of the caller only apply after a new login
	reauth := actor.ID == id
	if reauth {
		if err := a.sessions.InvalidateUserSessions(ctx, id); err != nil {
			a.logger.Errorf("failed to invalidate sessions of %s: %v", id, err)
		}
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{
		Data:           user,
		Message:        "user details updated",
		Warnings:       warnings,
		Reauthenticate: reauth,
	})
}

func (a *API) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.changePassword")
	defer span.End()

	id := chi.URLParam(r, "id")

	var req ChangePasswordRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.service.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if actor.ID != id {
		a.logger.Security().AuthzFailure(actor.ID, "change_password", "user:"+id)
		httptypes.WriteError(w, authorization.Deny(nil).Err())
		return
	}

	if err := a.service.ChangePassword(ctx, actor, req); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Message: "password changed"})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("users request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func NewAPI(service ServiceInterface, sessions SessionInvalidatorInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.sessions = sessions
	a.tracer = tracer
	a.logger = logger

	return a
}
