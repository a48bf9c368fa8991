// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

type API struct {
	service  ServiceInterface
	actors   ActorResolverInterface
	sessions SessionInvalidatorInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/listings", a.submitListing)
	mux.Post("/listings/{id}/approve", a.approveListing)
	mux.Post("/listings/{id}/reject", a.rejectListing)
	mux.Post("/listings/{id}/disable", a.disableListing)
	mux.Delete("/listings/{id}", a.deleteListing)
	mux.Put("/listings/{id}/owner", a.assignOwner)
	mux.Delete("/listings/{id}/owner", a.unassignOwner)
	mux.Put("/listings/{id}/tenant", a.assignTenant)
	mux.Delete("/listings/{id}/tenant/{tenantID}", a.unassignTenant)
	mux.Post("/listings/{id}/applications", a.apply)
	mux.Get("/listings/{id}/applications", a.viewApplications)
	mux.Post("/listings/{id}/applications/{tenantID}/approve", a.approveApplication)

	mux.Post("/owners", a.createOwnerProfile)
	mux.Post("/owners/{id}/deactivate", a.deactivateOwner)
	mux.Post("/tenants", a.createTenantProfile)

	mux.Delete("/users/{id}", a.deleteUser)
	mux.Post("/users/{id}/roles", a.grantRole)
	mux.Delete("/users/{id}/roles/{role}", a.revokeRole)
}

// listingAction adapts the single listing mutations that take no body
func (a *API) listingAction(name, message string, fn func(context.Context, *types.User, string) (*types.Listing, Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "workflow.API."+name)
		defer span.End()

		actor, err := a.actors.CurrentUser(ctx)
		if err != nil {
			a.writeError(w, err)
			return
		}

		listing, res, err := fn(ctx, actor, chi.URLParam(r, "id"))
		if err != nil {
			a.writeError(w, err)
			return
		}

		a.respond(ctx, w, actor, http.StatusOK, listing, message, res)
	}
}

func (a *API) submitListing(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.submitListing")
	defer span.End()

	var req SubmitListingRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	listing, res, err := a.service.SubmitListing(ctx, actor, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusCreated, listing, "listing submitted and awaiting approval", res)
}

func (a *API) approveListing(w http.ResponseWriter, r *http.Request) {
	a.listingAction("approveListing", "listing approved", a.service.ApproveListing)(w, r)
}

func (a *API) rejectListing(w http.ResponseWriter, r *http.Request) {
	a.listingAction("rejectListing", "listing rejected", a.service.RejectListing)(w, r)
}

func (a *API) disableListing(w http.ResponseWriter, r *http.Request) {
	a.listingAction("disableListing", "listing disabled", a.service.DisableListing)(w, r)
}

func (a *API) deleteListing(w http.ResponseWriter, r *http.Request) {
	a.listingAction("deleteListing", "listing deleted", a.service.DeleteListing)(w, r)
}

func (a *API) unassignOwner(w http.ResponseWriter, r *http.Request) {
	a.listingAction("unassignOwner", "owner removed, listing disabled", a.service.UnassignOwner)(w, r)
}

func (a *API) assignOwner(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.assignOwner")
	defer span.End()

	var req AssignOwnerRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	listing, res, err := a.service.AssignOwner(ctx, actor, chi.URLParam(r, "id"), req.OwnerID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, listing, "owner assigned", res)
}

func (a *API) assignTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.assignTenant")
	defer span.End()

	var req AssignTenantRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	listing, res, err := a.service.AssignTenant(ctx, actor, chi.URLParam(r, "id"), req.TenantID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, listing, "tenant assigned", res)
}

func (a *API) unassignTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.unassignTenant")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	listing, res, err := a.service.UnassignTenant(ctx, actor, chi.URLParam(r, "id"), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, listing, "tenant removed, listing available again", res)
}

func (a *API) apply(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.apply")
	defer span.End()

	// the profile is only needed on a first application, the body may be empty
	var req ApplyRequest
	if r.ContentLength != 0 {
		if err := httptypes.DecodeJSON(r, &req); err != nil {
			httptypes.WriteError(w, err)
			return
		}
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	tenant, res, err := a.service.ApplyForListing(ctx, actor, chi.URLParam(r, "id"), req.Profile)
	if err != nil {
		a.writeError(w, err)
		return
	}

	status, message := http.StatusCreated, "application submitted"
	if res.AlreadyApplied {
		status, message = http.StatusOK, "you have already applied for this listing"
	}

	a.respond(ctx, w, actor, status, tenant, message, res)
}

func (a *API) viewApplications(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.viewApplications")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	applicants, err := a.service.ViewApplications(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{Data: applicants})
}

func (a *API) approveApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.approveApplication")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	listing, res, err := a.service.ApproveApplication(ctx, actor, chi.URLParam(r, "id"), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, listing, "application approved", res)
}

func (a *API) createOwnerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.createOwnerProfile")
	defer span.End()

	actor, req, ok := a.profileRequest(w, r.WithContext(ctx))
	if !ok {
		return
	}

	owner, res, err := a.service.CreateOwnerProfile(ctx, actor, req.UserID, req.Profile)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusCreated, owner, "owner profile created", res)
}

func (a *API) createTenantProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.createTenantProfile")
	defer span.End()

	actor, req, ok := a.profileRequest(w, r.WithContext(ctx))
	if !ok {
		return
	}

	tenant, res, err := a.service.CreateTenantProfile(ctx, actor, req.UserID, req.Profile)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusCreated, tenant, "tenant profile created", res)
}

func (a *API) profileRequest(w http.ResponseWriter, r *http.Request) (*types.User, ProfileRequest, bool) {
	var req ProfileRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return nil, req, false
	}

	actor, err := a.actors.CurrentUser(r.Context())
	if err != nil {
		a.writeError(w, err)
		return nil, req, false
	}

	if req.UserID == "" {
		req.UserID = actor.ID
	}

	return actor, req, true
}

func (a *API) deactivateOwner(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.deactivateOwner")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	owner, res, err := a.service.DeactivateOwner(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, owner, "owner deactivated", res)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.deleteUser")
	defer span.End()

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	res, err := a.service.DeleteUser(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, nil, "user deleted", res)
}

func (a *API) grantRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.grantRole")
	defer span.End()

	var req RoleRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	user, res, err := a.service.GrantRole(ctx, actor, chi.URLParam(r, "id"), role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, user, "role granted", res)
}

func (a *API) revokeRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflow.API.revokeRole")
	defer span.End()

	role, err := types.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, err := a.actors.CurrentUser(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	user, res, err := a.service.RevokeRole(ctx, actor, chi.URLParam(r, "id"), role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.respond(ctx, w, actor, http.StatusOK, user, "role revoked", res)
}

// respond invalidates the sessions of users whose roles changed and tells
// the caller to log in again when it is one of them
func (a *API) respond(ctx context.Context, w http.ResponseWriter, actor *types.User, status int, data any, message string, res Result) {
	if len(res.InvalidateSessions) > 0 {
		if err := a.sessions.InvalidateUserSessions(ctx, res.InvalidateSessions...); err != nil {
			a.logger.Errorf("failed to invalidate sessions of %v: %v", res.InvalidateSessions, err)
		}
	}

	httptypes.WriteResponse(w, status, httptypes.Response{
		Data:           data,
		Message:        message,
		Warnings:       res.Warnings,
		Reauthenticate: slices.Contains(res.InvalidateSessions, actor.ID),
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.StatusFromError(err) == http.StatusInternalServerError {
		a.logger.Errorf("workflow request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}

func NewAPI(service ServiceInterface, actors ActorResolverInterface, sessions SessionInvalidatorInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.actors = actors
	a.sessions = sessions
	a.tracer = tracer
	a.logger = logger

	return a
}
