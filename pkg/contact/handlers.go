// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/contact", a.send)
}

func (a *API) send(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contact.API.send")
	defer span.End()

	var msg Message
	if err := httptypes.DecodeJSON(r, &msg); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	warnings, err := a.service.Send(ctx, msg)
	if err != nil {
		if httptypes.StatusFromError(err) == http.StatusInternalServerError {
			a.logger.Errorf("contact form failed: %v", err)
		}
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, httptypes.Response{
		Message:  "thank you, your message has been sent",
		Warnings: warnings,
	})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.logger = logger

	return a
}
