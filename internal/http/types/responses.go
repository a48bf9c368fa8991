// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/rental-service/internal/types"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Response wraps successful payloads, mutations also report soft warnings and
// whether the caller has to log in again for a role change to apply
type Response struct {
	Data           any      `json:"data,omitempty"`
	Message        string   `json:"message,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	Reauthenticate bool     `json:"reauthenticate,omitempty"`
	Status         int      `json:"status"`
}

// StatusFromError maps the domain error kinds onto HTTP status codes
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrBadRequest):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// WriteJSON encodes body with the given status
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError hides internal failures behind a generic message, domain errors
// are returned as they are
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)

	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

func WriteResponse(w http.ResponseWriter, status int, r Response) {
	r.Status = status
	WriteJSON(w, status, r)
}

// DecodeJSON rejects unknown fields and empty bodies with a bad request error
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return types.NewError(types.ErrBadRequest, "request body is required")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return types.NewError(types.ErrBadRequest, "invalid request body: %v", err)
	}

	return nil
}
