// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Error kinds, match them with errors.Is
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrBadRequest   = errors.New("bad request")

	ErrIllegalState = errors.New("illegal state transition")
)

type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// TransitionError is returned by the listing state machine, it matches
// ErrIllegalState as well as its Kind
type TransitionError struct {
	Action string
	From   ListingStatus
	Kind   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a listing in status %s", e.Action, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalState
}

func (e *TransitionError) Unwrap() error {
	return e.Kind
}

// IsKind reports whether err already carries one of the domain kinds
func IsKind(err error) bool {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrUnauthorized, ErrValidation, ErrBadRequest} {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}
