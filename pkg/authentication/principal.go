// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"time"

	"github.com/canonical/rental-service/internal/types"
)

// Principal is the authenticated caller extracted from a verified token
type Principal struct {
	UserID   string
	IssuedAt time.Time
	// Roles as stamped by the token hook at issue time, the store stays authoritative
	Roles []types.Role
}
