// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"time"
)

type InvalidatorInterface interface {
	// InvalidateUserSessions forces every user to authenticate again
	InvalidateUserSessions(ctx context.Context, userIDs ...string) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// RevocationStoreInterface keeps the instant a user's sessions were revoked
type RevocationStoreInterface interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
	RevokedAt(ctx context.Context, userID string) (time.Time, bool, error)
}

type IdentitySessionsInterface interface {
	DeleteIdentitySessions(ctx context.Context, id string) error
}
