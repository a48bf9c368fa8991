// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the principal if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}

// RevocationCheckerInterface reports tokens issued before the user's sessions
// were invalidated
type RevocationCheckerInterface interface {
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}
