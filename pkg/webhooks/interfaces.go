// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/rental-service/internal/types"
)

// UsersInterface is the subset of pkg/users the hooks drive
type UsersInterface interface {
	ProvisionFromIdentity(ctx context.Context, identityID, email, username string) (*types.User, error)
	RecordLogin(ctx context.Context, userID string) (*types.User, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity KratosIdentity) (*types.User, error)
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
