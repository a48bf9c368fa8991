// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	DeleteIdentitySessions(ctx context.Context, id string) error
}
