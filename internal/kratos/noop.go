// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/canonical/rental-service/internal/types"
)

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient stands in when no identity provider admin API is configured
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}

func (c *NoopClient) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	return nil, types.NewError(types.ErrNotFound, "identity %s not found", id)
}

func (c *NoopClient) DeleteIdentity(context.Context, string) error {
	return nil
}

func (c *NoopClient) DeleteIdentitySessions(context.Context, string) error {
	return nil
}
