// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

import (
	"context"

	"github.com/canonical/rental-service/internal/notifications"
)

type ServiceInterface interface {
	Send(ctx context.Context, msg Message) ([]string, error)
}

type NotifierInterface interface {
	Notify(context.Context, notifications.Notification) error
}
