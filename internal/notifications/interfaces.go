// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
)

type NotifierInterface interface {
	Notify(context.Context, Notification) error
}
