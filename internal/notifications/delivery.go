// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"fmt"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
)

// Delivery reports the outcome of a best-effort send, callers may drop it
type Delivery struct {
	Template Template
	To       string
	Err      error
}

func (d Delivery) Failed() bool {
	return d.Err != nil
}

// Warning is the user facing message for a failed delivery, empty on success
func (d Delivery) Warning() string {
	if d.Err == nil {
		return ""
	}
	return fmt.Sprintf("the %s email to %s could not be sent", d.Template, d.To)
}

// Send notifies and never fails the caller, failures are logged and counted
func Send(ctx context.Context, notifier NotifierInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface, n Notification) Delivery {
	d := Delivery{Template: n.Template, To: n.To}

	if n.To == "" {
		d.Err = fmt.Errorf("no recipient for %s", n.Template)
	} else {
		d.Err = notifier.Notify(ctx, n)
	}

	if d.Err != nil {
		logger.Warnf("failed to send %s notification to %s: %v", n.Template, n.To, d.Err)
		monitor.IncrementDomainEvent(map[string]string{"event": "notification_failed", "template": string(n.Template)})
	}

	return d
}
