// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

var _ InvalidatorInterface = (*Invalidator)(nil)

// Invalidator revokes the bearer tokens of a user and drops their identity
// provider sessions so the next login carries the current roles
type Invalidator struct {
	store    RevocationStoreInterface
	identity IdentitySessionsInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (i *Invalidator) InvalidateUserSessions(ctx context.Context, userIDs ...string) error {
	ctx, span := i.tracer.Start(ctx, "sessions.Invalidator.InvalidateUserSessions")
	defer span.End()

	var errs []error
	at := i.now()

	for _, id := range userIDs {
		if id == "" {
			continue
		}

		if err := i.store.Revoke(ctx, id, at); err != nil {
			errs = append(errs, err)
			continue
		}

		if err := i.identity.DeleteIdentitySessions(ctx, id); err != nil {
			// the revocation marker already rejects old tokens
			i.logger.Warnf("failed to delete identity sessions of %s: %v", id, err)
		}

		i.logger.Debugf("sessions of user %s invalidated", id)
	}

	return errors.Join(errs...)
}

// IsRevoked compares at second precision, tokens carry iat in whole seconds
func (i *Invalidator) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	ctx, span := i.tracer.Start(ctx, "sessions.Invalidator.IsRevoked")
	defer span.End()

	at, found, err := i.store.RevokedAt(ctx, userID)
	if err != nil || !found {
		return false, err
	}

	return issuedAt.Before(at.Truncate(time.Second)), nil
}

func NewInvalidator(store RevocationStoreInterface, identity IdentitySessionsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Invalidator {
	i := new(Invalidator)

	i.store = store
	i.identity = identity
	i.now = time.Now
	i.tracer = tracer
	i.monitor = monitor
	i.logger = logger

	return i
}
