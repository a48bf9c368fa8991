// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

// RolesClaim is the token claim listing the platform roles of the subject
const RolesClaim = "roles"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	users UsersInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration provisions the local user of a freshly registered
// identity, replays return the existing user
func (s *Service) HandleRegistration(ctx context.Context, identity KratosIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("handling registration for identity %s", identity.ID)

	user, err := s.users.ProvisionFromIdentity(ctx, identity.ID, identity.Traits.Email, identity.Traits.Username)
	if err != nil {
		return nil, err
	}

	s.monitor.IncrementDomainEvent(map[string]string{"event": "identity_registered"})

	return user, nil
}

// HandleTokenHook records the login of the token subject and returns the
// roles claim for both tokens. A nil response means the subject is not a
// platform user and the token is left untouched.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	subject := tokenSubject(req)
	if subject == "" {
		return nil, types.NewError(types.ErrBadRequest, "token hook request has no subject")
	}

	user, err := s.users.RecordLogin(ctx, subject)
	if errors.Is(err, types.ErrNotFound) {
		s.logger.Debugf("token subject %s is not a platform user", subject)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record login of %s: %w", subject, err)
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.String())
	}

	return &TokenHookResponse{
		Session: TokenSession{
			IDToken:     map[string]any{RolesClaim: roles},
			AccessToken: map[string]any{RolesClaim: roles},
		},
	}, nil
}

func tokenSubject(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}

	if sub := req.Session.DefaultSession.Subject; sub != "" {
		return sub
	}

	if req.Session.DefaultSession.Claims != nil {
		return req.Session.DefaultSession.Claims.Subject
	}

	return ""
}

func NewService(users UsersInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		users:   users,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
