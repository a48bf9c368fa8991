// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

import (
	"context"
	"strings"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/internal/validation"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	address   string
	notifier  NotifierInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Send relays msg to the platform contact address, the sender gets the
// replies. A failed delivery comes back as a warning.
func (s *Service) Send(ctx context.Context, msg Message) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "contact.Service.Send")
	defer span.End()

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)

	if err := s.validator.Struct(msg); err != nil {
		return nil, err
	}

	if s.address == "" {
		return nil, types.NewError(types.ErrBadRequest, "the contact form is not configured")
	}

	d := notifications.Send(ctx, s.notifier, s.monitor, s.logger, notifications.Notification{
		To:       s.address,
		ReplyTo:  msg.Email,
		Template: notifications.TemplateContactUs,
		Data:     msg.data(),
	})

	if d.Failed() {
		return []string{"your message could not be delivered, please try again later"}, nil
	}

	s.monitor.IncrementDomainEvent(map[string]string{"event": "contact_message"})

	return nil, nil
}

func NewService(address string, notifier NotifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		address:   address,
		notifier:  notifier,
		validator: validation.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
