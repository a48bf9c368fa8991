// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/mail"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/rabbitmq"
	"github.com/canonical/rental-service/internal/tracing"
)

var (
	_ NotifierInterface = (*QueueNotifier)(nil)
	_ NotifierInterface = (*MailNotifier)(nil)
	_ NotifierInterface = (*NoopNotifier)(nil)
)

// QueueNotifier hands notifications to the mail worker through RabbitMQ
type QueueNotifier struct {
	publisher rabbitmq.PublisherInterface
	queue     string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (q *QueueNotifier) Notify(ctx context.Context, n Notification) error {
	ctx, span := q.tracer.Start(ctx, "notifications.QueueNotifier.Notify")
	defer span.End()

	if _, ok := subjects[n.Template]; !ok {
		return fmt.Errorf("unknown notification template %q", n.Template)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	return q.publisher.Publish(ctx, q.queue, body)
}

func NewQueueNotifier(publisher rabbitmq.PublisherInterface, queue string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *QueueNotifier {
	q := new(QueueNotifier)

	q.publisher = publisher
	q.queue = queue
	q.tracer = tracer
	q.monitor = monitor
	q.logger = logger

	return q
}

// MailNotifier renders and sends in the calling goroutine
type MailNotifier struct {
	renderer *Renderer
	mailer   mail.MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *MailNotifier) Notify(ctx context.Context, n Notification) error {
	ctx, span := m.tracer.Start(ctx, "notifications.MailNotifier.Notify")
	defer span.End()

	msg, err := m.renderer.Render(n)
	if err != nil {
		return err
	}

	return m.mailer.Send(ctx, msg)
}

func NewMailNotifier(renderer *Renderer, mailer mail.MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *MailNotifier {
	m := new(MailNotifier)

	m.renderer = renderer
	m.mailer = mailer
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

// NoopNotifier only logs, used when neither a queue nor a relay is configured
type NoopNotifier struct {
	logger logging.LoggerInterface
}

func (n *NoopNotifier) Notify(_ context.Context, notification Notification) error {
	n.logger.Debugf("dropping %s notification for %s", notification.Template, notification.To)
	return nil
}

func NewNoopNotifier(logger logging.LoggerInterface) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}
