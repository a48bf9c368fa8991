// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/tracing"
)

// Worker drains the notification queue and relays every message over SMTP
type Worker struct {
	consumer ConsumerInterface
	queue    string
	renderer *notifications.Renderer
	mailer   MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run blocks until ctx is cancelled or the broker closes the channel
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.consumer.Consume(w.queue)
	if err != nil {
		return err
	}

	w.logger.Infof("notification worker consuming %s", w.queue)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", w.queue)
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	ctx, span := w.tracer.Start(ctx, "notifications.Worker.handle")
	defer span.End()

	var n notifications.Notification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		w.logger.Errorf("dropping undecodable notification: %v", err)
		w.nack(d, false)
		return
	}

	msg, err := w.renderer.Render(n)
	if err != nil {
		w.logger.Errorf("dropping notification %s for %s: %v", n.Template, n.To, err)
		w.nack(d, false)
		return
	}

	if err := w.mailer.Send(ctx, msg); err != nil {
		// one retry through the broker, then the message is dropped
		w.logger.Warnf("failed to mail %s to %s: %v", n.Template, n.To, err)
		w.monitor.IncrementDomainEvent(map[string]string{"event": "notification_failed", "template": string(n.Template)})
		w.nack(d, !d.Redelivered)
		return
	}

	if err := d.Ack(false); err != nil {
		w.logger.Errorf("failed to ack notification: %v", err)
	}
}

func (w *Worker) nack(d amqp.Delivery, requeue bool) {
	if err := d.Nack(false, requeue); err != nil {
		w.logger.Errorf("failed to nack notification: %v", err)
	}
}

func NewWorker(consumer ConsumerInterface, queue string, renderer *notifications.Renderer, mailer MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Worker {
	w := new(Worker)

	w.consumer = consumer
	w.queue = queue
	w.renderer = renderer
	w.mailer = mailer
	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}
