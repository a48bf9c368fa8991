// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/rental-service/internal/mail"
)

type ConsumerInterface interface {
	Consume(queue string) (<-chan amqp.Delivery, error)
}

type MailerInterface interface {
	Send(context.Context, mail.Message) error
}
