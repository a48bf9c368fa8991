// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

type PublisherInterface interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

type ConsumerInterface interface {
	Consume(queue string) (<-chan amqp.Delivery, error)
}

var (
	_ PublisherInterface = (*Client)(nil)
	_ ConsumerInterface  = (*Client)(nil)
)

// Client holds one connection and one channel, it is not safe for
// concurrent publishing from several goroutines
type Client struct {
	conn *amqp.Connection
	chn  *amqp.Channel

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DeclareQueue declares a durable queue, it is idempotent
func (c *Client) DeclareQueue(name string) error {
	_, err := c.chn.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

func (c *Client) Publish(ctx context.Context, queue string, body []byte) error {
	ctx, span := c.tracer.Start(ctx, "rabbitmq.Client.Publish")
	defer span.End()

	err := c.chn.PublishWithContext(
		ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		c.monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 0)
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}

	c.monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 1)
	return nil
}

// Consume delivers messages with manual acknowledgement
func (c *Client) Consume(queue string) (<-chan amqp.Delivery, error) {
	if err := c.chn.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := c.chn.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", queue, err)
	}
	return msgs, nil
}

func (c *Client) Close() error {
	if err := c.chn.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}

func NewClient(url string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c := new(Client)
	c.conn = conn
	c.chn = chn
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
