// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

var (
	_ PublisherInterface = (*KafkaPublisher)(nil)
	_ PublisherInterface = (*NoopPublisher)(nil)
)

type KafkaPublisher struct {
	writer Writer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *KafkaPublisher) Publish(ctx context.Context, evts ...Event) error {
	ctx, span := p.tracer.Start(ctx, "events.KafkaPublisher.Publish")
	defer span.End()

	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, e := range evts {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode event %s: %w", e.Type, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.EntityID),
			Value: b,
			Headers: []kafka.Header{
				{Key: "type", Value: []byte(e.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.monitor.SetDependencyAvailability(map[string]string{"component": "kafka"}, 0)
		return fmt.Errorf("failed to publish events: %w", err)
	}

	p.monitor.SetDependencyAvailability(map[string]string{"component": "kafka"}, 1)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func NewKafkaPublisher(brokers []string, topic string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	return NewKafkaPublisherWithWriter(w, tracer, monitor, logger)
}

// NewKafkaPublisherWithWriter allows injecting a custom writer
func NewKafkaPublisherWithWriter(w Writer, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KafkaPublisher {
	p := new(KafkaPublisher)

	p.writer = w
	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return new(NoopPublisher)
}

func (p *NoopPublisher) Publish(context.Context, ...Event) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
