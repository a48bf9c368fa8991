// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/canonical/rental-service/internal/authorization"
	"github.com/canonical/rental-service/internal/config"
	"github.com/canonical/rental-service/internal/db"
	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/kratos"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/mail"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/openfga"
	"github.com/canonical/rental-service/internal/rabbitmq"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/storage/memory"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/sessions"
	"github.com/canonical/rental-service/pkg/status"
)

const (
	backendPostgres = "postgres"
	backendMemory   = "memory"
)

// backend is the storage selected by STORAGE_BACKEND plus what /status pings
type backend struct {
	store        storage.StorageInterface
	dependencies map[string]status.PingerInterface
	close        func()
}

func openStorage(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*backend, error) {
	switch specs.StorageBackend {
	case backendMemory:
		store, err := memory.NewStore(tracer, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory store: %v", err)
		}
		logger.Warn("Using the in-memory storage backend, data is lost on restart")

		return &backend{
			store:        store,
			dependencies: map[string]status.PingerInterface{},
			close:        func() {},
		}, nil
	case backendPostgres:
		dbConfig := db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		}
		dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create database client: %v", err)
		}

		return &backend{
			store:        storage.NewStorage(dbClient, tracer, monitor, logger),
			dependencies: map[string]status.PingerInterface{"database": dbClient},
			close:        dbClient.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", specs.StorageBackend)
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		), nil
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)

	logger.Info("Authorization is enabled")
	if err := authorizer.ValidateModel(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid authorization model provided: %v", err)
	}

	return authorizer, nil
}

// newNotifier queues mails on RabbitMQ when configured, sends them over SMTP
// when only a mail host is set, and logs them otherwise
func newNotifier(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (notifications.NotifierInterface, func(), error) {
	if specs.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(specs.RabbitMQURL, tracer, monitor, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %v", err)
		}

		if err := client.DeclareQueue(specs.NotificationQueue); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to declare queue %s: %v", specs.NotificationQueue, err)
		}

		logger.Infof("Notifications are queued on %s", specs.NotificationQueue)

		closer := func() {
			if err := client.Close(); err != nil {
				logger.Errorf("failed to close rabbitmq client: %v", err)
			}
		}

		return notifications.NewQueueNotifier(client, specs.NotificationQueue, tracer, monitor, logger), closer, nil
	}

	if specs.SMTPHost != "" {
		renderer, err := notifications.NewRenderer()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load mail templates: %v", err)
		}

		logger.Infof("Notifications are sent through %s", specs.SMTPHost)

		return notifications.NewMailNotifier(renderer, newMailer(specs, tracer, monitor, logger), tracer, monitor, logger), func() {}, nil
	}

	logger.Info("Using noop notifier")

	return notifications.NewNoopNotifier(logger), func() {}, nil
}

func newMailer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *mail.Mailer {
	return mail.NewMailer(
		mail.Config{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			Username: specs.SMTPUsername,
			Password: specs.SMTPPassword,
			From:     specs.MailFrom,
		},
		tracer,
		monitor,
		logger,
	)
}

type eventPublisher interface {
	Publish(context.Context, ...events.Event) error
	Close() error
}

func newPublisher(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) eventPublisher {
	if len(specs.KafkaBrokers) == 0 {
		logger.Info("Using noop event publisher")
		return events.NewNoopPublisher()
	}

	logger.Infof("Domain events are published on %s", specs.KafkaTopic)

	return events.NewKafkaPublisher(specs.KafkaBrokers, specs.KafkaTopic, tracer, monitor, logger)
}

func newIdentityAdmin(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) kratos.ClientInterface {
	if specs.KratosAdminURL == "" {
		logger.Info("Using noop identity admin client")
		return kratos.NewNoopClient()
	}

	return kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
}

func newRevocationStore(specs *config.EnvSpec, logger logging.LoggerInterface) (sessions.RevocationStoreInterface, error) {
	if specs.RedisURL == "" {
		logger.Info("Session revocations are kept in memory")
		return sessions.NewMemoryStore(specs.SessionRevocationTTL), nil
	}

	client, err := sessions.NewRedisClient(specs.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %v", err)
	}

	return sessions.NewRedisStore(client, specs.SessionRevocationTTL), nil
}
