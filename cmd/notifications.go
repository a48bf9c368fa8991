// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring/prometheus"
	internalnotifications "github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/rabbitmq"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/notifications"
)

var notificationsWorkerCmd = &cobra.Command{
	Use:   "notifications-worker",
	Short: "Deliver queued notifications over SMTP",
	Long:  `Consume the notification queue filled by serve and send each notification as an email, needs RABBITMQ_URL and SMTP_HOST`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotificationsWorker()
	},
}

func init() {
	rootCmd.AddCommand(notificationsWorkerCmd)
}

func runNotificationsWorker() error {
	specs := loadSpecs()

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	if specs.RabbitMQURL == "" || specs.SMTPHost == "" {
		return errors.New("RABBITMQ_URL and SMTP_HOST are required")
	}

	monitor := prometheus.NewMonitor("rental-notifications", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	client, err := rabbitmq.NewClient(specs.RabbitMQURL, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %v", err)
	}
	defer client.Close()

	if err := client.DeclareQueue(specs.NotificationQueue); err != nil {
		return fmt.Errorf("failed to declare queue %s: %v", specs.NotificationQueue, err)
	}

	renderer, err := internalnotifications.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load mail templates: %v", err)
	}

	worker := notifications.NewWorker(
		client,
		specs.NotificationQueue,
		renderer,
		newMailer(specs, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Security().SystemStartup()
	defer logger.Security().SystemShutdown()

	return worker.Run(ctx)
}
