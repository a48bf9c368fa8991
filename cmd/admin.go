// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/users"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative tasks run against the configured storage",
}

var createAdminCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user holding the ADMIN role",
	Long:  `Create a user holding the ADMIN role, reads the same environment as serve to reach storage and openfga`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		specs := loadSpecs()
		logger := logging.NewLogger(specs.LogLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor("rental-service", logger)

		b, err := openStorage(specs, tracer, monitor, logger)
		if err != nil {
			return err
		}
		defer b.close()

		authorizer, err := newAuthorizer(specs, tracer, monitor, logger)
		if err != nil {
			return err
		}

		notifier, closeNotifier, err := newNotifier(specs, tracer, monitor, logger)
		if err != nil {
			return err
		}
		defer closeNotifier()

		publisher := newPublisher(specs, tracer, monitor, logger)
		defer publisher.Close()

		service := users.NewService(b.store, notifier, publisher, authorizer, tracer, monitor, logger)

		user, err := service.CreateAdmin(cmd.Context(), users.RegisterRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		logger.Security().AdminAction("cli", "create_admin", user.ID)
		cmd.Printf("Admin created: %s (ID: %s)\n", user.Username, user.ID)

		return nil
	},
}

func init() {
	createAdminCmd.Flags().String("username", "", "Admin username")
	createAdminCmd.Flags().String("email", "", "Admin email")
	createAdminCmd.Flags().String("password", "", "Admin password, at least 8 characters")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(adminCmd)
}
