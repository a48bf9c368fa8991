// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/external"
	"github.com/canonical/rental-service/pkg/listings"
	"github.com/canonical/rental-service/pkg/owners"
)

var externalCmd = &cobra.Command{
	Use:   "external",
	Short: "Import and clean up scraped listings against the configured storage",
}

// withExternalService builds the import service the same way serve does and
// makes sure the system owner exists
func withExternalService(cmd *cobra.Command, fn func(external.ServiceInterface, logging.LoggerInterface) error) error {
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

	publisher := newPublisher(specs, tracer, monitor, logger)
	defer publisher.Close()

	catalog := listings.NewService(b.store, tracer, monitor, logger)

	if _, err := owners.NewService(b.store, catalog, tracer, monitor, logger).EnsureSystemOwner(cmd.Context()); err != nil {
		return fmt.Errorf("failed to bootstrap the system owner: %w", err)
	}

	return fn(external.NewService(b.store, catalog, publisher, authorizer, tracer, monitor, logger), logger)
}

var importExternalCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON array of scraped listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var batch []external.Listing
		if err := json.Unmarshal(raw, &batch); err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}

		return withExternalService(cmd, func(s external.ServiceInterface, logger logging.LoggerInterface) error {
			res, err := s.ImportListings(cmd.Context(), batch)
			if err != nil {
				return err
			}

			logger.Security().AdminAction("cli", "import_external", "external_listings")
			cmd.Printf("%d listings created, %d updated\n", res.Created, res.Updated)

			return nil
		})
	},
}

var cleanupExternalCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove external listings not seen by the scraper within the grace period",
	RunE: func(cmd *cobra.Command, args []string) error {
		graceDays, _ := cmd.Flags().GetInt("grace-days")

		return withExternalService(cmd, func(s external.ServiceInterface, logger logging.LoggerInterface) error {
			res, err := s.CleanupExternalListings(cmd.Context(), graceDays)
			if err != nil {
				return err
			}

			logger.Security().AdminAction("cli", "cleanup_external", "external_listings")
			cmd.Printf("%d listings scraped before %s removed\n", res.Removed, res.Cutoff.Format("2006-01-02 15:04"))

			return nil
		})
	},
}

func init() {
	cleanupExternalCmd.Flags().Int("grace-days", 7, "Days an external listing survives without being scraped again")

	externalCmd.AddCommand(importExternalCmd, cleanupExternalCmd)
	rootCmd.AddCommand(externalCmd)
}
