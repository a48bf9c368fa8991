// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/rental-service/internal/config"
	"github.com/canonical/rental-service/internal/identity"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring/prometheus"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/authentication"
	"github.com/canonical/rental-service/pkg/contact"
	"github.com/canonical/rental-service/pkg/external"
	"github.com/canonical/rental-service/pkg/listings"
	"github.com/canonical/rental-service/pkg/owners"
	"github.com/canonical/rental-service/pkg/sessions"
	"github.com/canonical/rental-service/pkg/tenants"
	"github.com/canonical/rental-service/pkg/users"
	"github.com/canonical/rental-service/pkg/web"
	"github.com/canonical/rental-service/pkg/webhooks"
	"github.com/canonical/rental-service/pkg/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadSpecs reads an optional .env file before processing the environment
func loadSpecs() *config.EnvSpec {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("issues loading .env file: %s", err))
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	return specs
}

func serve() error {
	specs := loadSpecs()

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("rental-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

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
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorf("failed to close event publisher: %v", err)
		}
	}()

	identityAdmin := newIdentityAdmin(specs, tracer, monitor, logger)

	revocations, err := newRevocationStore(specs, logger)
	if err != nil {
		return err
	}
	invalidator := sessions.NewInvalidator(revocations, identityAdmin, tracer, monitor, logger)

	usersService := users.NewService(b.store, notifier, publisher, authorizer, tracer, monitor, logger)
	listingsService := listings.NewService(b.store, tracer, monitor, logger)
	ownersService := owners.NewService(b.store, listingsService, tracer, monitor, logger)
	tenantsService := tenants.NewService(b.store, tracer, monitor, logger)
	workflowService := workflow.NewService(
		b.store,
		listingsService,
		ownersService,
		tenantsService,
		notifier,
		publisher,
		authorizer,
		identityAdmin,
		tracer,
		monitor,
		logger,
	)
	externalService := external.NewService(b.store, listingsService, publisher, authorizer, tracer, monitor, logger)

	if _, err := ownersService.EnsureSystemOwner(context.Background()); err != nil {
		return fmt.Errorf("failed to bootstrap the system owner: %v", err)
	}

	var authenticate func(http.Handler) http.Handler
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			authentication.Config{
				Issuer:  specs.AuthenticationIssuer,
				JWKSURL: specs.AuthenticationJwksURL,
				AccessPolicy: authentication.AccessPolicy{
					AllowedSubjects: specs.AuthenticationAllowedSubjects,
					RequiredScope:   specs.AuthenticationRequiredScope,
				},
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
		authenticate = authentication.NewMiddleware(verifier, invalidator, tracer, monitor, logger).Authenticate()
	} else {
		logger.Info("Authentication is disabled, trusting the identity header")
		authenticate = identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if specs.ExternalCleanupEnabled {
		worker := external.NewCleanupWorker(
			externalService,
			specs.ExternalCleanupInterval,
			specs.ExternalCleanupGraceDays,
			tracer,
			monitor,
			logger,
		)
		go worker.Run(workerCtx)
	}

	router := web.NewRouter(
		web.Services{
			Users:             usersService,
			Listings:          listingsService,
			Owners:            ownersService,
			Tenants:           tenantsService,
			Workflow:          workflowService,
			Contact:           contact.NewService(specs.ContactAddress, notifier, tracer, monitor, logger),
			External:          externalService,
			Webhooks:          webhooks.NewService(usersService, tracer, monitor, logger),
			Sessions:          invalidator,
			Dependencies:      b.dependencies,
			ExternalGraceDays: specs.ExternalCleanupGraceDays,
		},
		authenticate,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
