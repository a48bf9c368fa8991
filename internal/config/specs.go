// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	StorageBackend string `envconfig:"storage_backend" default:"postgres"`
	DSN            string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJwksURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope" default:"openid"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`

	RedisURL             string        `envconfig:"redis_url"`
	SessionRevocationTTL time.Duration `envconfig:"session_revocation_ttl" default:"24h"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	RabbitMQURL       string `envconfig:"rabbitmq_url"`
	NotificationQueue string `envconfig:"notification_queue" default:"rental-notifications"`
	SMTPHost          string `envconfig:"smtp_host"`
	SMTPPort          int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername      string `envconfig:"smtp_username"`
	SMTPPassword      string `envconfig:"smtp_password"`
	MailFrom          string `envconfig:"mail_from" default:"no-reply@rental.local"`
	ContactAddress    string `envconfig:"contact_address"`

	KafkaBrokers []string `envconfig:"kafka_brokers"`
	KafkaTopic   string   `envconfig:"kafka_topic" default:"rental-events"`

	ExternalCleanupEnabled   bool          `envconfig:"external_cleanup_enabled" default:"true"`
	ExternalCleanupInterval  time.Duration `envconfig:"external_cleanup_interval" default:"24h"`
	ExternalCleanupGraceDays int           `envconfig:"external_cleanup_grace_days" default:"7"`
}
