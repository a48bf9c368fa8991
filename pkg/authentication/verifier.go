// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// Config selects the issuer and the access policy of the bearer token check
type Config struct {
	Issuer string
	// JWKSURL skips OIDC discovery when set
	JWKSURL string

	AccessPolicy
}

// AccessPolicy decides which verified tokens may call the API. Machine
// clients are admitted by subject or scope, marketplace users by the roles
// claim the token hook puts into every token it issues.
type AccessPolicy struct {
	AllowedSubjects []string
	RequiredScope   string
}

type tokenClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
	Roles   []string `json:"roles"`
}

func (p AccessPolicy) admits(c tokenClaims) bool {
	if slices.Contains(p.AllowedSubjects, c.Subject) {
		return true
	}

	if p.RequiredScope != "" && (slices.Contains(strings.Fields(c.Scope), p.RequiredScope) || slices.Contains(c.Scopes, p.RequiredScope)) {
		return true
	}

	return slices.Contains(c.Roles, types.RoleUser.String())
}

// roles keeps the claim entries naming a known role
func (c tokenClaims) roles() []types.Role {
	roles := make([]types.Role, 0, len(c.Roles))
	for _, name := range c.Roles {
		if r, err := types.ParseRole(name); err == nil {
			roles = append(roles, r)
		}
	}
	return roles
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   AccessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims tokenClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	if !v.policy.admits(claims) {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access", "api")
		return nil, fmt.Errorf("unauthorized: token carries no marketplace role, allowed subject or required scope")
	}

	return &Principal{UserID: claims.Subject, IssuedAt: token.IssuedAt, Roles: claims.roles()}, nil
}

// NewJWTVerifier verifies tokens with the key set of the provider
func NewJWTVerifier(provider ProviderInterface, policy AccessPolicy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return newJWTVerifier(provider.Verifier(&oidc.Config{SkipClientIDCheck: true}), policy, tracer, monitor, logger)
}

func newJWTVerifier(verifier *oidc.IDTokenVerifier, policy AccessPolicy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   policy,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// NewJWTAuthenticator builds the verifier for the configured issuer, either
// through OIDC discovery or straight from a JWKS endpoint
func NewJWTAuthenticator(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	if cfg.JWKSURL != "" {
		logger.Infof("Verifying tokens of %s against %s", cfg.Issuer, cfg.JWKSURL)
		keySet := oidc.NewRemoteKeySet(ctx, cfg.JWKSURL)
		return newJWTVerifier(oidc.NewVerifier(cfg.Issuer, keySet, &oidc.Config{SkipClientIDCheck: true}), cfg.AccessPolicy, tracer, monitor, logger), nil
	}

	logger.Infof("Discovering the key set of %s", cfg.Issuer)
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return NewJWTVerifier(provider, cfg.AccessPolicy, tracer, monitor, logger), nil
}
