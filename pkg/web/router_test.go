// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/rental-service/internal/authorization"
	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/identity"
	"github.com/canonical/rental-service/internal/kratos"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/openfga"
	"github.com/canonical/rental-service/internal/storage/memory"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/pkg/contact"
	"github.com/canonical/rental-service/pkg/external"
	"github.com/canonical/rental-service/pkg/listings"
	"github.com/canonical/rental-service/pkg/owners"
	"github.com/canonical/rental-service/pkg/sessions"
	"github.com/canonical/rental-service/pkg/status"
	"github.com/canonical/rental-service/pkg/tenants"
	"github.com/canonical/rental-service/pkg/users"
	"github.com/canonical/rental-service/pkg/webhooks"
	"github.com/canonical/rental-service/pkg/workflow"
)

type envelope struct {
	Data           json.RawMessage `json:"data"`
	Message        string          `json:"message"`
	Reauthenticate bool            `json:"reauthenticate"`
}

type server struct {
	t      *testing.T
	router http.Handler
	users  *users.Service
}

func newServer(t *testing.T) *server {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	store, err := memory.NewStore(tracer, logger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	authorizer := authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
	notifier := notifications.NewNoopNotifier(logger)
	publisher := events.NewNoopPublisher()
	identityAdmin := kratos.NewNoopClient()
	invalidator := sessions.NewInvalidator(sessions.NewMemoryStore(0), identityAdmin, tracer, monitor, logger)

	usersService := users.NewService(store, notifier, publisher, authorizer, tracer, monitor, logger)
	listingsService := listings.NewService(store, tracer, monitor, logger)
	ownersService := owners.NewService(store, listingsService, tracer, monitor, logger)
	tenantsService := tenants.NewService(store, tracer, monitor, logger)

	if _, err := ownersService.EnsureSystemOwner(context.Background()); err != nil {
		t.Fatalf("failed to bootstrap system owner: %v", err)
	}

	router := NewRouter(
		Services{
			Users:    usersService,
			Listings: listingsService,
			Owners:   ownersService,
			Tenants:  tenantsService,
			Workflow: workflow.NewService(
				store, listingsService, ownersService, tenantsService,
				notifier, publisher, authorizer, identityAdmin,
				tracer, monitor, logger,
			),
			Contact:      contact.NewService("", notifier, tracer, monitor, logger),
			External:     external.NewService(store, listingsService, publisher, authorizer, tracer, monitor, logger),
			Webhooks:     webhooks.NewService(usersService, tracer, monitor, logger),
			Sessions:     invalidator,
			Dependencies: map[string]status.PingerInterface{},

			ExternalGraceDays: 7,
		},
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		[]string{"*"},
		tracer,
		monitor,
		logger,
	)

	return &server{t: t, router: router, users: usersService}
}

func (s *server) call(method, path, userID, body string) (int, envelope) {
	s.t.Helper()

	req := httptest.NewRequest(method, APIPrefix+path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("failed to decode %s %s response: %v", method, path, err)
		}
	}

	return w.Code, env
}

func (s *server) id(env envelope) string {
	s.t.Helper()

	var v struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &v); err != nil || v.ID == "" {
		s.t.Fatalf("response carries no id: %s", env.Data)
	}

	return v.ID
}

func TestRouter_PublicAndProtected(t *testing.T) {
	s := newServer(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "status", method: http.MethodGet, path: "/status", expectedStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/version", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "public listings", method: http.MethodGet, path: "/listings", expectedStatus: http.StatusOK},
		{name: "unknown listing", method: http.MethodGet, path: "/listings/missing", expectedStatus: http.StatusNotFound},
		{name: "me without identity", method: http.MethodGet, path: "/me", expectedStatus: http.StatusUnauthorized},
		{name: "approve without identity", method: http.MethodPost, path: "/listings/missing/approve", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/nothing-here", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if code, _ := s.call(tc.method, tc.path, "", ""); code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, code)
			}
		})
	}
}

func TestRouter_ListingLifecycle(t *testing.T) {
	s := newServer(t)

	code, env := s.call(http.MethodPost, "/register", "", `{"username":"ana","email":"ana@example.com","password":"s3cret-pass"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", code, env.Message)
	}
	owner := s.id(env)

	code, env = s.call(http.MethodPost, "/register", "", `{"username":"ivo","email":"ivo@example.com","password":"s3cret-pass"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", code, env.Message)
	}
	renter := s.id(env)

	admin, err := s.users.CreateAdmin(context.Background(), users.RegisterRequest{Username: "root", Email: "root@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	code, env = s.call(http.MethodPost, "/listings", owner, `{"title":"Flat","description":"Nice","address":"Ilica 1","price":500,"size":40,"rooms":2,"property_type":"apartment","rental_duration":"1 year","profile":{"first_name":"Ana","last_name":"Test","phone":"+385911234567"}}`)
	if code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", code, env.Message)
	}
	if !env.Reauthenticate {
		t.Errorf("expected the first submission to ask for a new login")
	}
	listing := s.id(env)

	if code, _ := s.call(http.MethodPost, "/listings/"+listing+"/approve", owner, ""); code != http.StatusForbidden {
		t.Errorf("owner approving own listing: expected 403, got %d", code)
	}

	if code, env := s.call(http.MethodPost, "/listings/"+listing+"/approve", admin.ID, ""); code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", code, env.Message)
	}

	code, env = s.call(http.MethodGet, "/listings/"+listing, "", "")
	if code != http.StatusOK {
		t.Fatalf("get listing: expected 200, got %d", code)
	}
	var approved struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &approved); err != nil || approved.Status != "APPROVED" {
		t.Errorf("expected an APPROVED listing, got %s", env.Data)
	}

	code, env = s.call(http.MethodPost, "/listings/"+listing+"/applications", renter, `{"profile":{"first_name":"Ivo","last_name":"Test","phone":"+385987654321"}}`)
	if code != http.StatusCreated {
		t.Fatalf("apply: expected 201, got %d: %s", code, env.Message)
	}
	tenant := s.id(env)

	if code, env := s.call(http.MethodPost, "/listings/"+listing+"/applications/"+tenant+"/approve", owner, ""); code != http.StatusOK {
		t.Fatalf("approve application: expected 200, got %d: %s", code, env.Message)
	}

	if code, _ := s.call(http.MethodDelete, "/listings/"+listing, admin.ID, ""); code != http.StatusForbidden {
		t.Errorf("deleting a rented listing: expected 403, got %d", code)
	}

	if code, env := s.call(http.MethodDelete, "/listings/"+listing+"/tenant/"+tenant, owner, ""); code != http.StatusOK {
		t.Fatalf("vacate: expected 200, got %d: %s", code, env.Message)
	}

	if code, env := s.call(http.MethodDelete, "/listings/"+listing, owner, ""); code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d: %s", code, env.Message)
	}
}
