// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface, *MockRevocationCheckerInterface)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Missing token - rejects request",
			authHeader:         "",
			setupMocks:         func(*MockTokenVerifierInterface, *MockRevocationCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface, *MockRevocationCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockRevocationCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Revoked session - rejects request",
			authHeader: "Bearer old-token",
			setupMocks: func(v *MockTokenVerifierInterface, r *MockRevocationCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "old-token").Return(&Principal{UserID: "user-123", IssuedAt: issuedAt}, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "user-123", issuedAt).Return(true, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Revocation store unavailable - lets request through",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, r *MockRevocationCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Principal{UserID: "user-123", IssuedAt: issuedAt}, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "user-123", issuedAt).Return(false, errors.New("connection refused"))
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, r *MockRevocationCheckerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Principal{UserID: "user-123", IssuedAt: issuedAt}, nil)
				r.EXPECT().IsRevoked(gomock.Any(), "user-123", issuedAt).Return(false, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockRevocations := NewMockRevocationCheckerInterface(ctrl)
			tt.setupMocks(mockVerifier, mockRevocations)

			middleware := NewMiddleware(mockVerifier, mockRevocations, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, _ := GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(id))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_AuthenticateWithoutRevocations(t *testing.T) {
	logger := logging.NewNoopLogger()
	middleware := NewMiddleware(NewNoopVerifier(), nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetUserID(r.Context())
		w.Write([]byte(id))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer user-9")
	rr := httptest.NewRecorder()

	middleware.Authenticate()(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "user-9" {
		t.Errorf("expected user-9 to pass, got %d %q", rr.Code, rr.Body.String())
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			middleware := NewMiddleware(NewNoopVerifier(), nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
