// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

func body(t *testing.T, v any) []byte {
	t.Helper()

	if s, ok := v.(string); ok {
		return []byte(s)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return b
}

func TestAPI_TokenHook(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name:        "success",
			requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-123")},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(&TokenHookResponse{
					Session: TokenSession{
						IDToken:     map[string]any{RolesClaim: []string{"USER", "ADMIN"}},
						AccessToken: map[string]any{RolesClaim: []string{"USER", "ADMIN"}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result TokenHookResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if result.Session.AccessToken[RolesClaim] == nil {
					t.Error("expected roles in access token")
				}
			},
		},
		{
			name:        "not a platform user",
			requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("client-1")},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service error",
			requestBody: &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-123")},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/token", bytes.NewBuffer(body(t, tt.requestBody)))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(b))
			}

			if tt.validateResp != nil {
				tt.validateResp(t, res)
			}
		})
	}
}

func TestAPI_Registration(t *testing.T) {
	identity := KratosIdentity{ID: "identity-123", Traits: KratosTraits{Email: "user@example.com"}}

	tests := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: identity,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), identity).Return(&types.User{ID: "identity-123"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "conflict",
			requestBody: identity,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), identity).Return(nil, types.NewError(types.ErrConflict, "email is taken"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "service error",
			requestBody: identity,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), identity).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", bytes.NewBuffer(body(t, tt.requestBody)))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
