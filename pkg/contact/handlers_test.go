// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

func TestAPI_Send(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "sent",
			body: `{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"Hello"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Send(gomock.Any(), Message{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello"}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"name":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid message",
			body: `{"name":"Ana","email":"nope","subject":"Hi","message":"Hello"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, types.NewError(types.ErrValidation, "email must be a valid email"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unexpected failure",
			body: `{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"Hello"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tc.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
