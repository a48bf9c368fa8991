// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
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

func TestAPI_Endpoints(t *testing.T) {
	admin := &types.User{ID: "admin-1", Roles: []types.Role{types.RoleUser, types.RoleAdmin}}
	user := &types.User{ID: "user-1", Roles: []types.Role{types.RoleUser, types.RoleOwner}}

	batch := `[{"title":"Flat","source_url":"https://source/1","date_scraped":"2026-03-01T10:00:00Z","images":["https://img/1.jpg"]}]`

	testCases := []struct {
		name           string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockActorResolverInterface)
		expectedStatus int
	}{
		{
			name: "import as admin",
			path: "/external/listings",
			body: batch,
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().ImportListings(gomock.Any(), gomock.Len(1)).Return(&ImportResult{Created: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "import as owner",
			path: "/external/listings",
			body: batch,
			setupMocks: func(_ *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(user, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "invalid batch",
			path: "/external/listings",
			body: `[{"title":"Flat"}]`,
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().ImportListings(gomock.Any(), gomock.Any()).Return(nil, types.NewError(types.ErrValidation, "listing 0: source_url is required"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "cleanup with configured grace",
			path: "/external/cleanup",
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().CleanupExternalListings(gomock.Any(), 7).Return(&CleanupResult{Removed: 3, GraceDays: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "cleanup with explicit grace",
			path: "/external/cleanup?grace_days=30",
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().CleanupExternalListings(gomock.Any(), 30).Return(&CleanupResult{GraceDays: 30}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "cleanup with bad grace",
			path: "/external/cleanup?grace_days=week",
			setupMocks: func(_ *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			actors := NewMockActorResolverInterface(ctrl)
			tc.setupMocks(svc, actors)

			mux := chi.NewMux()
			NewAPI(svc, actors, 7, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterProtectedEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
