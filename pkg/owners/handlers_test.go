// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package owners

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

func TestAPI_Endpoints(t *testing.T) {
	self := &types.User{ID: "user-1", Roles: []types.Role{types.RoleUser, types.RoleOwner}}
	stranger := &types.User{ID: "user-2", Roles: []types.Role{types.RoleUser}}
	admin := &types.User{ID: "admin-1", Roles: []types.Role{types.RoleUser, types.RoleAdmin}}
	owner := &types.Owner{ID: "owner-1", UserID: "user-1", Active: true}

	testCases := []struct {
		name           string
		path           string
		setupMocks     func(*MockServiceInterface, *MockCatalogInterface, *MockActorResolverInterface)
		expectedStatus int
	}{
		{
			name: "list owners needs admin",
			path: "/owners",
			setupMocks: func(_ *MockServiceInterface, _ *MockCatalogInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(self, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "list owners as admin",
			path: "/owners",
			setupMocks: func(svc *MockServiceInterface, _ *MockCatalogInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().ListOwners(gomock.Any()).Return([]*types.Owner{owner}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "own profile",
			path: "/owners/owner-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockCatalogInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(self, nil)
				svc.EXPECT().GetOwner(gomock.Any(), "owner-1").Return(owner, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "profile of someone else",
			path: "/owners/owner-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockCatalogInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(stranger, nil)
				svc.EXPECT().GetOwner(gomock.Any(), "owner-1").Return(owner, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unknown owner",
			path: "/owners/missing",
			setupMocks: func(svc *MockServiceInterface, _ *MockCatalogInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().GetOwner(gomock.Any(), "missing").Return(nil, types.NewError(types.ErrNotFound, "owner missing not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "visible listings of an owner",
			path: "/owners/owner-1/listings",
			setupMocks: func(svc *MockServiceInterface, catalog *MockCatalogInterface, _ *MockActorResolverInterface) {
				svc.EXPECT().GetOwner(gomock.Any(), "owner-1").Return(owner, nil)
				catalog.EXPECT().ListVisibleOwnerListings(gomock.Any(), "owner-1").Return([]*types.Listing{{ID: "listing-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			catalog := NewMockCatalogInterface(ctrl)
			actors := NewMockActorResolverInterface(ctrl)
			tc.setupMocks(svc, catalog, actors)

			api := NewAPI(svc, catalog, actors, tracing.NewNoopTracer(), logging.NewNoopLogger())
			mux := chi.NewMux()
			api.RegisterProtectedEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
