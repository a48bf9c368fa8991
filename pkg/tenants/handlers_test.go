// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

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
	self := &types.User{ID: "user-1", Roles: []types.Role{types.RoleUser, types.RoleTenant}}
	stranger := &types.User{ID: "user-2", Roles: []types.Role{types.RoleUser}}
	admin := &types.User{ID: "admin-1", Roles: []types.Role{types.RoleUser, types.RoleAdmin}}
	tenant := &types.Tenant{ID: "tenant-1", UserID: "user-1", RentalStatus: types.RentalApplied}

	testCases := []struct {
		name           string
		path           string
		setupMocks     func(*MockServiceInterface, *MockActorResolverInterface)
		expectedStatus int
	}{
		{
			name: "list tenants needs admin",
			path: "/tenants",
			setupMocks: func(_ *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(self, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "list tenants as admin",
			path: "/tenants",
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(admin, nil)
				svc.EXPECT().ListTenants(gomock.Any()).Return([]*types.Tenant{tenant}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "own applications",
			path: "/tenants/tenant-1/applications",
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(self, nil)
				svc.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)
				svc.EXPECT().ListAppliedListings(gomock.Any(), "tenant-1").Return([]*types.Listing{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "applications of someone else",
			path: "/tenants/tenant-1/applications",
			setupMocks: func(svc *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(stranger, nil)
				svc.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unauthenticated",
			path: "/tenants/tenant-1",
			setupMocks: func(_ *MockServiceInterface, actors *MockActorResolverInterface) {
				actors.EXPECT().CurrentUser(gomock.Any()).Return(nil, types.NewError(types.ErrUnauthorized, "user is not authenticated"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			actors := NewMockActorResolverInterface(ctrl)
			tc.setupMocks(svc, actors)

			api := NewAPI(svc, actors, tracing.NewNoopTracer(), logging.NewNoopLogger())
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
