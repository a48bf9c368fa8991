// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package listings

import (
	"context"
	"errors"
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
	approved := []*types.Listing{{ID: "listing-1", Status: types.ListingApproved}}

	testCases := []struct {
		name           string
		path           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "list with filters",
			path: "/listings?status=APPROVED&external=false&owner_id=owner-1&page=2&page_size=10",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListListings(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f types.ListingFilter) ([]*types.Listing, error) {
						if f.Status != types.ListingApproved || f.External == nil || *f.External || f.OwnerID != "owner-1" || f.Page != 2 || f.PageSize != 10 {
							t.Errorf("unexpected filter %+v", f)
						}
						return approved, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown status",
			path:           "/listings?status=SOLD",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "external is not a boolean",
			path:           "/listings?external=maybe",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "search with price range",
			path: "/listings/search?title=flat&min_price=100&max_price=900",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Search(gomock.Any(), "flat", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, lo, hi *int) ([]*types.Listing, error) {
						if lo == nil || *lo != 100 || hi == nil || *hi != 900 {
							t.Errorf("unexpected price range %v..%v", lo, hi)
						}
						return approved, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "search with a malformed price",
			path:           "/listings/search?min_price=cheap",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing listing",
			path: "/listings/listing-9",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetListing(gomock.Any(), "listing-9").Return(nil, types.NewError(types.ErrNotFound, "listing listing-9 not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			path: "/listings",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListListings(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			mux := chi.NewMux()
			NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
