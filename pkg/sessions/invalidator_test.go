// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package sessions -destination ./mock_interfaces.go -source=./interfaces.go

func newTestInvalidator(store RevocationStoreInterface, identity IdentitySessionsInterface, now time.Time) *Invalidator {
	logger := logging.NewNoopLogger()
	i := NewInvalidator(store, identity, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
	i.now = func() time.Time { return now }
	return i
}

func TestInvalidator_InvalidateUserSessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		userIDs    []string
		setupMocks func(*MockRevocationStoreInterface, *MockIdentitySessionsInterface)
		expectErr  bool
	}{
		{
			name:    "revokes every user",
			userIDs: []string{"user-1", "", "user-2"},
			setupMocks: func(s *MockRevocationStoreInterface, k *MockIdentitySessionsInterface) {
				s.EXPECT().Revoke(gomock.Any(), "user-1", now).Return(nil)
				s.EXPECT().Revoke(gomock.Any(), "user-2", now).Return(nil)
				k.EXPECT().DeleteIdentitySessions(gomock.Any(), "user-1").Return(nil)
				k.EXPECT().DeleteIdentitySessions(gomock.Any(), "user-2").Return(nil)
			},
		},
		{
			name:    "identity provider failure is tolerated",
			userIDs: []string{"user-1"},
			setupMocks: func(s *MockRevocationStoreInterface, k *MockIdentitySessionsInterface) {
				s.EXPECT().Revoke(gomock.Any(), "user-1", now).Return(nil)
				k.EXPECT().DeleteIdentitySessions(gomock.Any(), "user-1").Return(errors.New("kratos down"))
			},
		},
		{
			name:    "store failure is reported",
			userIDs: []string{"user-1", "user-2"},
			setupMocks: func(s *MockRevocationStoreInterface, k *MockIdentitySessionsInterface) {
				s.EXPECT().Revoke(gomock.Any(), "user-1", now).Return(errors.New("redis down"))
				s.EXPECT().Revoke(gomock.Any(), "user-2", now).Return(nil)
				k.EXPECT().DeleteIdentitySessions(gomock.Any(), "user-2").Return(nil)
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockRevocationStoreInterface(ctrl)
			mockIdentity := NewMockIdentitySessionsInterface(ctrl)
			tc.setupMocks(mockStore, mockIdentity)

			err := newTestInvalidator(mockStore, mockIdentity, now).InvalidateUserSessions(context.Background(), tc.userIDs...)

			if tc.expectErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectErr, err)
			}
		})
	}
}

func TestInvalidator_IsRevoked(t *testing.T) {
	revokedAt := time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)

	testCases := []struct {
		name     string
		issuedAt time.Time
		expected bool
	}{
		{name: "token issued before revocation", issuedAt: revokedAt.Add(-time.Hour), expected: true},
		{name: "token issued in the revocation second", issuedAt: revokedAt.Truncate(time.Second), expected: false},
		{name: "token issued after revocation", issuedAt: revokedAt.Add(time.Minute), expected: false},
	}

	store := NewMemoryStore(time.Hour)
	if err := store.Revoke(context.Background(), "user-1", revokedAt); err != nil {
		t.Fatal(err)
	}
	i := newTestInvalidator(store, nil, revokedAt)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			revoked, err := i.IsRevoked(context.Background(), "user-1", tc.issuedAt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if revoked != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, revoked)
			}
		})
	}

	if revoked, _ := i.IsRevoked(context.Background(), "user-2", revokedAt.Add(-time.Hour)); revoked {
		t.Error("user without marker must not be revoked")
	}
}
