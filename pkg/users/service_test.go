// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go

type testMocks struct {
	storage  *MockStorageInterface
	notifier *MockNotifierInterface
	events   *MockEventPublisherInterface
	authz    *MockAuthorizerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, testMocks) {
	m := testMocks{
		storage:  NewMockStorageInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		events:   NewMockEventPublisherInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
	}

	m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.notifier, m.events, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	return s, m
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
}

func TestService_Register(t *testing.T) {
	valid := RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "s3cret-pass"}

	testCases := []struct {
		name           string
		req            RegisterRequest
		setupMocks     func(testMocks)
		expectedErr    error
		expectWarnings int
	}{
		{
			name: "registers user with the USER role",
			req:  valid,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, notFound("user"))
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if !u.HasRole(types.RoleUser) || len(u.Roles) != 1 {
							return nil, fmt.Errorf("unexpected roles %v", u.Roles)
						}
						if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) != nil {
							return nil, errors.New("password was not hashed")
						}
						created := *u
						created.ID = "user-1"
						return &created, nil
					},
				)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n notifications.Notification) error {
						if n.Template != notifications.TemplateWelcome || n.To != "ana@example.com" {
							return fmt.Errorf("unexpected notification %+v", n)
						}
						return nil
					},
				)
			},
		},
		{
			name: "username taken",
			req:  valid,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(&types.User{ID: "other"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "email taken",
			req:  valid,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&types.User{ID: "other"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name:        "short password",
			req:         RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "short"},
			setupMocks:  func(testMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "blank username",
			req:         RegisterRequest{Username: "   ", Email: "ana@example.com", Password: "s3cret-pass"},
			setupMocks:  func(testMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "welcome email failure is a warning",
			req:  valid,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, notFound("user"))
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: "user-1", Username: "ana", Email: "ana@example.com"}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectWarnings: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			user, warnings, err := s.Register(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil || user.ID != "user-1" {
				t.Errorf("unexpected user %+v", user)
			}
			if len(warnings) != tc.expectWarnings {
				t.Errorf("expected %d warnings, got %v", tc.expectWarnings, warnings)
			}
		})
	}
}

func TestService_ProvisionFromIdentity(t *testing.T) {
	testCases := []struct {
		name        string
		username    string
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name: "existing identity is returned as is",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "identity-1").Return(&types.User{ID: "identity-1"}, nil)
			},
		},
		{
			name: "new identity uses the email as username",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "identity-1").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana@example.com").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, notFound("user"))
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.ID != "identity-1" || u.PasswordHash != "" {
							return nil, fmt.Errorf("unexpected user %+v", u)
						}
						return u, nil
					},
				)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "email registered to another identity",
			username: "ana",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "identity-1").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(nil, notFound("user"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&types.User{ID: "other"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			user, err := s.ProvisionFromIdentity(context.Background(), "identity-1", "ana@example.com", tc.username)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "identity-1" {
				t.Errorf("expected identity-1, got %s", user.ID)
			}
		})
	}
}

func TestService_UpdateDetails(t *testing.T) {
	stored := func() *types.User {
		return &types.User{ID: "user-1", Username: "ana", Email: "ana@example.com", Roles: []types.Role{types.RoleUser}}
	}
	self := stored()
	admin := &types.User{ID: "admin-1", Roles: []types.Role{types.RoleUser, types.RoleAdmin}}
	stranger := &types.User{ID: "user-2", Roles: []types.Role{types.RoleUser}}

	testCases := []struct {
		name           string
		actor          *types.User
		req            UpdateDetailsRequest
		setupMocks     func(testMocks)
		expectedErr    error
		expectWarnings int
	}{
		{
			name:        "other users are forbidden",
			actor:       stranger,
			req:         UpdateDetailsRequest{Username: "bob", Email: "bob@example.com"},
			setupMocks:  func(testMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name:  "nothing changed",
			actor: self,
			req:   UpdateDetailsRequest{Username: "ana", Email: "ANA@example.com"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(stored(), nil)
			},
			expectWarnings: 1,
		},
		{
			name:  "email change notifies both addresses",
			actor: admin,
			req:   UpdateDetailsRequest{Username: "ana", Email: "new@example.com"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(stored(), nil)
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(stored(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "new@example.com").Return(nil, notFound("user"))
				m.storage.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

				gomock.InOrder(
					m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, n notifications.Notification) error {
							if n.To != "ana@example.com" || n.Data["email_changed"] != "true" || n.Data["username_changed"] != "" {
								return fmt.Errorf("unexpected notification %+v", n)
							}
							return nil
						},
					),
					m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, n notifications.Notification) error {
							if n.To != "new@example.com" {
								return fmt.Errorf("unexpected recipient %s", n.To)
							}
							return nil
						},
					),
				)
			},
		},
		{
			name:  "username taken",
			actor: self,
			req:   UpdateDetailsRequest{Username: "bob", Email: "ana@example.com"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(stored(), nil)
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(&types.User{ID: "user-2"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, warnings, err := s.UpdateDetails(context.Background(), tc.actor, "user-1", tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(warnings) != tc.expectWarnings {
				t.Errorf("expected %d warnings, got %v", tc.expectWarnings, warnings)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	hash, err := hashPassword("old-password")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	actor := &types.User{ID: "user-1"}

	testCases := []struct {
		name        string
		req         ChangePasswordRequest
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:        "confirmation mismatch",
			req:         ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "other-password"},
			setupMocks:  func(testMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "new equals old",
			req:         ChangePasswordRequest{OldPassword: "old-password", NewPassword: "old-password", ConfirmPassword: "old-password"},
			setupMocks:  func(testMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "wrong current password",
			req:  ChangePasswordRequest{OldPassword: "guess-password", NewPassword: "new-password", ConfirmPassword: "new-password"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", PasswordHash: hash}, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "password updated",
			req:  ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "new-password"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", PasswordHash: hash}, nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) error {
						return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password"))
					},
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			err := s.ChangePassword(context.Background(), actor, tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	if _, err := s.CurrentUser(context.Background()); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("expected unauthorized without a user id, got %v", err)
	}

	m.storage.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, notFound("user"))
	ctx := authentication.WithUserID(context.Background(), "ghost")
	if _, err := s.CurrentUser(ctx); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("expected unauthorized for unknown user, got %v", err)
	}

	m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
	ctx = authentication.WithUserID(context.Background(), "user-1")
	user, err := s.CurrentUser(ctx)
	if err != nil || user.ID != "user-1" {
		t.Errorf("expected user-1, got %+v, %v", user, err)
	}
}
