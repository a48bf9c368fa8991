// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"time"

	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*types.User, []string, error)
	ProvisionFromIdentity(ctx context.Context, identityID, email, username string) (*types.User, error)
	CreateAdmin(ctx context.Context, req RegisterRequest) (*types.User, error)
	UpdateDetails(ctx context.Context, actor *types.User, userID string, req UpdateDetailsRequest) (*types.User, []string, error)
	ChangePassword(ctx context.Context, actor *types.User, req ChangePasswordRequest) error
	RecordLogin(ctx context.Context, userID string) (*types.User, error)
	CurrentUser(ctx context.Context) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	HasRole(ctx context.Context, userID string, role types.Role) (bool, error)
}

// StorageInterface is the subset of internal/storage used for users
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	UpdateUser(ctx context.Context, u *types.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type NotifierInterface interface {
	Notify(ctx context.Context, n notifications.Notification) error
}

type EventPublisherInterface interface {
	Publish(ctx context.Context, evts ...events.Event) error
}

type AuthorizerInterface interface {
	AssignPlatformAdmin(ctx context.Context, userID string) error
}

type SessionInvalidatorInterface interface {
	InvalidateUserSessions(ctx context.Context, userIDs ...string) error
}
