// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/rental-service/internal/authorization"
	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/internal/validation"
	"github.com/canonical/rental-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	notifier  NotifierInterface
	events    EventPublisherInterface
	authz     AuthorizerInterface
	validator *validation.Validator

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*types.User, []string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Register")
	defer span.End()

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Struct(req); err != nil {
		return nil, nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.create(ctx, &types.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []types.Role{types.RoleUser},
	})
	if err != nil {
		return nil, nil, err
	}

	return user, s.welcome(ctx, user), nil
}

// ProvisionFromIdentity mirrors an identity registered with the identity
// provider, calling it again for the same identity returns the stored user
func (s *Service) ProvisionFromIdentity(ctx context.Context, identityID, email, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ProvisionFromIdentity")
	defer span.End()

	if identityID == "" || email == "" {
		return nil, types.NewError(types.ErrBadRequest, "identity id and email are required")
	}

	if existing, err := s.storage.GetUserByID(ctx, identityID); err == nil {
		return existing, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up identity %s: %w", identityID, err)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = email
	}

	if err := s.validator.Var("email", email, "email"); err != nil {
		return nil, err
	}

	user, err := s.create(ctx, &types.User{
		ID:       identityID,
		Username: username,
		Email:    email,
		Roles:    []types.Role{types.RoleUser},
	})
	if err != nil {
		return nil, err
	}

	s.welcome(ctx, user)
	s.logger.Infof("provisioned user %s for identity %s", user.Username, identityID)

	return user, nil
}

func (s *Service) CreateAdmin(ctx context.Context, req RegisterRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateAdmin")
	defer span.End()

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.create(ctx, &types.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []types.Role{types.RoleUser, types.RoleAdmin},
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignPlatformAdmin(ctx, user.ID); err != nil {
		s.logger.Errorf("failed to mirror admin role of %s: %v", user.ID, err)
	}

	s.logger.Security().AdminAction("cli", "create_admin", "user:"+user.ID)

	return user, nil
}

// create checks both unique fields up front so the caller learns which one clashed
func (s *Service) create(ctx context.Context, u *types.User) (*types.User, error) {
	var created *types.User

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkAvailable(ctx, "", u.Username, u.Email); err != nil {
			return err
		}

		var err error
		created, err = s.storage.CreateUser(ctx, u)
		return storage.AsDomainError(err, "user %s already exists", u.Username)
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, events.New(events.UserRegistered, created.ID, "", nil)); err != nil {
		s.logger.Warnf("failed to publish registration of %s: %v", created.ID, err)
	}

	return created, nil
}

// checkAvailable fails when username or email belong to a user other than self
func (s *Service) checkAvailable(ctx context.Context, self, username, email string) error {
	if username != "" {
		other, err := s.storage.GetUserByUsername(ctx, username)
		switch {
		case err == nil && other.ID != self:
			return types.NewError(types.ErrConflict, "username already taken")
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("failed to check username: %w", err)
		}
	}

	if email != "" {
		other, err := s.storage.GetUserByEmail(ctx, email)
		switch {
		case err == nil && other.ID != self:
			return types.NewError(types.ErrConflict, "email already registered")
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("failed to check email: %w", err)
		}
	}

	return nil
}

func (s *Service) welcome(ctx context.Context, u *types.User) []string {
	d := notifications.Send(ctx, s.notifier, s.monitor, s.logger, notifications.Notification{
		To:       u.Email,
		Template: notifications.TemplateWelcome,
		Data:     map[string]string{"username": u.Username},
	})

	if d.Failed() {
		return []string{d.Warning()}
	}
	return nil
}

// UpdateDetails changes username and email, both addresses are told when the
// email moves
func (s *Service) UpdateDetails(ctx context.Context, actor *types.User, userID string, req UpdateDetailsRequest) (*types.User, []string, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateDetails")
	defer span.End()

	if err := authorization.RequireSelfOrAdmin(actor, userID).Err(); err != nil {
		s.logger.Security().AuthzFailure(actorID(actor), "update_user", "user:"+userID)
		return nil, nil, err
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Struct(req); err != nil {
		return nil, nil, err
	}

	var (
		user                          *types.User
		oldUsername, oldEmail         string
		usernameChanged, emailChanged bool
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		oldUsername, oldEmail = user.Username, user.Email
		usernameChanged = user.Username != req.Username
		emailChanged = !strings.EqualFold(user.Email, req.Email)

		if !usernameChanged && !emailChanged {
			return nil
		}

		if err := s.checkAvailable(ctx, user.ID, req.Username, req.Email); err != nil {
			return err
		}

		user.Username = req.Username
		user.Email = req.Email

		return storage.AsDomainError(s.storage.UpdateUser(ctx, user), "username or email already in use")
	})
	if err != nil {
		return nil, nil, err
	}

	if !usernameChanged && !emailChanged {
		return user, []string{fmt.Sprintf("no changes were detected for user %s", user.Username)}, nil
	}

	data := map[string]string{
		"old_username":     oldUsername,
		"new_username":     user.Username,
		"old_email":        oldEmail,
		"new_email":        user.Email,
		"username_changed": flag(usernameChanged),
		"email_changed":    flag(emailChanged),
	}

	recipients := []string{user.Email}
	if emailChanged {
		recipients = []string{oldEmail, user.Email}
	}

	var warnings []string
	for _, to := range recipients {
		d := notifications.Send(ctx, s.notifier, s.monitor, s.logger, notifications.Notification{
			To:       to,
			Template: notifications.TemplateDetailsChanged,
			Data:     data,
		})
		if d.Failed() {
			warnings = append(warnings, d.Warning())
		}
	}

	return user, warnings, nil
}

// flag renders booleans for templates, where any non empty string is true
func flag(b bool) string {
	if b {
		return "true"
	}
	return ""
}

func (s *Service) ChangePassword(ctx context.Context, actor *types.User, req ChangePasswordRequest) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.ChangePassword")
	defer span.End()

	if actor == nil {
		return types.NewError(types.ErrUnauthorized, "authentication required")
	}

	if err := s.validator.Struct(req); err != nil {
		return err
	}

	if req.NewPassword != req.ConfirmPassword {
		return types.NewError(types.ErrValidation, "new password and confirmation do not match")
	}

	if req.NewPassword == req.OldPassword {
		return types.NewError(types.ErrValidation, "new password must differ from the current one")
	}

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.GetUserByID(ctx, actor.ID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", actor.ID)
		}

		if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
			return types.NewError(types.ErrValidation, "current password is incorrect")
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return err
		}
		user.PasswordHash = hash

		return s.storage.UpdateUser(ctx, user)
	})
}

func (s *Service) RecordLogin(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.RecordLogin")
	defer span.End()

	if err := s.storage.UpdateLastLogin(ctx, userID, s.now().UTC()); err != nil {
		return nil, storage.AsDomainError(err, "user %s not found", userID)
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storage.AsDomainError(err, "user %s not found", userID)
	}

	return user, nil
}

// CurrentUser loads the user behind the authenticated request
func (s *Service) CurrentUser(ctx context.Context) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CurrentUser")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewError(types.ErrUnauthorized, "user is not authenticated")
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NewError(types.ErrUnauthorized, "user %s is not registered", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, storage.AsDomainError(err, "user %s not found", id)
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	return s.storage.ListUsers(ctx)
}

func (s *Service) HasRole(ctx context.Context, userID string, role types.Role) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.HasRole")
	defer span.End()

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.HasRole(role), nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func actorID(actor *types.User) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	events EventPublisherInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		notifier:  notifier,
		events:    events,
		authz:     authz,
		validator: validation.NewValidator(),
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
