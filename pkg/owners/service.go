// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
	"github.com/canonical/rental-service/internal/validation"
)

const (
	SystemUsername  = "external-system"
	SystemEmail     = "system@external.local"
	systemFirstName = "System"
	systemLastName  = "Owner"
	systemPhone     = "+0000000000"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	catalog   CatalogInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve returns the owner with the given id, or the actor's own owner
// profile when no id is given
func (s *Service) Resolve(ctx context.Context, ownerID string, actor *types.User) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.Resolve")
	defer span.End()

	if ownerID != "" {
		return s.GetOwner(ctx, ownerID)
	}

	if actor == nil {
		return nil, types.NewError(types.ErrNotFound, "no owner given")
	}

	return s.GetOwnerByUserID(ctx, actor.ID)
}

func (s *Service) GetOwner(ctx context.Context, id string) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.GetOwner")
	defer span.End()

	o, err := s.storage.GetOwnerByID(ctx, id)
	if err != nil {
		return nil, storage.AsDomainError(err, "owner %s not found", id)
	}

	return o, nil
}

func (s *Service) GetOwnerByUserID(ctx context.Context, userID string) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.GetOwnerByUserID")
	defer span.End()

	o, err := s.storage.GetOwnerByUserID(ctx, userID)
	if err != nil {
		return nil, storage.AsDomainError(err, "user %s has no owner profile", userID)
	}

	return o, nil
}

// CreateForUser stores the owner profile of userID and grants the OWNER role,
// the boolean reports whether the role was new to the user
func (s *Service) CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Owner, bool, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.CreateForUser")
	defer span.End()

	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	profile.Phone = strings.TrimSpace(profile.Phone)

	if err := s.validator.Struct(profile); err != nil {
		return nil, false, err
	}

	var (
		owner   *types.Owner
		granted bool
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		if _, err := s.storage.GetOwnerByUserID(ctx, userID); err == nil {
			return types.NewError(types.ErrConflict, "user %s already has an owner profile", userID)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up owner profile: %w", err)
		}

		owner, err = s.storage.CreateOwner(ctx, &types.Owner{
			UserID:    userID,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Phone:     profile.Phone,
			Active:    true,
		})
		if storage.DuplicateOn(err, "user_id") {
			return types.NewError(types.ErrConflict, "user %s already has an owner profile", userID)
		}
		if err != nil {
			return storage.AsDomainError(err, "phone number %s is already registered", profile.Phone)
		}

		granted, err = s.grant(ctx, user)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return owner, granted, nil
}

func (s *Service) grant(ctx context.Context, user *types.User) (bool, error) {
	if user.HasRole(types.RoleOwner) {
		return false, nil
	}

	if err := s.storage.AddUserRole(ctx, user.ID, types.RoleOwner); err != nil {
		return false, fmt.Errorf("failed to grant owner role to %s: %w", user.ID, err)
	}

	user.GrantRole(types.RoleOwner)
	return true, nil
}

// AssignToListing makes owner the owner of the listing, the owner's user
// receives the OWNER role when it lacks it
func (s *Service) AssignToListing(ctx context.Context, listingID string, owner *types.Owner) (*types.Listing, bool, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.AssignToListing")
	defer span.End()

	if owner == nil {
		return nil, false, types.NewError(types.ErrBadRequest, "an owner is required")
	}

	var (
		listing *types.Listing
		granted bool
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		listing, err = s.storage.LockListing(ctx, listingID)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", listingID)
		}

		if listing.External && !owner.SystemOwner {
			return types.NewError(types.ErrForbidden, "external listings belong to the system owner")
		}

		if !owner.Active {
			return types.NewError(types.ErrConflict, "owner %s is deactivated", owner.ID)
		}

		listing.OwnerID = owner.ID
		if err := s.storage.UpdateListing(ctx, listing); err != nil {
			return storage.AsDomainError(err, "owner %s not found", owner.ID)
		}

		user, err := s.storage.GetUserByID(ctx, owner.UserID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", owner.UserID)
		}

		granted, err = s.grant(ctx, user)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return listing, granted, nil
}

// UnassignFromListing detaches the owner and disables the listing
func (s *Service) UnassignFromListing(ctx context.Context, listingID string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.UnassignFromListing")
	defer span.End()

	return s.catalog.DisableForOwnerRemoval(ctx, listingID)
}

// Deactivate disables every listing of the owner, refused while one of them is rented
func (s *Service) Deactivate(ctx context.Context, ownerID string) (*types.Owner, []*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.Deactivate")
	defer span.End()

	var (
		owner    *types.Owner
		disabled []*types.Listing
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		owner, err = s.storage.GetOwnerByID(ctx, ownerID)
		if err != nil {
			return storage.AsDomainError(err, "owner %s not found", ownerID)
		}

		if owner.SystemOwner {
			return types.NewError(types.ErrForbidden, "the system owner cannot be deactivated")
		}

		if !owner.Active {
			return types.NewError(types.ErrConflict, "owner %s is already deactivated", ownerID)
		}

		owned, err := s.storage.ListListings(ctx, types.ListingFilter{OwnerID: ownerID})
		if err != nil {
			return fmt.Errorf("failed to list listings of owner %s: %w", ownerID, err)
		}

		for _, l := range owned {
			if l.Status == types.ListingRented || l.HasRenter() {
				return types.NewError(types.ErrConflict, "owner %s has rented listings and cannot be deactivated", ownerID)
			}
		}

		for _, l := range owned {
			if l.Status == types.ListingDisabled {
				continue
			}

			d, err := s.catalog.Disable(ctx, l.ID)
			if err != nil {
				return err
			}
			disabled = append(disabled, d)
		}

		owner.Active = false
		return s.storage.UpdateOwner(ctx, owner)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Infof("deactivated owner %s, %d listings disabled", ownerID, len(disabled))

	return owner, disabled, nil
}

// Delete drops an owner profile, its listings must already be gone
func (s *Service) Delete(ctx context.Context, ownerID string) error {
	ctx, span := s.tracer.Start(ctx, "owners.Service.Delete")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		owner, err := s.storage.GetOwnerByID(ctx, ownerID)
		if err != nil {
			return storage.AsDomainError(err, "owner %s not found", ownerID)
		}

		if owner.SystemOwner {
			return types.NewError(types.ErrForbidden, "the system owner cannot be deleted")
		}

		return storage.AsDomainError(s.storage.DeleteOwner(ctx, ownerID), "owner %s still owns listings", ownerID)
	})
}

func (s *Service) ListOwners(ctx context.Context) ([]*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.ListOwners")
	defer span.End()

	return s.storage.ListOwners(ctx)
}

func (s *Service) GetSystemOwner(ctx context.Context) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.GetSystemOwner")
	defer span.End()

	o, err := s.storage.GetSystemOwner(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("system owner is not configured: %w", err)
	}

	return o, err
}

// EnsureSystemOwner creates the owner of external listings on first start
func (s *Service) EnsureSystemOwner(ctx context.Context) (*types.Owner, error) {
	ctx, span := s.tracer.Start(ctx, "owners.Service.EnsureSystemOwner")
	defer span.End()

	var owner *types.Owner

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		owner, err = s.storage.GetSystemOwner(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up system owner: %w", err)
		}

		user, err := s.storage.GetUserByUsername(ctx, SystemUsername)
		if errors.Is(err, storage.ErrNotFound) {
			user, err = s.storage.CreateUser(ctx, &types.User{
				Username: SystemUsername,
				Email:    SystemEmail,
				Roles:    []types.Role{types.RoleUser},
			})
		}
		if err != nil {
			return fmt.Errorf("failed to provision system user: %w", err)
		}

		owner, err = s.storage.CreateOwner(ctx, &types.Owner{
			UserID:      user.ID,
			FirstName:   systemFirstName,
			LastName:    systemLastName,
			Phone:       systemPhone,
			SystemOwner: true,
			Active:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to create system owner: %w", err)
		}

		_, err = s.grant(ctx, user)
		if err == nil {
			s.logger.Infof("created system owner %s", owner.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return owner, nil
}

func NewService(storage StorageInterface, catalog CatalogInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:   storage,
		catalog:   catalog,
		validator: validation.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
