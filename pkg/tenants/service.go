// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve returns the tenant with the given id, or the actor's own tenant
// profile when no id is given
func (s *Service) Resolve(ctx context.Context, tenantID string, actor *types.User) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.Resolve")
	defer span.End()

	if tenantID != "" {
		return s.GetTenant(ctx, tenantID)
	}

	if actor == nil {
		return nil, types.NewError(types.ErrNotFound, "no tenant given")
	}

	return s.GetTenantByUserID(ctx, actor.ID)
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, storage.AsDomainError(err, "tenant %s not found", id)
	}

	return t, nil
}

func (s *Service) GetTenantByUserID(ctx context.Context, userID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.GetTenantByUserID")
	defer span.End()

	t, err := s.storage.GetTenantByUserID(ctx, userID)
	if err != nil {
		return nil, storage.AsDomainError(err, "user %s has no tenant profile", userID)
	}

	return t, nil
}

// CreateForUser stores the tenant profile of userID with status APPLIED and
// grants the TENANT role, the boolean reports whether the role was new
func (s *Service) CreateForUser(ctx context.Context, userID string, profile types.Profile) (*types.Tenant, bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateForUser")
	defer span.End()

	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	profile.Phone = strings.TrimSpace(profile.Phone)

	if err := s.validator.Struct(profile); err != nil {
		return nil, false, err
	}

	var (
		tenant  *types.Tenant
		granted bool
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		if _, err := s.storage.GetTenantByUserID(ctx, userID); err == nil {
			return types.NewError(types.ErrConflict, "user %s already has a tenant profile", userID)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up tenant profile: %w", err)
		}

		tenant, err = s.storage.CreateTenant(ctx, &types.Tenant{
			UserID:       userID,
			FirstName:    profile.FirstName,
			LastName:     profile.LastName,
			Phone:        profile.Phone,
			RentalStatus: types.RentalApplied,
		})
		if err != nil {
			return storage.AsDomainError(err, "user %s already has a tenant profile", userID)
		}

		granted, err = s.grant(ctx, user)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return tenant, granted, nil
}

func (s *Service) grant(ctx context.Context, user *types.User) (bool, error) {
	if user.HasRole(types.RoleTenant) {
		return false, nil
	}

	if err := s.storage.AddUserRole(ctx, user.ID, types.RoleTenant); err != nil {
		return false, fmt.Errorf("failed to grant tenant role to %s: %w", user.ID, err)
	}

	user.GrantRole(types.RoleTenant)
	return true, nil
}

// rentedListing returns the listing the tenant currently rents, nil when none
func (s *Service) rentedListing(ctx context.Context, tenantID string) (*types.Listing, error) {
	l, err := s.storage.GetListingByTenantID(ctx, tenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up rented listing of %s: %w", tenantID, err)
	}

	return l, nil
}

// SubmitApplication adds the tenant to the applicants of an APPROVED listing,
// it reports true without changes when the tenant has already applied
func (s *Service) SubmitApplication(ctx context.Context, listingID string, tenant *types.Tenant) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.SubmitApplication")
	defer span.End()

	if tenant == nil {
		return false, types.NewError(types.ErrBadRequest, "a tenant is required to apply")
	}

	alreadyApplied := false

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		listing, err := s.storage.LockListing(ctx, listingID)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", listingID)
		}

		t, err := s.storage.GetTenantByID(ctx, tenant.ID)
		if err != nil {
			return storage.AsDomainError(err, "tenant %s not found", tenant.ID)
		}

		applied, err := s.storage.HasApplication(ctx, t.ID, listing.ID)
		if err != nil {
			return fmt.Errorf("failed to look up application: %w", err)
		}

		if applied {
			alreadyApplied = true
			return nil
		}

		rented, err := s.rentedListing(ctx, t.ID)
		if err != nil {
			return err
		}

		if rented != nil {
			return types.NewError(types.ErrConflict, "tenant %s is already renting a listing", t.ID)
		}

		if listing.Status != types.ListingApproved {
			return types.NewError(types.ErrConflict, "listing %s is not open for applications", listing.ID)
		}

		if err := s.storage.AddApplication(ctx, t.ID, listing.ID); err != nil {
			return storage.AsDomainError(err, "tenant %s already applied to listing %s", t.ID, listing.ID)
		}

		t.RentalStatus = types.RentalApplied
		return storage.AsDomainError(s.storage.UpdateTenant(ctx, t), "tenant %s not found", t.ID)
	})
	if err != nil {
		return false, err
	}

	return alreadyApplied, nil
}

// ApproveApplication turns an application into a tenancy
func (s *Service) ApproveApplication(ctx context.Context, tenantID, listingID string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ApproveApplication")
	defer span.End()

	var listing *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		listing, err = s.storage.LockListing(ctx, listingID)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", listingID)
		}

		tenant, err := s.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			return storage.AsDomainError(err, "tenant %s not found", tenantID)
		}

		if err := s.checkRentable(ctx, listing, tenant); err != nil {
			return err
		}

		applied, err := s.storage.HasApplication(ctx, tenantID, listingID)
		if err != nil {
			return fmt.Errorf("failed to look up application: %w", err)
		}

		if !applied {
			return types.NewError(types.ErrNotFound, "tenant %s has not applied to listing %s", tenantID, listingID)
		}

		return s.rent(ctx, listing, tenant)
	})
	if err != nil {
		return nil, err
	}

	s.monitor.IncrementDomainEvent(map[string]string{"event": "application_approved"})

	return listing, nil
}

// checkRentable reports a Conflict when the listing has a renter or the
// tenant already rents a listing
func (s *Service) checkRentable(ctx context.Context, listing *types.Listing, tenant *types.Tenant) error {
	if listing.HasRenter() {
		return types.NewError(types.ErrConflict, "listing %s is already rented", listing.ID)
	}

	rented, err := s.rentedListing(ctx, tenant.ID)
	if err != nil {
		return err
	}

	if rented != nil {
		return types.NewError(types.ErrConflict, "tenant %s is already renting another listing", tenant.ID)
	}

	return nil
}

// rent links tenant as the renter of the locked listing, callers run
// checkRentable first
func (s *Service) rent(ctx context.Context, listing *types.Listing, tenant *types.Tenant) error {
	if err := listing.MarkRented(tenant.ID); err != nil {
		return err
	}

	if err := s.storage.UpdateListing(ctx, listing); err != nil {
		return storage.AsDomainError(err, "tenant %s is already renting another listing", tenant.ID)
	}

	tenant.RentalStatus = types.RentalRenting
	return storage.AsDomainError(s.storage.UpdateTenant(ctx, tenant), "tenant %s not found", tenant.ID)
}

// AssignToListing rents the listing to tenant without an application, the
// tenant's user receives the TENANT role when it lacks it
func (s *Service) AssignToListing(ctx context.Context, listingID string, tenant *types.Tenant) (*types.Listing, bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.AssignToListing")
	defer span.End()

	if tenant == nil {
		return nil, false, types.NewError(types.ErrBadRequest, "a tenant is required")
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

		t, err := s.storage.GetTenantByID(ctx, tenant.ID)
		if err != nil {
			return storage.AsDomainError(err, "tenant %s not found", tenant.ID)
		}

		if err := s.checkRentable(ctx, listing, t); err != nil {
			return err
		}

		if err := s.rent(ctx, listing, t); err != nil {
			return err
		}

		user, err := s.storage.GetUserByID(ctx, t.UserID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", t.UserID)
		}

		granted, err = s.grant(ctx, user)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return listing, granted, nil
}

// UnassignFromListing ends the tenancy, the listing goes back to APPROVED and
// the tenant to CANCELED
func (s *Service) UnassignFromListing(ctx context.Context, listingID, tenantID string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.UnassignFromListing")
	defer span.End()

	var listing *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		listing, err = s.storage.LockListing(ctx, listingID)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", listingID)
		}

		tenant, err := s.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			return storage.AsDomainError(err, "tenant %s not found", tenantID)
		}

		if listing.TenantID != tenant.ID {
			return types.NewError(types.ErrBadRequest, "tenant %s is not renting listing %s", tenantID, listingID)
		}

		return s.vacate(ctx, listing, tenant)
	})
	if err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *Service) vacate(ctx context.Context, listing *types.Listing, tenant *types.Tenant) error {
	if err := listing.Vacate(); err != nil {
		return err
	}

	if err := s.storage.UpdateListing(ctx, listing); err != nil {
		return fmt.Errorf("failed to vacate listing %s: %w", listing.ID, err)
	}

	tenant.RentalStatus = types.RentalCanceled
	if err := s.storage.UpdateTenant(ctx, tenant); err != nil {
		return fmt.Errorf("failed to cancel tenancy of %s: %w", tenant.ID, err)
	}

	return nil
}

// Delete vacates the rented listing, drops the applications and then the
// tenant profile
func (s *Service) Delete(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.Delete")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		tenant, err := s.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			return storage.AsDomainError(err, "tenant %s not found", tenantID)
		}

		rented, err := s.rentedListing(ctx, tenantID)
		if err != nil {
			return err
		}

		if rented != nil {
			listing, err := s.storage.LockListing(ctx, rented.ID)
			if err != nil {
				return storage.AsDomainError(err, "listing %s not found", rented.ID)
			}

			if err := s.vacate(ctx, listing, tenant); err != nil {
				return err
			}
		}

		if err := s.storage.DeleteApplicationsByTenant(ctx, tenantID); err != nil {
			return fmt.Errorf("failed to delete applications of %s: %w", tenantID, err)
		}

		return storage.AsDomainError(s.storage.DeleteTenant(ctx, tenantID), "tenant %s is still renting", tenantID)
	})
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ListAppliedListings")
	defer span.End()

	if _, err := s.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.storage.ListAppliedListings(ctx, tenantID)
}

// RentedListing returns the listing rented by the tenant, nil when none
func (s *Service) RentedListing(ctx context.Context, tenantID string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.RentedListing")
	defer span.End()

	return s.rentedListing(ctx, tenantID)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:   storage,
		validator: validation.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
