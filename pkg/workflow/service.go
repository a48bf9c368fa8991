// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/rental-service/internal/authorization"
	"github.com/canonical/rental-service/internal/events"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/notifications"
	"github.com/canonical/rental-service/internal/storage"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service orchestrates the operations spanning listings, owners, tenants and
// users. Each mutation is one transaction; notifications, events and the
// OpenFGA mirror run once it committed and only ever produce warnings.
type Service struct {
	storage  StorageInterface
	catalog  CatalogInterface
	owners   OwnerRegistryInterface
	tenants  TenantRegistryInterface
	notifier NotifierInterface
	events   EventPublisherInterface
	authz    AuthorizerInterface
	identity IdentityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SubmitListing stores a PENDING listing of the actor, creating the owner
// profile from req.Profile on the first submission
func (s *Service) SubmitListing(ctx context.Context, actor *types.User, req SubmitListingRequest) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.SubmitListing")
	defer span.End()

	var (
		res     Result
		owner   *types.Owner
		listing *types.Listing
	)

	if actor == nil {
		return nil, res, types.NewError(types.ErrUnauthorized, "authentication required")
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		owner, err = s.owners.GetOwnerByUserID(ctx, actor.ID)
		switch {
		case errors.Is(err, types.ErrNotFound):
			if req.Profile == nil {
				return types.NewError(types.ErrValidation, "first name, last name and phone are required to submit a first listing")
			}

			var granted bool
			owner, granted, err = s.owners.CreateForUser(ctx, actor.ID, *req.Profile)
			if err != nil {
				return err
			}
			if granted {
				res.invalidate(actor.ID)
			}
		case err != nil:
			return err
		}

		if !owner.Active {
			return types.NewError(types.ErrForbidden, "owner %s is deactivated", owner.ID)
		}

		req.ListingRequest.OwnerID = owner.ID
		listing, err = s.catalog.Create(ctx, req.ListingRequest)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	res.AwaitingApproval = true

	s.mirror("link listing", s.authz.LinkListing(ctx, listing.ID))
	s.mirror("assign listing owner", s.authz.AssignListingOwner(ctx, listing.ID, actor.ID))

	s.publish(ctx, s.roleEvents(actor.ID, actor.ID, types.RoleOwner, res)...)
	s.publish(ctx, events.New(events.ListingSubmitted, listing.ID, actor.ID, map[string]string{"owner_id": owner.ID}))

	res.warn(s.notify(ctx, notifications.Notification{
		To:       actor.Email,
		Template: notifications.TemplateListingCreated,
		Data:     map[string]string{"name": owner.FirstName, "title": listing.Title},
	}))

	return listing, res, nil
}

func (s *Service) ApproveListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ApproveListing")
	defer span.End()

	var (
		res     Result
		listing *types.Listing
		to      *types.User
		owner   *types.Owner
	)

	if err := s.requireAdmin(actor, "approve_listing", "listing:"+listingID); err != nil {
		return nil, res, err
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		if listing, err = s.catalog.Approve(ctx, listingID); err != nil {
			return err
		}

		owner, to, err = s.ownerContact(ctx, listing)
		return err
	})
	if err != nil {
		return nil, res, err
	}

	s.logger.Security().AdminAction(actor.ID, "approve_listing", "listing:"+listingID)
	s.publish(ctx, events.New(events.ListingApproved, listing.ID, actor.ID, nil))

	if to != nil {
		res.warn(s.notify(ctx, notifications.Notification{
			To:       to.Email,
			Template: notifications.TemplateListingApproved,
			Data:     map[string]string{"name": owner.FirstName, "title": listing.Title},
		}))
	}

	return listing, res, nil
}

func (s *Service) RejectListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.RejectListing")
	defer span.End()

	if err := s.requireAdmin(actor, "reject_listing", "listing:"+listingID); err != nil {
		return nil, Result{}, err
	}

	var listing *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		listing, err = s.catalog.Reject(ctx, listingID)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	s.logger.Security().AdminAction(actor.ID, "reject_listing", "listing:"+listingID)
	s.publish(ctx, events.New(events.ListingRejected, listing.ID, actor.ID, nil))

	return listing, Result{}, nil
}

func (s *Service) DisableListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.DisableListing")
	defer span.End()

	var listing *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, err := s.guard(ctx, actor, listingID, "disable_listing"); err != nil {
			return err
		}

		var err error
		listing, err = s.catalog.Disable(ctx, listingID)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	s.publish(ctx, events.New(events.ListingDisabled, listing.ID, actor.ID, nil))

	return listing, Result{}, nil
}

// DeleteListing removes a local listing without renter, its owner is told
func (s *Service) DeleteListing(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.DeleteListing")
	defer span.End()

	var (
		res     Result
		removed *types.Listing
		owner   *types.Owner
		to      *types.User
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		listing, o, err := s.guard(ctx, actor, listingID, "delete_listing")
		if err != nil {
			return err
		}

		if o != nil {
			if _, to, err = s.ownerContact(ctx, listing); err != nil {
				return err
			}
			owner = o
		}

		removed, err = s.catalog.Delete(ctx, listingID)
		return err
	})
	if err != nil {
		return nil, res, err
	}

	s.mirror("delete listing", s.authz.DeleteListing(ctx, removed.ID))
	s.publish(ctx, events.New(events.ListingDeleted, removed.ID, actor.ID, nil))

	if to != nil {
		res.warn(s.notify(ctx, notifications.Notification{
			To:       to.Email,
			Template: notifications.TemplateListingDeleted,
			Data: map[string]string{
				"name":    owner.FirstName,
				"title":   removed.Title,
				"address": removed.Address,
			},
		}))
	}

	return removed, res, nil
}

func (s *Service) AssignOwner(ctx context.Context, actor *types.User, listingID, ownerID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.AssignOwner")
	defer span.End()

	var (
		res      Result
		listing  *types.Listing
		previous *types.Owner
		owner    *types.Owner
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		if _, previous, err = s.guard(ctx, actor, listingID, "assign_owner"); err != nil {
			return err
		}

		if owner, err = s.owners.GetOwner(ctx, ownerID); err != nil {
			return err
		}

		var granted bool
		if listing, granted, err = s.owners.AssignToListing(ctx, listingID, owner); err != nil {
			return err
		}

		if granted {
			res.invalidate(owner.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, Result{}, err
	}

	if previous != nil && previous.ID != owner.ID {
		s.mirror("remove listing owner", s.authz.RemoveListingOwner(ctx, listing.ID, previous.UserID))
	}
	s.mirror("assign listing owner", s.authz.AssignListingOwner(ctx, listing.ID, owner.UserID))

	s.publish(ctx, s.roleEvents(owner.UserID, actor.ID, types.RoleOwner, res)...)
	s.publish(ctx, events.New(events.OwnerAssigned, listing.ID, actor.ID, map[string]string{"owner_id": owner.ID}))

	return listing, res, nil
}

func (s *Service) UnassignOwner(ctx context.Context, actor *types.User, listingID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.UnassignOwner")
	defer span.End()

	var (
		listing  *types.Listing
		previous *types.Owner
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		if _, previous, err = s.guard(ctx, actor, listingID, "unassign_owner"); err != nil {
			return err
		}

		listing, err = s.owners.UnassignFromListing(ctx, listingID)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	if previous != nil {
		s.mirror("remove listing owner", s.authz.RemoveListingOwner(ctx, listing.ID, previous.UserID))
		s.publish(ctx, events.New(events.OwnerUnassigned, listing.ID, actor.ID, map[string]string{"owner_id": previous.ID}))
	}

	return listing, Result{}, nil
}

func (s *Service) AssignTenant(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.AssignTenant")
	defer span.End()

	var (
		res     Result
		listing *types.Listing
		tenant  *types.Tenant
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, err := s.guard(ctx, actor, listingID, "assign_tenant"); err != nil {
			return err
		}

		var err error
		if tenant, err = s.tenants.GetTenant(ctx, tenantID); err != nil {
			return err
		}

		var granted bool
		if listing, granted, err = s.tenants.AssignToListing(ctx, listingID, tenant); err != nil {
			return err
		}

		if granted {
			res.invalidate(tenant.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, Result{}, err
	}

	s.mirror("assign listing tenant", s.authz.AssignListingTenant(ctx, listing.ID, tenant.UserID))

	s.publish(ctx, s.roleEvents(tenant.UserID, actor.ID, types.RoleTenant, res)...)
	s.publish(ctx, events.New(events.ListingRented, listing.ID, actor.ID, map[string]string{"tenant_id": tenant.ID}))

	return listing, res, nil
}

func (s *Service) UnassignTenant(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.UnassignTenant")
	defer span.End()

	var (
		listing *types.Listing
		tenant  *types.Tenant
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, err := s.guard(ctx, actor, listingID, "unassign_tenant"); err != nil {
			return err
		}

		var err error
		if tenant, err = s.tenants.GetTenant(ctx, tenantID); err != nil {
			return err
		}

		listing, err = s.tenants.UnassignFromListing(ctx, listingID, tenantID)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	s.mirror("remove listing tenant", s.authz.RemoveListingTenant(ctx, listing.ID, tenant.UserID))
	s.publish(ctx, events.New(events.ListingVacated, listing.ID, actor.ID, map[string]string{"tenant_id": tenant.ID}))

	return listing, Result{}, nil
}

// ApplyForListing files an application of the actor, creating the tenant
// profile from profile on the first application
func (s *Service) ApplyForListing(ctx context.Context, actor *types.User, listingID string, profile *types.Profile) (*types.Tenant, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ApplyForListing")
	defer span.End()

	var (
		res    Result
		tenant *types.Tenant
	)

	if actor == nil {
		return nil, res, types.NewError(types.ErrUnauthorized, "authentication required")
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		tenant, err = s.tenants.GetTenantByUserID(ctx, actor.ID)
		switch {
		case errors.Is(err, types.ErrNotFound):
			if profile == nil {
				return types.NewError(types.ErrValidation, "first name, last name and phone are required to apply for a first listing")
			}

			var granted bool
			tenant, granted, err = s.tenants.CreateForUser(ctx, actor.ID, *profile)
			if err != nil {
				return err
			}
			if granted {
				res.invalidate(actor.ID)
			}
		case err != nil:
			return err
		}

		res.AlreadyApplied, err = s.tenants.SubmitApplication(ctx, listingID, tenant)
		return err
	})
	if err != nil {
		return nil, Result{}, err
	}

	s.publish(ctx, s.roleEvents(actor.ID, actor.ID, types.RoleTenant, res)...)
	if !res.AlreadyApplied {
		s.publish(ctx, events.New(events.ApplicationCreated, listingID, actor.ID, map[string]string{"tenant_id": tenant.ID}))
	}

	return tenant, res, nil
}

func (s *Service) ApproveApplication(ctx context.Context, actor *types.User, listingID, tenantID string) (*types.Listing, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ApproveApplication")
	defer span.End()

	var (
		res     Result
		listing *types.Listing
		tenant  *types.Tenant
		to      *types.User
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, err := s.guard(ctx, actor, listingID, "approve_application"); err != nil {
			return err
		}

		var err error
		if listing, err = s.tenants.ApproveApplication(ctx, tenantID, listingID); err != nil {
			return err
		}

		if tenant, err = s.tenants.GetTenant(ctx, tenantID); err != nil {
			return err
		}

		to, err = s.storage.GetUserByID(ctx, tenant.UserID)
		return storage.AsDomainError(err, "user %s not found", tenant.UserID)
	})
	if err != nil {
		return nil, res, err
	}

	s.mirror("assign listing tenant", s.authz.AssignListingTenant(ctx, listing.ID, tenant.UserID))
	s.publish(ctx,
		events.New(events.ApplicationApproved, listing.ID, actor.ID, map[string]string{"tenant_id": tenant.ID}),
		events.New(events.ListingRented, listing.ID, actor.ID, map[string]string{"tenant_id": tenant.ID}),
	)

	res.warn(s.notify(ctx, notifications.Notification{
		To:       to.Email,
		Template: notifications.TemplateApplicationApproved,
		Data:     map[string]string{"name": tenant.FirstName, "title": listing.Title},
	}))

	return listing, res, nil
}

func (s *Service) ViewApplications(ctx context.Context, actor *types.User, listingID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.ViewApplications")
	defer span.End()

	if _, _, err := s.guard(ctx, actor, listingID, "view_applications"); err != nil {
		return nil, err
	}

	return s.catalog.ListApplicants(ctx, listingID)
}

// CreateOwnerProfile creates the owner profile of userID, admins may do it
// for anyone
func (s *Service) CreateOwnerProfile(ctx context.Context, actor *types.User, userID string, profile types.Profile) (*types.Owner, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.CreateOwnerProfile")
	defer span.End()

	var res Result

	if err := s.requireSelfOrAdmin(actor, userID, "create_owner_profile"); err != nil {
		return nil, res, err
	}

	owner, granted, err := s.owners.CreateForUser(ctx, userID, profile)
	if err != nil {
		return nil, res, err
	}

	if granted {
		res.invalidate(userID)
	}
	s.publish(ctx, s.roleEvents(userID, actor.ID, types.RoleOwner, res)...)

	return owner, res, nil
}

func (s *Service) CreateTenantProfile(ctx context.Context, actor *types.User, userID string, profile types.Profile) (*types.Tenant, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.CreateTenantProfile")
	defer span.End()

	var res Result

	if err := s.requireSelfOrAdmin(actor, userID, "create_tenant_profile"); err != nil {
		return nil, res, err
	}

	tenant, granted, err := s.tenants.CreateForUser(ctx, userID, profile)
	if err != nil {
		return nil, res, err
	}

	if granted {
		res.invalidate(userID)
	}
	s.publish(ctx, s.roleEvents(userID, actor.ID, types.RoleTenant, res)...)

	return tenant, res, nil
}

func (s *Service) DeactivateOwner(ctx context.Context, actor *types.User, ownerID string) (*types.Owner, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.DeactivateOwner")
	defer span.End()

	if err := s.requireAdmin(actor, "deactivate_owner", "owner:"+ownerID); err != nil {
		return nil, Result{}, err
	}

	owner, disabled, err := s.owners.Deactivate(ctx, ownerID)
	if err != nil {
		return nil, Result{}, err
	}

	s.logger.Security().AdminAction(actor.ID, "deactivate_owner", "owner:"+ownerID)

	evs := []events.Event{events.New(events.OwnerDeactivated, owner.ID, actor.ID, nil)}
	for _, l := range disabled {
		evs = append(evs, events.New(events.ListingDisabled, l.ID, actor.ID, nil))
	}
	s.publish(ctx, evs...)

	return owner, Result{}, nil
}

// DeleteUser removes a user with everything hanging off it: owned listings
// go through the catalog cascade, a tenancy is vacated, then both profiles
// and the user are dropped
func (s *Service) DeleteUser(ctx context.Context, actor *types.User, userID string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.DeleteUser")
	defer span.End()

	var (
		res     Result
		user    *types.User
		removed []*types.Listing
		vacated *types.Listing
	)

	if err := s.requireSelfOrAdmin(actor, userID, "delete_user"); err != nil {
		return res, err
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		if user.IsAdmin() {
			return types.NewError(types.ErrForbidden, "admin accounts cannot be deleted")
		}

		owner, err := s.owners.GetOwnerByUserID(ctx, userID)
		switch {
		case err == nil:
			if owner.SystemOwner {
				return types.NewError(types.ErrForbidden, "the system owner account cannot be deleted")
			}

			owned, err := s.storage.ListListings(ctx, types.ListingFilter{OwnerID: owner.ID})
			if err != nil {
				return fmt.Errorf("failed to list listings of owner %s: %w", owner.ID, err)
			}

			for _, l := range owned {
				r, err := s.catalog.Remove(ctx, l.ID)
				if err != nil {
					return err
				}
				removed = append(removed, r)
			}

			if err := s.owners.Delete(ctx, owner.ID); err != nil {
				return err
			}
		case !errors.Is(err, types.ErrNotFound):
			return err
		}

		tenant, err := s.tenants.GetTenantByUserID(ctx, userID)
		switch {
		case err == nil:
			if vacated, err = s.tenants.RentedListing(ctx, tenant.ID); err != nil {
				return err
			}

			if err := s.tenants.Delete(ctx, tenant.ID); err != nil {
				return err
			}
		case !errors.Is(err, types.ErrNotFound):
			return err
		}

		return storage.AsDomainError(s.storage.DeleteUser(ctx, userID), "user %s still has profiles", userID)
	})
	if err != nil {
		return res, err
	}

	res.invalidate(userID)

	if actor.ID != userID {
		s.logger.Security().AdminAction(actor.ID, "delete_user", "user:"+userID)
	}

	evs := []events.Event{events.New(events.UserDeleted, userID, actor.ID, nil)}
	if vacated != nil {
		s.mirror("remove listing tenant", s.authz.RemoveListingTenant(ctx, vacated.ID, userID))
		evs = append(evs, events.New(events.ListingVacated, vacated.ID, actor.ID, nil))
	}
	for _, l := range removed {
		s.mirror("delete listing", s.authz.DeleteListing(ctx, l.ID))
		evs = append(evs, events.New(events.ListingDeleted, l.ID, actor.ID, nil))
	}
	s.publish(ctx, evs...)

	res.warn(s.notify(ctx, notifications.Notification{
		To:       user.Email,
		Template: notifications.TemplateAccountDeleted,
		Data:     map[string]string{"username": user.Username},
	}))

	if err := s.identity.DeleteIdentity(ctx, userID); err != nil {
		s.logger.Warnf("failed to delete identity of %s: %v", userID, err)
	}

	return res, nil
}

// GrantRole adds role to the user, OWNER and TENANT need the profile first
func (s *Service) GrantRole(ctx context.Context, actor *types.User, userID string, role types.Role) (*types.User, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.GrantRole")
	defer span.End()

	var (
		res  Result
		user *types.User
	)

	if err := s.requireAdmin(actor, "grant_role", "user:"+userID); err != nil {
		return nil, res, err
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		if user.HasRole(role) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("user %s already has role %s", user.Username, role))
			return nil
		}

		if err := s.requireProfile(ctx, userID, role); err != nil {
			return err
		}

		if err := s.storage.AddUserRole(ctx, userID, role); err != nil {
			return fmt.Errorf("failed to grant %s to %s: %w", role, userID, err)
		}

		user.GrantRole(role)
		res.invalidate(userID)
		return nil
	})
	if err != nil {
		return nil, Result{}, err
	}

	if len(res.InvalidateSessions) == 0 {
		return user, res, nil
	}

	s.logger.Security().AdminAction(actor.ID, "grant_role_"+role.String(), "user:"+userID)

	if role == types.RoleAdmin {
		s.mirror("assign platform admin", s.authz.AssignPlatformAdmin(ctx, userID))
	}
	s.publish(ctx, s.roleEvents(userID, actor.ID, role, res)...)

	return user, res, nil
}

func (s *Service) requireProfile(ctx context.Context, userID string, role types.Role) error {
	var err error

	switch role {
	case types.RoleOwner:
		_, err = s.owners.GetOwnerByUserID(ctx, userID)
	case types.RoleTenant:
		_, err = s.tenants.GetTenantByUserID(ctx, userID)
	default:
		return nil
	}

	if errors.Is(err, types.ErrNotFound) {
		return types.NewError(types.ErrValidation, "user %s needs a %s profile before receiving the role", userID, role)
	}

	return err
}

func (s *Service) RevokeRole(ctx context.Context, actor *types.User, userID string, role types.Role) (*types.User, Result, error) {
	ctx, span := s.tracer.Start(ctx, "workflow.Service.RevokeRole")
	defer span.End()

	var (
		res  Result
		user *types.User
	)

	if err := s.requireAdmin(actor, "revoke_role", "user:"+userID); err != nil {
		return nil, res, err
	}

	if role == types.RoleUser {
		return nil, res, types.NewError(types.ErrValidation, "the %s role cannot be revoked", role)
	}

	if role == types.RoleAdmin && actor.ID == userID {
		return nil, res, types.NewError(types.ErrForbidden, "admins cannot revoke their own admin role")
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.GetUserByID(ctx, userID)
		if err != nil {
			return storage.AsDomainError(err, "user %s not found", userID)
		}

		if !user.HasRole(role) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("user %s does not have role %s", user.Username, role))
			return nil
		}

		if err := s.storage.RemoveUserRole(ctx, userID, role); err != nil {
			return fmt.Errorf("failed to revoke %s from %s: %w", role, userID, err)
		}

		user.RevokeRole(role)
		res.invalidate(userID)
		return nil
	})
	if err != nil {
		return nil, Result{}, err
	}

	if len(res.InvalidateSessions) == 0 {
		return user, res, nil
	}

	s.logger.Security().AdminAction(actor.ID, "revoke_role_"+role.String(), "user:"+userID)

	if role == types.RoleAdmin {
		s.mirror("remove platform admin", s.authz.RemovePlatformAdmin(ctx, userID))
	}
	s.publish(ctx, events.New(events.RoleRevoked, userID, actor.ID, map[string]string{"role": role.String()}))

	return user, res, nil
}

// guard loads the listing with its owner and checks the actor may modify it
func (s *Service) guard(ctx context.Context, actor *types.User, listingID, action string) (*types.Listing, *types.Owner, error) {
	listing, err := s.catalog.GetListing(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}

	var owner *types.Owner
	if listing.HasOwner() {
		if owner, err = s.owners.GetOwner(ctx, listing.OwnerID); err != nil {
			return nil, nil, err
		}
	}

	if err := authorization.CanModify(listing, owner, actor).Err(); err != nil {
		s.logger.Security().AuthzFailure(actorID(actor), action, "listing:"+listingID)
		return nil, nil, err
	}

	return listing, owner, nil
}

func (s *Service) requireAdmin(actor *types.User, action, resource string) error {
	if err := authorization.RequireAdmin(actor).Err(); err != nil {
		s.logger.Security().AuthzFailure(actorID(actor), action, resource)
		return err
	}
	return nil
}

func (s *Service) requireSelfOrAdmin(actor *types.User, userID, action string) error {
	if err := authorization.RequireSelfOrAdmin(actor, userID).Err(); err != nil {
		s.logger.Security().AuthzFailure(actorID(actor), action, "user:"+userID)
		return err
	}
	return nil
}

// ownerContact returns the owner of the listing and its user, both nil when
// the listing has no owner
func (s *Service) ownerContact(ctx context.Context, listing *types.Listing) (*types.Owner, *types.User, error) {
	if !listing.HasOwner() {
		return nil, nil, nil
	}

	owner, err := s.owners.GetOwner(ctx, listing.OwnerID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.storage.GetUserByID(ctx, owner.UserID)
	if err != nil {
		return nil, nil, storage.AsDomainError(err, "user %s not found", owner.UserID)
	}

	return owner, user, nil
}

func (s *Service) roleEvents(userID, actorID string, role types.Role, res Result) []events.Event {
	for _, id := range res.InvalidateSessions {
		if id == userID {
			return []events.Event{events.New(events.RoleGranted, userID, actorID, map[string]string{"role": role.String()})}
		}
	}
	return nil
}

func (s *Service) notify(ctx context.Context, n notifications.Notification) notifications.Delivery {
	return notifications.Send(ctx, s.notifier, s.monitor, s.logger, n)
}

func (s *Service) publish(ctx context.Context, evs ...events.Event) {
	if len(evs) == 0 {
		return
	}

	if err := s.events.Publish(ctx, evs...); err != nil {
		s.logger.Warnf("failed to publish %d events: %v", len(evs), err)
	}
}

// mirror logs failed OpenFGA writes, the database stays the source of truth
func (s *Service) mirror(what string, err error) {
	if err != nil {
		s.logger.Warnf("failed to %s in the authorization model: %v", what, err)
	}
}

func actorID(actor *types.User) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}

func NewService(
	storage StorageInterface,
	catalog CatalogInterface,
	owners OwnerRegistryInterface,
	tenants TenantRegistryInterface,
	notifier NotifierInterface,
	events EventPublisherInterface,
	authz AuthorizerInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		catalog:  catalog,
		owners:   owners,
		tenants:  tenants,
		notifier: notifier,
		events:   events,
		authz:    authz,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
