// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package listings

import (
	"context"
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

// Create stores a new local listing awaiting approval
func (s *Service) Create(ctx context.Context, req ListingRequest) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Create")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	l := req.listing()
	l.External = false
	l.SourceURL = ""
	l.DateScraped = nil
	l.TenantID = ""

	created, err := s.storage.CreateListing(ctx, l)
	if err != nil {
		return nil, storage.AsDomainError(err, "failed to create listing %q", l.Title)
	}

	s.monitor.IncrementDomainEvent(map[string]string{"event": "listing_submitted"})

	return created, nil
}

func (s *Service) GetListing(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.GetListing")
	defer span.End()

	l, err := s.storage.GetListingByID(ctx, id)
	if err != nil {
		return nil, storage.AsDomainError(err, "listing %s not found", id)
	}

	return l, nil
}

func (s *Service) ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.ListListings")
	defer span.End()

	return s.storage.ListListings(ctx, filter)
}

// Search matches a case insensitive title fragment within an inclusive price
// range, a blank title filters on price alone. Only missing bounds take the
// catalog defaults, an inverted range matches nothing.
func (s *Service) Search(ctx context.Context, title string, minPrice, maxPrice *int) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Search")
	defer span.End()

	lo, hi := types.MinListingPrice, types.MaxListingPrice
	if minPrice != nil {
		lo = *minPrice
	}
	if maxPrice != nil {
		hi = *maxPrice
	}

	return s.storage.ListListings(ctx, types.ListingFilter{
		Title:    strings.TrimSpace(title),
		MinPrice: &lo,
		MaxPrice: &hi,
	})
}

func (s *Service) ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.ListApplicants")
	defer span.End()

	if _, err := s.GetListing(ctx, listingID); err != nil {
		return nil, err
	}

	return s.storage.ListApplicants(ctx, listingID)
}

// ListVisibleOwnerListings returns what the public can see of an owner
func (s *Service) ListVisibleOwnerListings(ctx context.Context, ownerID string) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.ListVisibleOwnerListings")
	defer span.End()

	external := false
	return s.storage.ListListings(ctx, types.ListingFilter{
		OwnerID:  ownerID,
		Status:   types.ListingApproved,
		External: &external,
	})
}

func (s *Service) Approve(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Approve")
	defer span.End()

	return s.transition(ctx, id, (*types.Listing).Approve)
}

func (s *Service) Reject(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Reject")
	defer span.End()

	return s.transition(ctx, id, (*types.Listing).Reject)
}

func (s *Service) Disable(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Disable")
	defer span.End()

	return s.transition(ctx, id, (*types.Listing).Disable)
}

// DisableForOwnerRemoval disables the listing and detaches its owner
func (s *Service) DisableForOwnerRemoval(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.DisableForOwnerRemoval")
	defer span.End()

	return s.transition(ctx, id, func(l *types.Listing) error {
		if err := l.Disable(); err != nil {
			return err
		}
		l.OwnerID = ""
		return nil
	})
}

// transition locks the listing, applies fn and stores the result
func (s *Service) transition(ctx context.Context, id string, fn func(*types.Listing) error) (*types.Listing, error) {
	var l *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		l, err = s.storage.LockListing(ctx, id)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", id)
		}

		if err := fn(l); err != nil {
			return err
		}

		return storage.AsDomainError(s.storage.UpdateListing(ctx, l), "failed to update listing %s", id)
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Delete is the manual removal path, it refuses external and rented listings
func (s *Service) Delete(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Delete")
	defer span.End()

	var removed *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		l, err := s.storage.LockListing(ctx, id)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", id)
		}

		if l.External {
			return types.NewError(types.ErrForbidden, "external listings cannot be deleted manually, they are removed by the cleanup sweep")
		}

		if l.HasRenter() {
			return types.NewError(types.ErrForbidden, "listing %s is rented, vacate it before deleting", id)
		}

		removed, err = s.Remove(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// Remove cascades the listing away: the renter is released and cancelled,
// applications and images go with the record. The listing is returned as it
// was before removal.
func (s *Service) Remove(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "listings.Service.Remove")
	defer span.End()

	var removed *types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		l, err := s.storage.LockListing(ctx, id)
		if err != nil {
			return storage.AsDomainError(err, "listing %s not found", id)
		}

		snapshot := *l
		removed = &snapshot

		if l.HasRenter() {
			if err := s.cancelTenancy(ctx, l); err != nil {
				return err
			}
		}

		if l.HasOwner() {
			l.OwnerID = ""
			if err := s.storage.UpdateListing(ctx, l); err != nil {
				return fmt.Errorf("failed to detach owner of listing %s: %w", id, err)
			}
		}

		if err := s.storage.DeleteApplicationsByListing(ctx, id); err != nil {
			return fmt.Errorf("failed to delete applications of listing %s: %w", id, err)
		}

		return storage.AsDomainError(s.storage.DeleteListing(ctx, id), "failed to delete listing %s", id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("removed listing %s", id)

	return removed, nil
}

func (s *Service) cancelTenancy(ctx context.Context, l *types.Listing) error {
	tenant, err := s.storage.GetTenantByID(ctx, l.TenantID)
	if err != nil {
		return storage.AsDomainError(err, "tenant %s not found", l.TenantID)
	}

	if err := l.Vacate(); err != nil {
		return err
	}

	if err := s.storage.UpdateListing(ctx, l); err != nil {
		return fmt.Errorf("failed to vacate listing %s: %w", l.ID, err)
	}

	tenant.RentalStatus = types.RentalCanceled
	if err := s.storage.UpdateTenant(ctx, tenant); err != nil {
		return fmt.Errorf("failed to cancel tenancy of %s: %w", tenant.ID, err)
	}

	return nil
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
