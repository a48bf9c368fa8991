// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/canonical/rental-service/internal/events"
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
	catalog   CatalogInterface
	events    EventPublisherInterface
	authz     AuthorizerInterface
	validator *validation.Validator
	now       func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ImportListings upserts the batch by source URL in one transaction, a single
// invalid entry rejects the whole batch
func (s *Service) ImportListings(ctx context.Context, batch []Listing) (*ImportResult, error) {
	ctx, span := s.tracer.Start(ctx, "external.Service.ImportListings")
	defer span.End()

	for i, e := range batch {
		if err := s.validator.Struct(e); err != nil {
			return nil, types.NewError(types.ErrValidation, "listing %d: %v", i, err)
		}
	}

	var (
		res     ImportResult
		owner   *types.Owner
		created []*types.Listing
	)

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		owner, err = s.storage.GetSystemOwner(ctx)
		if err != nil {
			return fmt.Errorf("system owner is not configured: %w", err)
		}

		for _, e := range batch {
			sourceURL := strings.TrimSpace(e.SourceURL)

			existing, err := s.storage.GetListingBySourceURL(ctx, sourceURL)
			switch {
			case err == nil:
				e.apply(existing, owner.ID)
				if err := s.storage.UpdateListing(ctx, existing); err != nil {
					return storage.AsDomainError(err, "failed to update external listing %s", sourceURL)
				}
				res.Updated++
			case errors.Is(err, storage.ErrNotFound):
				l := new(types.Listing)
				e.apply(l, owner.ID)

				l, err = s.storage.CreateListing(ctx, l)
				if err != nil {
					return storage.AsDomainError(err, "failed to create external listing %s", sourceURL)
				}
				created = append(created, l)
				res.Created++
			default:
				return fmt.Errorf("failed to look up external listing %s: %w", sourceURL, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, l := range created {
		if err := s.authz.LinkListing(ctx, l.ID); err != nil {
			s.logger.Warnf("failed to link external listing %s: %v", l.ID, err)
		}
		if err := s.authz.AssignListingOwner(ctx, l.ID, owner.UserID); err != nil {
			s.logger.Warnf("failed to assign system owner to listing %s: %v", l.ID, err)
		}
	}

	s.publish(ctx, events.New(events.ExternalImported, owner.ID, "", map[string]string{
		"created": strconv.Itoa(res.Created),
		"updated": strconv.Itoa(res.Updated),
	}))

	s.monitor.IncrementDomainEvent(map[string]string{"event": "external_import"})
	s.logger.Infof("imported external listings, %d created and %d updated", res.Created, res.Updated)

	return &res, nil
}

// CleanupExternalListings removes external listings scraped more than
// graceDays ago
func (s *Service) CleanupExternalListings(ctx context.Context, graceDays int) (*CleanupResult, error) {
	ctx, span := s.tracer.Start(ctx, "external.Service.CleanupExternalListings")
	defer span.End()

	if graceDays < 0 {
		return nil, types.NewError(types.ErrValidation, "grace days must not be negative, got %d", graceDays)
	}

	res := CleanupResult{
		GraceDays: graceDays,
		Cutoff:    s.now().UTC().AddDate(0, 0, -graceDays),
	}

	var removed []*types.Listing

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		external := true

		stale, err := s.storage.ListListings(ctx, types.ListingFilter{External: &external, ScrapedBefore: &res.Cutoff})
		if err != nil {
			return fmt.Errorf("failed to list stale external listings: %w", err)
		}

		for _, l := range stale {
			r, err := s.catalog.Remove(ctx, l.ID)
			if err != nil {
				return err
			}
			removed = append(removed, r)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Removed = len(removed)

	evs := make([]events.Event, 0, len(removed))
	for _, l := range removed {
		if err := s.authz.DeleteListing(ctx, l.ID); err != nil {
			s.logger.Warnf("failed to delete authorization tuples of listing %s: %v", l.ID, err)
		}
		evs = append(evs, events.New(events.ExternalCleaned, l.ID, "", map[string]string{"source_url": l.SourceURL}))
	}
	s.publish(ctx, evs...)

	s.logger.Infof("removed %d external listings scraped before %s", res.Removed, res.Cutoff.Format(time.RFC3339))

	return &res, nil
}

func (s *Service) publish(ctx context.Context, evs ...events.Event) {
	if len(evs) == 0 {
		return
	}

	if err := s.events.Publish(ctx, evs...); err != nil {
		s.logger.Warnf("failed to publish %d events: %v", len(evs), err)
	}
}

func NewService(storage StorageInterface, catalog CatalogInterface, events EventPublisherInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:   storage,
		catalog:   catalog,
		events:    events,
		authz:     authz,
		validator: validation.NewValidator(),
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
