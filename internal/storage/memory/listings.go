// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/canonical/rental-service/internal/db"
	"github.com/canonical/rental-service/internal/types"
)

// checkListing mirrors the constraints of the listings table
func checkListing(txn *memdb.Txn, l *types.Listing) error {
	if l.HasRenter() != (l.Status == types.ListingRented) {
		return fmt.Errorf("write listing %s: renter and status %s disagree", l.ID, l.Status)
	}

	if l.External && (l.SourceURL == "" || l.DateScraped == nil) {
		return fmt.Errorf("write listing %s: external listing without source", l.ID)
	}

	if l.SourceURL != "" {
		if other, err := first[types.Listing](txn, tableListings, "source_url", l.SourceURL); err != nil {
			return err
		} else if other != nil && other.ID != l.ID {
			return duplicate("write listing", "source_url")
		}
	}

	if l.HasOwner() {
		if o, err := first[types.Owner](txn, tableOwners, "id", l.OwnerID); err != nil {
			return err
		} else if o == nil {
			return dangling("write listing", "owners")
		}
	}

	if l.HasRenter() {
		if t, err := first[types.Tenant](txn, tableTenants, "id", l.TenantID); err != nil {
			return err
		} else if t == nil {
			return dangling("write listing", "tenants")
		}

		if other, err := first[types.Listing](txn, tableListings, "tenant_id", l.TenantID); err != nil {
			return err
		} else if other != nil && other.ID != l.ID {
			return duplicate("write listing", "tenant_id")
		}
	}

	return nil
}

func (s *Store) CreateListing(ctx context.Context, l *types.Listing) (*types.Listing, error) {
	created := cloneListing(l)
	created.ID = newID()
	created.CreatedAt = time.Now().UTC()
	if created.Status == "" {
		created.Status = types.ListingPending
	}

	err := s.write(ctx, func(txn *memdb.Txn) error {
		if err := checkListing(txn, created); err != nil {
			return err
		}

		return txn.Insert(tableListings, created)
	})
	if err != nil {
		return nil, err
	}

	return cloneListing(created), nil
}

func (s *Store) GetListingByID(ctx context.Context, id string) (*types.Listing, error) {
	return s.getListing(ctx, "id", id)
}

// LockListing is a plain read, write transactions are already exclusive
func (s *Store) LockListing(ctx context.Context, id string) (*types.Listing, error) {
	return s.getListing(ctx, "id", id)
}

func (s *Store) GetListingBySourceURL(ctx context.Context, sourceURL string) (*types.Listing, error) {
	return s.getListing(ctx, "source_url", sourceURL)
}

func (s *Store) GetListingByTenantID(ctx context.Context, tenantID string) (*types.Listing, error) {
	return s.getListing(ctx, "tenant_id", tenantID)
}

func (s *Store) getListing(ctx context.Context, index, value string) (*types.Listing, error) {
	if value == "" {
		return nil, notFound("listing", value)
	}

	l, err := first[types.Listing](s.read(ctx), tableListings, index, value)
	if err != nil {
		return nil, err
	}

	if l == nil {
		return nil, notFound("listing", value)
	}

	return cloneListing(l), nil
}

func matches(l *types.Listing, f types.ListingFilter) bool {
	switch {
	case f.External != nil && l.External != *f.External:
		return false
	case f.Status != "" && l.Status != f.Status:
		return false
	case f.OwnerID != "" && l.OwnerID != f.OwnerID:
		return false
	case f.TenantID != "" && l.TenantID != f.TenantID:
		return false
	case f.MinPrice != nil && l.Price < *f.MinPrice:
		return false
	case f.MaxPrice != nil && l.Price > *f.MaxPrice:
		return false
	case f.ScrapedBefore != nil && (l.DateScraped == nil || !l.DateScraped.Before(*f.ScrapedBefore)):
		return false
	}

	title := strings.ToLower(strings.TrimSpace(f.Title))
	return title == "" || strings.Contains(strings.ToLower(l.Title), title)
}

// ListListings returns the listings matching every set field of the filter,
// newest first
func (s *Store) ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error) {
	listings, err := all[types.Listing](s.read(ctx), tableListings, "id")
	if err != nil {
		return nil, err
	}

	out := []*types.Listing{}
	for _, l := range listings {
		if matches(l, filter) {
			out = append(out, cloneListing(l))
		}
	}

	slices.SortFunc(out, func(a, b *types.Listing) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if filter.PageSize > 0 {
		size := db.PageSize(filter.PageSize)
		offset := db.Offset(filter.Page, size)

		if offset >= uint64(len(out)) {
			return []*types.Listing{}, nil
		}

		out = out[offset:min(offset+size, uint64(len(out)))]
	}

	return out, nil
}

func (s *Store) UpdateListing(ctx context.Context, l *types.Listing) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Listing](txn, tableListings, "id", l.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("listing", l.ID)
		}

		updated := cloneListing(l)
		updated.CreatedAt = existing.CreatedAt

		if err := checkListing(txn, updated); err != nil {
			return err
		}

		return txn.Insert(tableListings, updated)
	})
}

// DeleteListing removes the listing and its applications
func (s *Store) DeleteListing(ctx context.Context, id string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		existing, err := first[types.Listing](txn, tableListings, "id", id)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFound("listing", id)
		}

		if _, err := txn.DeleteAll(tableApplications, "listing", id); err != nil {
			return fmt.Errorf("failed to delete applications: %w", err)
		}

		if err := txn.Delete(tableListings, existing); err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}

		return nil
	})
}

func (s *Store) AddApplication(ctx context.Context, tenantID, listingID string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		if t, err := first[types.Tenant](txn, tableTenants, "id", tenantID); err != nil {
			return err
		} else if t == nil {
			return dangling("insert application", "tenants")
		}

		if l, err := first[types.Listing](txn, tableListings, "id", listingID); err != nil {
			return err
		} else if l == nil {
			return dangling("insert application", "listings")
		}

		if a, err := first[applicationRecord](txn, tableApplications, "id", tenantID, listingID); err != nil {
			return err
		} else if a != nil {
			return duplicate("insert application", "tenant_id, listing_id")
		}

		return txn.Insert(tableApplications, &applicationRecord{
			TenantID:  tenantID,
			ListingID: listingID,
			CreatedAt: time.Now().UTC(),
			Seq:       s.seq.Add(1),
		})
	})
}

func (s *Store) HasApplication(ctx context.Context, tenantID, listingID string) (bool, error) {
	a, err := first[applicationRecord](s.read(ctx), tableApplications, "id", tenantID, listingID)
	if err != nil {
		return false, err
	}

	return a != nil, nil
}

func sortApplications(apps []*applicationRecord) {
	slices.SortFunc(apps, func(a, b *applicationRecord) int {
		if a.Seq < b.Seq {
			return -1
		}
		if a.Seq > b.Seq {
			return 1
		}
		return 0
	})
}

func (s *Store) ListApplicants(ctx context.Context, listingID string) ([]*types.Tenant, error) {
	txn := s.read(ctx)

	apps, err := all[applicationRecord](txn, tableApplications, "listing", listingID)
	if err != nil {
		return nil, err
	}
	sortApplications(apps)

	tenants := []*types.Tenant{}
	for _, a := range apps {
		t, err := first[types.Tenant](txn, tableTenants, "id", a.TenantID)
		if err != nil {
			return nil, err
		}

		if t != nil {
			tenants = append(tenants, cloneTenant(t))
		}
	}

	return tenants, nil
}

func (s *Store) ListAppliedListings(ctx context.Context, tenantID string) ([]*types.Listing, error) {
	txn := s.read(ctx)

	apps, err := all[applicationRecord](txn, tableApplications, "tenant", tenantID)
	if err != nil {
		return nil, err
	}
	sortApplications(apps)

	listings := []*types.Listing{}
	for _, a := range apps {
		l, err := first[types.Listing](txn, tableListings, "id", a.ListingID)
		if err != nil {
			return nil, err
		}

		if l != nil {
			listings = append(listings, cloneListing(l))
		}
	}

	return listings, nil
}

func (s *Store) DeleteApplicationsByListing(ctx context.Context, listingID string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		if _, err := txn.DeleteAll(tableApplications, "listing", listingID); err != nil {
			return fmt.Errorf("failed to delete applications: %w", err)
		}
		return nil
	})
}

func (s *Store) DeleteApplicationsByTenant(ctx context.Context, tenantID string) error {
	return s.write(ctx, func(txn *memdb.Txn) error {
		if _, err := txn.DeleteAll(tableApplications, "tenant", tenantID); err != nil {
			return fmt.Errorf("failed to delete applications: %w", err)
		}
		return nil
	})
}
