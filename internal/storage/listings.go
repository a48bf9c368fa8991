// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rental-service/internal/db"
	"github.com/canonical/rental-service/internal/types"
)

var listingColumns = []string{
	"id", "title", "subtitle", "description", "address", "price", "price_per_area", "size", "rooms",
	"property_type", "rental_duration", "status", "external", "source_url", "date_scraped",
	"owner_id", "tenant_id", "created_at",
}

func qualified(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

func scanListing(row sq.RowScanner) (*types.Listing, error) {
	var (
		l           types.Listing
		status      string
		dateScraped sql.NullTime
	)
	var sourceURL, ownerID, tenantID sql.NullString

	err := row.Scan(
		&l.ID, &l.Title, &l.Subtitle, &l.Description, &l.Address, &l.Price, &l.PricePerArea, &l.Size, &l.Rooms,
		&l.PropertyType, &l.RentalDuration, &status, &l.External, &sourceURL, &dateScraped,
		&ownerID, &tenantID, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Status = types.ListingStatus(status)
	l.SourceURL = sourceURL.String
	l.DateScraped = timePtr(dateScraped)
	l.OwnerID = ownerID.String
	l.TenantID = tenantID.String
	l.Images = []string{}

	return &l, nil
}

func listingValues(l *types.Listing) map[string]any {
	return map[string]any{
		"title":           l.Title,
		"subtitle":        l.Subtitle,
		"description":     l.Description,
		"address":         l.Address,
		"price":           l.Price,
		"price_per_area":  l.PricePerArea,
		"size":            l.Size,
		"rooms":           l.Rooms,
		"property_type":   l.PropertyType,
		"rental_duration": l.RentalDuration,
		"status":          string(l.Status),
		"external":        l.External,
		"source_url":      nullable(l.SourceURL),
		"date_scraped":    nullableTime(l.DateScraped),
		"owner_id":        nullable(l.OwnerID),
		"tenant_id":       nullable(l.TenantID),
	}
}

// CreateListing inserts the listing with its images
func (s *Storage) CreateListing(ctx context.Context, l *types.Listing) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateListing")
	defer span.End()

	id, err := newID("listing")
	if err != nil {
		return nil, err
	}

	values := listingValues(l)
	values["id"] = id

	var created *types.Listing
	err = s.WithTx(ctx, func(ctx context.Context) error {
		row := s.db.Statement(ctx).
			Insert("listings").
			SetMap(values).
			Suffix("RETURNING " + columnList(listingColumns)).
			QueryRowContext(ctx)

		var err error
		if created, err = scanListing(row); err != nil {
			return translate(err, "insert listing")
		}

		if err := s.writeImages(ctx, created.ID, l.Images); err != nil {
			return err
		}
		created.Images = append(created.Images, l.Images...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Storage) GetListingByID(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetListingByID")
	defer span.End()

	return s.getListing(ctx, sq.Eq{"id": id}, false)
}

// LockListing reads the listing with a row lock held until the surrounding
// transaction ends
func (s *Storage) LockListing(ctx context.Context, id string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockListing")
	defer span.End()

	return s.getListing(ctx, sq.Eq{"id": id}, true)
}

func (s *Storage) GetListingBySourceURL(ctx context.Context, sourceURL string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetListingBySourceURL")
	defer span.End()

	return s.getListing(ctx, sq.Eq{"source_url": sourceURL}, false)
}

func (s *Storage) GetListingByTenantID(ctx context.Context, tenantID string) (*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetListingByTenantID")
	defer span.End()

	return s.getListing(ctx, sq.Eq{"tenant_id": tenantID}, false)
}

func (s *Storage) getListing(ctx context.Context, pred any, lock bool) (*types.Listing, error) {
	query := s.db.Statement(ctx).
		Select(listingColumns...).
		From("listings").
		Where(pred)

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	l, err := scanListing(query.QueryRowContext(ctx))
	if err != nil {
		return nil, translate(err, "get listing")
	}

	if err := s.loadImages(ctx, []*types.Listing{l}); err != nil {
		return nil, err
	}

	return l, nil
}

// escapeLike neutralises the LIKE wildcards of a user supplied search term
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// ListListings returns the listings matching every set field of the filter,
// newest first
func (s *Storage) ListListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListListings")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(listingColumns...).
		From("listings").
		OrderBy("created_at DESC", "id")

	if filter.External != nil {
		query = query.Where(sq.Eq{"external": *filter.External})
	}

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	if filter.OwnerID != "" {
		query = query.Where(sq.Eq{"owner_id": filter.OwnerID})
	}

	if filter.TenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": filter.TenantID})
	}

	if title := strings.TrimSpace(filter.Title); title != "" {
		query = query.Where(sq.ILike{"title": "%" + escapeLike(title) + "%"})
	}

	if filter.MinPrice != nil {
		query = query.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}

	if filter.MaxPrice != nil {
		query = query.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	if filter.ScrapedBefore != nil {
		query = query.Where(sq.Lt{"date_scraped": *filter.ScrapedBefore})
	}

	if filter.PageSize > 0 {
		size := db.PageSize(filter.PageSize)
		query = query.Limit(size).Offset(db.Offset(filter.Page, size))
	}

	return s.queryListings(ctx, query)
}

func (s *Storage) queryListings(ctx context.Context, query sq.SelectBuilder) ([]*types.Listing, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	listings := []*types.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if err := s.loadImages(ctx, listings); err != nil {
		return nil, err
	}

	return listings, nil
}

func (s *Storage) loadImages(ctx context.Context, listings []*types.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ids := make([]string, 0, len(listings))
	byID := make(map[string]*types.Listing, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
		byID[l.ID] = l
	}

	rows, err := s.db.Statement(ctx).
		Select("listing_id", "url").
		From("listing_images").
		Where(sq.Eq{"listing_id": ids}).
		OrderBy("listing_id", "position").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to load listing images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var listingID, url string
		if err := rows.Scan(&listingID, &url); err != nil {
			return fmt.Errorf("failed to scan listing image: %w", err)
		}

		if l, ok := byID[listingID]; ok {
			l.Images = append(l.Images, url)
		}
	}

	return rows.Err()
}

func (s *Storage) writeImages(ctx context.Context, listingID string, images []string) error {
	if len(images) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("listing_images").
		Columns("listing_id", "position", "url")

	for i, url := range images {
		insert = insert.Values(listingID, i, url)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		return translate(err, "insert listing images")
	}

	return nil
}

// UpdateListing overwrites every mutable column and replaces the image list
func (s *Storage) UpdateListing(ctx context.Context, l *types.Listing) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateListing")
	defer span.End()

	return s.WithTx(ctx, func(ctx context.Context) error {
		res, err := s.db.Statement(ctx).
			Update("listings").
			SetMap(listingValues(l)).
			Where(sq.Eq{"id": l.ID}).
			ExecContext(ctx)
		if err != nil {
			return translate(err, "update listing")
		}

		if err := checkAffected(res, "update listing"); err != nil {
			return err
		}

		if _, err := s.db.Statement(ctx).
			Delete("listing_images").
			Where(sq.Eq{"listing_id": l.ID}).
			ExecContext(ctx); err != nil {
			return translate(err, "delete listing images")
		}

		return s.writeImages(ctx, l.ID, l.Images)
	})
}

// DeleteListing removes the record, images and applications cascade
func (s *Storage) DeleteListing(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteListing")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("listings").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete listing")
	}

	return checkAffected(res, "delete listing")
}
