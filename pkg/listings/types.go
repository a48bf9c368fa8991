// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package listings

import (
	"strings"

	"github.com/canonical/rental-service/internal/types"
)

// ListingRequest carries the fields an owner controls, lifecycle fields are
// always set by the catalog
type ListingRequest struct {
	Title          string   `json:"title" validate:"required,notblank,max=150"`
	Subtitle       string   `json:"subtitle" validate:"max=250"`
	Description    string   `json:"description" validate:"required,notblank,max=5000"`
	Address        string   `json:"address" validate:"required,notblank,max=255"`
	Price          int      `json:"price" validate:"gte=0,lte=20000"`
	PricePerArea   int      `json:"price_per_area" validate:"gte=0,lte=200"`
	Size           int      `json:"size" validate:"gte=5,lte=1000"`
	Rooms          int      `json:"rooms" validate:"gte=1,lte=20"`
	PropertyType   string   `json:"property_type" validate:"required,notblank,max=50"`
	RentalDuration string   `json:"rental_duration" validate:"required,notblank,max=50"`
	Images         []string `json:"images" validate:"max=30,dive,max=500"`
	OwnerID        string   `json:"-"`
}

func (r ListingRequest) listing() *types.Listing {
	images := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	return &types.Listing{
		Title:          strings.TrimSpace(r.Title),
		Subtitle:       strings.TrimSpace(r.Subtitle),
		Description:    strings.TrimSpace(r.Description),
		Address:        strings.TrimSpace(r.Address),
		Price:          r.Price,
		PricePerArea:   r.PricePerArea,
		Size:           r.Size,
		Rooms:          r.Rooms,
		PropertyType:   strings.TrimSpace(r.PropertyType),
		RentalDuration: strings.TrimSpace(r.RentalDuration),
		Images:         images,
		OwnerID:        r.OwnerID,
		Status:         types.ListingPending,
	}
}
