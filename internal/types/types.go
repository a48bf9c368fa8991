// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
	"time"
)

type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	Roles        []Role     `json:"roles"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// HasRole is nil safe, a missing user holds no role
func (u *User) HasRole(r Role) bool {
	if u == nil {
		return false
	}

	return slices.Contains(u.Roles, r)
}

// GrantRole adds the role once and reports whether the set changed
func (u *User) GrantRole(r Role) bool {
	if u.HasRole(r) {
		return false
	}

	u.Roles = append(u.Roles, r)
	return true
}

func (u *User) RevokeRole(r Role) bool {
	i := slices.Index(u.Roles, r)
	if i < 0 {
		return false
	}

	u.Roles = slices.Delete(u.Roles, i, i+1)
	return true
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

type Owner struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	Phone       string    `db:"phone" json:"phone"`
	SystemOwner bool      `db:"system_owner" json:"system_owner"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type RentalStatus string

const (
	RentalApplied  RentalStatus = "APPLIED"
	RentalRenting  RentalStatus = "RENTING"
	RentalCanceled RentalStatus = "CANCELED"
)

type Tenant struct {
	ID           string       `db:"id" json:"id"`
	UserID       string       `db:"user_id" json:"user_id"`
	FirstName    string       `db:"first_name" json:"first_name"`
	LastName     string       `db:"last_name" json:"last_name"`
	Phone        string       `db:"phone" json:"phone"`
	RentalStatus RentalStatus `db:"rental_status" json:"rental_status"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// Profile holds the personal details shared by owners and tenants
type Profile struct {
	FirstName string `json:"first_name" validate:"required,max=20"`
	LastName  string `json:"last_name" validate:"required,max=20"`
	Phone     string `json:"phone" validate:"required,phone"`
}

// Application links a tenant to a listing they asked to rent
type Application struct {
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	ListingID string    `db:"listing_id" json:"listing_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ListingFilter struct {
	External      *bool
	Status        ListingStatus
	OwnerID       string
	TenantID      string
	Title         string
	MinPrice      *int
	MaxPrice      *int
	ScrapedBefore *time.Time

	// Page and PageSize paginate only when PageSize is positive
	Page     int64
	PageSize int64
}
