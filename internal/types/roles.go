// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleTenant Role = "TENANT"
	RoleOwner  Role = "OWNER"
)

func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleTenant, RoleOwner}
}

// ParseRole accepts role names in any case
func ParseRole(name string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(name)))

	switch r {
	case RoleUser, RoleAdmin, RoleTenant, RoleOwner:
		return r, nil
	}

	return "", NewError(ErrValidation, "unknown role %q", name)
}

func (r Role) String() string {
	return string(r)
}
