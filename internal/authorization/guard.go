// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/rental-service/internal/types"
)

// Decision is the outcome of a guard check, Reason is set only on denial
type Decision struct {
	Allowed bool
	Reason  error
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason error) Decision {
	return Decision{Reason: reason}
}

// Err returns nil when allowed and the typed denial otherwise
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == nil {
		return types.ErrForbidden
	}
	return d.Reason
}

// CanModify decides whether actor may change listing, owner is the listing's
// current owner and may be nil
func CanModify(listing *types.Listing, owner *types.Owner, actor *types.User) Decision {
	if actor == nil {
		return Deny(types.NewError(types.ErrUnauthorized, "authentication required"))
	}

	if actor.IsAdmin() {
		return Allow()
	}

	if !actor.HasRole(types.RoleOwner) {
		return Deny(types.NewError(types.ErrForbidden, "user %s is not an owner", actor.ID))
	}

	if listing == nil || owner == nil || listing.OwnerID != owner.ID || owner.UserID != actor.ID {
		return Deny(types.NewError(types.ErrForbidden, "user %s does not own this listing", actor.ID))
	}

	return Allow()
}

func RequireAdmin(actor *types.User) Decision {
	if actor == nil {
		return Deny(types.NewError(types.ErrUnauthorized, "authentication required"))
	}
	if !actor.IsAdmin() {
		return Deny(types.NewError(types.ErrForbidden, "admin role required"))
	}
	return Allow()
}

// RequireSelfOrAdmin allows actions on userID by that user or by an admin
func RequireSelfOrAdmin(actor *types.User, userID string) Decision {
	if actor == nil {
		return Deny(types.NewError(types.ErrUnauthorized, "authentication required"))
	}
	if actor.ID == userID || actor.IsAdmin() {
		return Allow()
	}
	return Deny(types.NewError(types.ErrForbidden, "user %s cannot act on user %s", actor.ID, userID))
}
