// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"time"
)

type Type string

const (
	ListingSubmitted    Type = "listing.submitted"
	ListingApproved     Type = "listing.approved"
	ListingRejected     Type = "listing.rejected"
	ListingDisabled     Type = "listing.disabled"
	ListingDeleted      Type = "listing.deleted"
	ListingRented       Type = "listing.rented"
	ListingVacated      Type = "listing.vacated"
	OwnerAssigned       Type = "listing.owner_assigned"
	OwnerUnassigned     Type = "listing.owner_unassigned"
	OwnerDeactivated    Type = "owner.deactivated"
	ApplicationCreated  Type = "application.created"
	ApplicationApproved Type = "application.approved"
	UserRegistered      Type = "user.registered"
	UserDeleted         Type = "user.deleted"
	RoleGranted         Type = "user.role_granted"
	RoleRevoked         Type = "user.role_revoked"
	ExternalImported    Type = "external.imported"
	ExternalCleaned     Type = "external.cleaned"
)

// Event is a domain fact published after the transaction that produced it
// committed, EntityID is used as the partition key
type Event struct {
	Type       Type              `json:"type"`
	EntityID   string            `json:"entity_id"`
	ActorID    string            `json:"actor_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func New(t Type, entityID, actorID string, attrs map[string]string) Event {
	return Event{
		Type:       t,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
		Attributes: attrs,
	}
}
