// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION    = "owner"
	TENANT_RELATION   = "tenant"
	PLATFORM_RELATION = "platform"
	ADMIN_RELATION    = "admin"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_EDIT_PERMISSION   = "can_edit"
	CAN_DELETE_PERMISSION = "can_delete"

	// GlobalPlatform is the single platform object every listing hangs off
	GlobalPlatform = "global"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func ListingTuple(listingId string) string {
	return "listing:" + listingId
}

func PlatformTuple(platformId string) string {
	return "platform:" + platformId
}
