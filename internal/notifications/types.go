// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

type Template string

const (
	TemplateListingCreated      Template = "ownerCreated"
	TemplateListingApproved     Template = "adminApproved"
	TemplateListingDeleted      Template = "listing-deleted"
	TemplateApplicationApproved Template = "tenantApproval"
	TemplateAccountDeleted      Template = "account-deleted"
	TemplateWelcome             Template = "welcome"
	TemplateDetailsChanged      Template = "details-changed"
	TemplateContactUs           Template = "contact-us"
)

// Notification is the queued unit of work, Data feeds the template
type Notification struct {
	To       string            `json:"to"`
	ReplyTo  string            `json:"reply_to,omitempty"`
	Template Template          `json:"template"`
	Data     map[string]string `json:"data,omitempty"`
}
