// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/canonical/rental-service/internal/mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var subjects = map[Template]string{
	TemplateListingCreated:      "Your listing has been submitted for approval",
	TemplateListingApproved:     "Your listing has been approved by the administrator",
	TemplateListingDeleted:      "Your Listing Has Been Deleted",
	TemplateApplicationApproved: "Your listing application has been approved",
	TemplateAccountDeleted:      "Your Account Has Been Deleted",
	TemplateWelcome:             "Welcome to Our Platform!",
	TemplateDetailsChanged:      "Your account details have been updated",
	TemplateContactUs:           "Contact Form: ",
}

// Renderer turns notifications into mail messages
type Renderer struct {
	templates *template.Template
}

func (r *Renderer) Render(n Notification) (mail.Message, error) {
	subject, ok := subjects[n.Template]
	if !ok {
		return mail.Message{}, fmt.Errorf("unknown notification template %q", n.Template)
	}

	if n.Template == TemplateContactUs {
		subject += n.Data["subject"]
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, string(n.Template)+".html", n.Data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render %s: %w", n.Template, err)
	}

	return mail.Message{
		To:       n.To,
		ReplyTo:  n.ReplyTo,
		Subject:  subject,
		HTMLBody: body.String(),
	}, nil
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Option("missingkey=zero").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	r := new(Renderer)
	r.templates = t

	return r, nil
}
