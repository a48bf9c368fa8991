// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contact

// Message is what a visitor submits through the contact form
type Message struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,notblank,max=150"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

func (m Message) data() map[string]string {
	return map[string]string{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Message,
	}
}
