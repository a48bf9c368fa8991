// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is a rendered HTML email
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

type MailerInterface interface {
	Send(context.Context, Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

var _ MailerInterface = (*Mailer)(nil)

// Mailer delivers messages through an SMTP relay, STARTTLS is negotiated by
// net/smtp whenever the server offers it
type Mailer struct {
	cfg  Config
	send sendFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	_, span := m.tracer.Start(ctx, "mail.Mailer.Send")
	defer span.End()

	if msg.To == "" {
		return fmt.Errorf("mail recipient is required")
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.From, []string{msg.To}, m.compose(msg)); err != nil {
		m.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, 0)
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}

	m.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, 1)
	m.logger.Debugf("mail %q sent to %s", msg.Subject, msg.To)
	return nil
}

func (m *Mailer) compose(msg Message) []byte {
	var b bytes.Buffer

	b.WriteString("From: " + m.cfg.From + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	if msg.ReplyTo != "" {
		b.WriteString("Reply-To: " + msg.ReplyTo + "\r\n")
	}
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTMLBody)

	return b.Bytes()
}

func NewMailer(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	m := new(Mailer)

	m.cfg = cfg
	m.send = smtp.SendMail
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
