// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewSecurityLogger(zap.New(core))

	s.SystemStartup()
	s.AuthzFailure("user-1", "delete_listing", "listing:1")
	s.AdminAction("admin-1", "approve_listing", "listing:2")
	s.SystemShutdown()

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	if entries[1].ContextMap()["resource"] != "listing:1" {
		t.Errorf("expected resource field, got %v", entries[1].ContextMap())
	}

	for _, e := range entries {
		if e.ContextMap()["type"] != securityLogType {
			t.Errorf("expected security type on %q", e.Message)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Infof("hello %s", "world")
	l.Security().SystemStartup()

	var _ LoggerInterface = l
}
