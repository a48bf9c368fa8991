// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	securityLogType  = "security"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system started", zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(actor, action, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityEventKey, "authz_fail:"+actor+","+action),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String(securityEventKey, "admin_action:"+actor+","+action),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.With(zap.String("type", securityLogType))}
}
