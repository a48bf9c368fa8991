// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/rental-service/internal/http/types"
	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
	"github.com/canonical/rental-service/internal/tracing"
	"github.com/canonical/rental-service/internal/version"
)

const pingTimeout = 2 * time.Second

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/version", a.version)
}

// alive answers 200 when every dependency responds, 503 otherwise
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	s := Status{Status: "ok", BuildInfo: buildInfo()}
	code := http.StatusOK

	if len(a.dependencies) > 0 {
		s.Dependencies = make(map[string]bool, len(a.dependencies))
	}

	for name, dep := range a.dependencies {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := dep.Ping(pctx)
		cancel()

		available := 1.0
		if err != nil {
			a.logger.Warnf("dependency %s unavailable: %v", name, err)
			available = 0
			s.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		s.Dependencies[name] = err == nil
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available)
	}

	httptypes.WriteJSON(w, code, s)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, buildInfo())
}

func buildInfo() *BuildInfo {
	info := &BuildInfo{Version: version.Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.CommitSHA = s.Value
		}
	}

	return info
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
