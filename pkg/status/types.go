// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

type Status struct {
	Status       string          `json:"status"`
	BuildInfo    *BuildInfo      `json:"buildInfo,omitempty"`
	Dependencies map[string]bool `json:"dependencies,omitempty"`
}

type BuildInfo struct {
	Version   string `json:"version"`
	CommitSHA string `json:"commitSHA,omitempty"`
	GoVersion string `json:"goVersion"`
}
