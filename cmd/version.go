// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/canonical/rental-service/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rental service version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("rental-service %s\n", version.Version)

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		cmd.Printf("go: %s\n", info.GoVersion)
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" || s.Key == "vcs.time" {
				cmd.Printf("%s: %s\n", s.Key, s.Value)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
