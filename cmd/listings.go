// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

// apiCommand builds a subcommand issuing a single API call, path receives
// the positional arguments already escaped
func apiCommand(use, short string, args int, method string, path func(args []string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(args),
		RunE: func(cmd *cobra.Command, args []string) error {
			escaped := make([]string, len(args))
			for i, a := range args {
				escaped[i] = url.PathEscape(a)
			}

			resp, err := newAPIClient().do(cmd.Context(), method, path(escaped), nil)
			if err != nil {
				return err
			}

			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Browse and moderate listings",
}

var listListingsCmd = &cobra.Command{
	Use:   "list",
	Short: "List listings, only approved ones unless the caller is an admin filtering by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		for _, name := range []string{"status", "owner_id", "external"} {
			if v, _ := cmd.Flags().GetString(name); v != "" {
				q.Set(name, v)
			}
		}

		path := "/listings"
		if len(q) > 0 {
			path += "?" + q.Encode()
		}

		resp, err := newAPIClient().do(cmd.Context(), http.MethodGet, path, nil)
		if err != nil {
			return err
		}

		return printResponse(cmd.OutOrStdout(), resp)
	},
}

var searchListingsCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Search approved listings by title and price range",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if len(args) == 1 {
			q.Set("title", args[0])
		}
		for _, name := range []string{"min_price", "max_price"} {
			if v, _ := cmd.Flags().GetInt(name); v > 0 {
				q.Set(name, fmt.Sprint(v))
			}
		}

		resp, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/listings/search?"+q.Encode(), nil)
		if err != nil {
			return err
		}

		return printResponse(cmd.OutOrStdout(), resp)
	},
}

func init() {
	listListingsCmd.Flags().String("status", "", "Filter by status (PENDING, APPROVED, REJECTED, DISABLED, RENTED)")
	listListingsCmd.Flags().String("owner_id", "", "Filter by owner")
	listListingsCmd.Flags().String("external", "", "Filter by origin (true or false)")

	searchListingsCmd.Flags().Int("min_price", 0, "Minimum monthly price")
	searchListingsCmd.Flags().Int("max_price", 0, "Maximum monthly price")

	listingsCmd.AddCommand(
		listListingsCmd,
		searchListingsCmd,
		apiCommand("get [id]", "Show a listing", 1, http.MethodGet, func(a []string) string {
			return "/listings/" + a[0]
		}),
		apiCommand("approve [id]", "Approve a pending listing", 1, http.MethodPost, func(a []string) string {
			return "/listings/" + a[0] + "/approve"
		}),
		apiCommand("reject [id]", "Reject a pending listing", 1, http.MethodPost, func(a []string) string {
			return "/listings/" + a[0] + "/reject"
		}),
		apiCommand("disable [id]", "Disable a listing", 1, http.MethodPost, func(a []string) string {
			return "/listings/" + a[0] + "/disable"
		}),
		apiCommand("delete [id]", "Delete a listing that is not rented", 1, http.MethodDelete, func(a []string) string {
			return "/listings/" + a[0]
		}),
		apiCommand("applications [id]", "Show who applied for a listing", 1, http.MethodGet, func(a []string) string {
			return "/listings/" + a[0] + "/applications"
		}),
		apiCommand("approve-application [id] [tenant-id]", "Rent a listing to one of its applicants", 2, http.MethodPost, func(a []string) string {
			return "/listings/" + a[0] + "/applications/" + a[1] + "/approve"
		}),
		apiCommand("vacate [id] [tenant-id]", "Remove the tenant renting a listing", 2, http.MethodDelete, func(a []string) string {
			return "/listings/" + a[0] + "/tenant/" + a[1]
		}),
	)

	rootCmd.AddCommand(listingsCmd)
}
