// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users and their roles",
}

var grantRoleCmd = &cobra.Command{
	Use:   "grant-role [user-id] [role]",
	Short: "Grant OWNER, TENANT or ADMIN to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newAPIClient().do(
			cmd.Context(),
			http.MethodPost,
			"/users/"+url.PathEscape(args[0])+"/roles",
			map[string]string{"role": args[1]},
		)
		if err != nil {
			return err
		}

		return printResponse(cmd.OutOrStdout(), resp)
	},
}

func init() {
	usersCmd.AddCommand(
		apiCommand("me", "Show the calling user", 0, http.MethodGet, func([]string) string {
			return "/me"
		}),
		apiCommand("list", "List users", 0, http.MethodGet, func([]string) string {
			return "/users"
		}),
		apiCommand("get [id]", "Show a user", 1, http.MethodGet, func(a []string) string {
			return "/users/" + a[0]
		}),
		apiCommand("delete [id]", "Delete a user and everything they own", 1, http.MethodDelete, func(a []string) string {
			return "/users/" + a[0]
		}),
		apiCommand("revoke-role [user-id] [role]", "Revoke a role from a user", 2, http.MethodDelete, func(a []string) string {
			return "/users/" + a[0] + "/roles/" + a[1]
		}),
		grantRoleCmd,
	)

	ownersCmd.AddCommand(
		apiCommand("list", "List owners", 0, http.MethodGet, func([]string) string {
			return "/owners"
		}),
		apiCommand("listings [id]", "List the visible listings of an owner", 1, http.MethodGet, func(a []string) string {
			return "/owners/" + a[0] + "/listings"
		}),
		apiCommand("deactivate [id]", "Deactivate an owner and disable their listings", 1, http.MethodPost, func(a []string) string {
			return "/owners/" + a[0] + "/deactivate"
		}),
	)

	rootCmd.AddCommand(usersCmd, ownersCmd)
}

var ownersCmd = &cobra.Command{
	Use:   "owners",
	Short: "Inspect and deactivate owners",
}
