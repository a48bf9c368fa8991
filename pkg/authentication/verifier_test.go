// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"slices"
	"testing"

	"github.com/canonical/rental-service/internal/types"
)

func TestAccessPolicy_Admits(t *testing.T) {
	testCases := []struct {
		name     string
		policy   AccessPolicy
		claims   tokenClaims
		expected bool
	}{
		{
			name:     "marketplace user",
			claims:   tokenClaims{Subject: "user-1", Roles: []string{"USER", "OWNER"}},
			expected: true,
		},
		{
			name:     "token without roles and no policy",
			claims:   tokenClaims{Subject: "user-1"},
			expected: false,
		},
		{
			name:     "allowed machine subject",
			policy:   AccessPolicy{AllowedSubjects: []string{"scraper"}},
			claims:   tokenClaims{Subject: "scraper"},
			expected: true,
		},
		{
			name:     "scope string",
			policy:   AccessPolicy{RequiredScope: "rental:import"},
			claims:   tokenClaims{Subject: "scraper", Scope: "openid rental:import"},
			expected: true,
		},
		{
			name:     "scope list",
			policy:   AccessPolicy{RequiredScope: "rental:import"},
			claims:   tokenClaims{Subject: "scraper", Scopes: []string{"rental:import"}},
			expected: true,
		},
		{
			name:     "wrong scope",
			policy:   AccessPolicy{RequiredScope: "rental:import"},
			claims:   tokenClaims{Subject: "scraper", Scope: "openid"},
			expected: false,
		},
		{
			name:     "roles without USER",
			claims:   tokenClaims{Subject: "user-1", Roles: []string{"GUEST"}},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.admits(tc.claims); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestTokenClaims_RolesSkipsUnknownNames(t *testing.T) {
	roles := tokenClaims{Roles: []string{"USER", "LANDLORD", "ADMIN"}}.roles()

	if !slices.Equal(roles, []types.Role{types.RoleUser, types.RoleAdmin}) {
		t.Errorf("unexpected roles %v", roles)
	}
}
