// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0AuthModel = `model
  schema 1.1

type user

type platform
  relations
    define admin: [user]

type listing
  relations
    define platform: [platform]
    define owner: [user]
    define tenant: [user]
    define can_edit: owner or admin from platform
    define can_delete: owner or admin from platform
    define can_view: owner or tenant or admin from platform
`

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel returns the model for the provider's API version, it panics when
// the embedded DSL does not compile
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	raw, err := transformer.TransformDSLToJSON(a.dsl())
	if err != nil {
		panic(err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(err)
	}

	return model
}

func (a *AuthorizationModelProvider) dsl() string {
	switch a.apiVersion {
	default:
		return v0AuthModel
	}
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.apiVersion = apiVersion

	return a
}
