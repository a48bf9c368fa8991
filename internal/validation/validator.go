// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/rental-service/internal/types"
)

// international numbers, digits with spaces, dots, dashes and parentheses
var phonePattern = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

type Validator struct {
	v *validator.Validate
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Struct validates s and folds every failing field into a single validation error
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate %T: %w", s, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return types.NewError(types.ErrValidation, "%s", strings.Join(msgs, "; "))
}

// Var validates a single value against a tag expression
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return types.NewError(types.ErrValidation, "%s: %s", field, rule(verrs[0]))
	}

	return fmt.Errorf("failed to validate %s: %w", field, err)
}

func describe(fe validator.FieldError) string {
	ns := fe.Namespace()
	// drop the struct name, keep the json path
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}

	return ns + ": " + rule(fe)
}

func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "phone":
		return "must be a valid phone number"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "url":
		return "must be a valid URL"
	}

	return "failed on " + fe.Tag()
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails on empty tags or nil functions
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}
