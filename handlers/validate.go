// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tag rules on the
// models request types are the single source of boundary validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage flattens validator errors into a single
// caller-facing message like "title is required; mediaUrl must be a valid url".
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "max":
			parts = append(parts, field+" exceeds maximum length of "+fe.Param())
		case "min":
			parts = append(parts, field+" needs at least "+fe.Param()+" entries")
		case "gte":
			parts = append(parts, field+" must be at least "+fe.Param())
		case "lte":
			parts = append(parts, field+" must be at most "+fe.Param())
		case "url":
			parts = append(parts, field+" must be a valid url")
		case "oneof":
			parts = append(parts, field+" must be one of: "+fe.Param())
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}

// fieldName lowercases the leading rune so messages use the JSON field
// spelling rather than the Go struct field
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
