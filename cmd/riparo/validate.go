// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/CremaCrem/RIPARO-sub000/pkg/api"
)

var validate = newValidator()

// newValidator builds a validator that reports fields under the backend's
// wire names (json tag when present, snake_case of the Go name otherwise)
// so local and server-side field errors print identically.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
		return snakeCase(field.Name)
	})
	return v
}

// snakeCase converts a Go field name to its wire form: FirstName becomes
// first_name, ReportID becomes report_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// checkInput validates a tagged input struct before any bytes leave the
// machine, returning the same field-level error shape the backend uses so
// commands print both identically.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	fields := make(map[string]string, len(invalid))
	for _, fieldErr := range invalid {
		fields[fieldErr.Field()] = describeRule(fieldErr)
	}
	return &api.Error{
		Kind:    api.KindFields,
		Message: "some fields need attention",
		Fields:  fields,
	}
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "e164":
		return "must be an international phone number, e.g. +639171234567"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "gte", "lte":
		return "out of range"
	default:
		return "invalid"
	}
}
