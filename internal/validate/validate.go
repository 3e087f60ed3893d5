// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package validate evaluates per-field constraint rules and reports
// every violated field, so API clients can highlight all invalid form
// fields in one round trip.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Violation describes a single failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the full set of failed constraints for one request.
type Violations []Violation

// Error implements the error interface so a Violations value can travel
// through normal error returns.
func (v Violations) Error() string {
	fields := make([]string, len(v))
	for i, violation := range v {
		fields[i] = violation.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Fields returns the names of all violated fields, in rule order.
func (v Violations) Fields() []string {
	fields := make([]string, len(v))
	for i, violation := range v {
		fields[i] = violation.Field
	}
	return fields
}

// OrNil returns the violations as an error, or nil if there are none.
// It avoids the non-nil interface wrapping a nil slice trap.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// StringRule constrains a string field's length, counted in runes.
// Max of 0 means unbounded.
type StringRule struct {
	Field string
	Min   int
	Max   int
}

// Check evaluates the rule against a value. Returns nil when the value
// satisfies the rule.
func (r StringRule) Check(value string) *Violation {
	n := utf8.RuneCountInString(value)
	if n < r.Min {
		if r.Min == 1 {
			return &Violation{Field: r.Field, Message: fmt.Sprintf("%s is required", r.Field)}
		}
		return &Violation{Field: r.Field, Message: fmt.Sprintf("%s must be at least %d characters", r.Field, r.Min)}
	}
	if r.Max > 0 && n > r.Max {
		return &Violation{Field: r.Field, Message: fmt.Sprintf("%s must be at most %d characters", r.Field, r.Max)}
	}
	return nil
}

// Email checks that value is a syntactically valid email address.
// The domain must contain a dot; RFC-valid bare hostnames are rejected
// since they are always typos in practice.
func Email(field, value string) *Violation {
	violation := &Violation{Field: field, Message: fmt.Sprintf("%s must be a valid email address", field)}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return violation
	}
	at := strings.LastIndex(value, "@")
	if !strings.Contains(value[at+1:], ".") {
		return violation
	}
	return nil
}

// Collect appends non-nil violations into a single Violations value.
func Collect(violations ...*Violation) Violations {
	var out Violations
	for _, v := range violations {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
