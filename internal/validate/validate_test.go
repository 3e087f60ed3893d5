// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package validate

import (
	"strings"
	"testing"
)

func TestStringRule_Check(t *testing.T) {
	titleRule := StringRule{Field: "title", Min: 1, Max: 200}

	tests := []struct {
		name    string
		rule    StringRule
		value   string
		wantNil bool
	}{
		{"valid title", titleRule, "Mezunlar Buluşması", true},
		{"empty required", titleRule, "", false},
		{"at max length", titleRule, strings.Repeat("a", 200), true},
		{"over max length", titleRule, strings.Repeat("a", 201), false},
		{"turkish chars counted as runes", titleRule, strings.Repeat("ş", 200), true},
		{"min only", StringRule{Field: "password", Min: 6}, "12345", false},
		{"min only ok", StringRule{Field: "password", Min: 6}, "123456", true},
		{"unbounded max", StringRule{Field: "content", Min: 1}, strings.Repeat("x", 100000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Check(tt.value)
			if (got == nil) != tt.wantNil {
				t.Errorf("Check(%q) = %v, wantNil = %v", tt.value, got, tt.wantNil)
			}
			if got != nil && got.Field != tt.rule.Field {
				t.Errorf("violation Field = %q, want %q", got.Field, tt.rule.Field)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value   string
		wantNil bool
	}{
		{"admin@tumed.org", true},
		{"user.name+tag@example.co", true},
		{"", false},
		{"not-an-email", false},
		{"missing@domain", false},
		{"Spaced Name <a@b.org>", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := Email("email", tt.value)
			if (got == nil) != tt.wantNil {
				t.Errorf("Email(%q) = %v, wantNil = %v", tt.value, got, tt.wantNil)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	title := StringRule{Field: "title", Min: 1, Max: 200}
	category := StringRule{Field: "category", Min: 1}

	v := Collect(title.Check(""), category.Check(""), title.Check("ok"))
	if len(v) != 2 {
		t.Fatalf("len(v) = %d, want 2", len(v))
	}
	fields := v.Fields()
	if fields[0] != "title" || fields[1] != "category" {
		t.Errorf("Fields() = %v", fields)
	}
	if v.OrNil() == nil {
		t.Error("OrNil() should be non-nil for violations")
	}

	if err := Collect(title.Check("ok")).OrNil(); err != nil {
		t.Errorf("OrNil() = %v, want nil", err)
	}
}
