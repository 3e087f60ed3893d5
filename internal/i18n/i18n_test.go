// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		args []any
		want string
	}{
		{"turkish key", "tr", "nav.faaliyetler", nil, "Faaliyetler"},
		{"english key", "en", "nav.faaliyetler", nil, "Activities"},
		{"unknown language falls back to turkish", "de", "auth.login", nil, "Giriş Yap"},
		{"unknown key returns key", "tr", "no.such.key", nil, "no.such.key"},
		{"formatted", "en", "list.page", []any{2, 5}, "Page 2 of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := T(tt.lang, tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"tr", "tr"},
		{"tr-TR", "tr"},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"en-GB,en;q=0.8,tr;q=0.6", "en"},
		{"de-DE,de;q=0.9", "tr"},
		{"", "tr"},
		{"garbage;;;", "tr"},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			got := MatchLanguage(tt.accept)
			if got != tt.want {
				t.Errorf("MatchLanguage(%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("tr") || !IsSupported("en") {
		t.Error("expected tr and en to be supported")
	}
	if !IsSupported("TR") {
		t.Error("expected case-insensitive match for TR")
	}
	if IsSupported("de") {
		t.Error("did not expect de to be supported")
	}
}
