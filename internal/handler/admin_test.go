// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tumed/tumed-go/internal/model"
)

func TestAdminPages_RequireAdminSession(t *testing.T) {
	env := newTestEnv(t)

	member := env.createUser(t, "uye@tumed.org", "sifre123", model.RoleMember)
	memberCookie := env.cookieFor(t, member)

	tests := []struct {
		name   string
		path   string
		cookie *http.Cookie
	}{
		{"dashboard without session", "/admin/", nil},
		{"dashboard with member session", "/admin/", memberCookie},
		{"faaliyetler without session", "/admin/faaliyetler", nil},
		{"haberler with member session", "/admin/haberler", memberCookie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Errorf("Location = %q, want /login", loc)
			}
		})
	}
}

func TestAdminDashboard_RendersStats(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.adminCookie(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "admin") {
		t.Errorf("body does not look like the admin layout")
	}
}
