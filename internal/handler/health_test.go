// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/testutil"
	"github.com/tumed/tumed-go/internal/token"
	"github.com/tumed/tumed-go/internal/version"
)

func TestHealth_Public(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, &version.Info{Version: "v1.0.0-test"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want ok status", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "v1.0.0-test") {
		t.Error("version must not be exposed to anonymous callers")
	}
}

func TestHealth_AdminSeesVersion(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, &version.Info{Version: "v1.0.0-test"})

	claims := &token.Claims{Role: "admin"}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))

	w := httptest.NewRecorder()
	h.Health(w, req)

	if !strings.Contains(w.Body.String(), "v1.0.0-test") {
		t.Errorf("body = %q, want version for admin", w.Body.String())
	}
}
