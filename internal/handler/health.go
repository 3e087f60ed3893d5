// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/version"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db        *sql.DB
	version   *version.Info
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *sql.DB, versionInfo *version.Info) *HealthHandler {
	return &HealthHandler{db: db, version: versionInfo, startTime: time.Now()}
}

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

// Health handles GET /health. Unauthenticated callers get a minimal
// status; admins also see version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.PingContext(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	resp := healthStatus{Status: status}
	if middleware.IsAdmin(r) && h.version != nil {
		resp.Version = h.version.Version
		resp.Uptime = time.Since(h.startTime).Round(time.Second).String()
	}
	writeJSON(w, code, resp)
}
