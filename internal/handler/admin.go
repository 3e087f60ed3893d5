// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tumed/tumed-go/internal/i18n"
	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/render"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
)

// recentEventCount bounds the dashboard event list.
const recentEventCount = 20

// AdminHandler renders the admin panel pages. All routes are behind the
// session and role middleware; each handler still verifies the role
// itself before touching data.
type AdminHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin page handler.
func NewAdminHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
		logger:   logger,
	}
}

// requirePageAdmin mirrors requireAdmin for HTML pages: non-admins are
// sent to the login page instead of receiving a JSON error.
func requirePageAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsAdmin(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return false
	}
	return true
}

type dashboardData struct {
	FaaliyetCount int64
	HaberCount    int64
	Events        []store.Event
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !requirePageAdmin(w, r) {
		return
	}

	faaliyetCount, err := h.queries.CountFaaliyetler(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	haberCount, err := h.queries.CountHaberler(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	events, err := h.queries.ListEvents(r.Context(), store.ListEventsParams{
		Limit:  recentEventCount,
		Offset: 0,
	})
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.renderPage(w, r, "admin/dashboard", i18n.T(requestLang(r), "nav.admin"), dashboardData{
		FaaliyetCount: faaliyetCount,
		HaberCount:    haberCount,
		Events:        events,
	})
}

// Faaliyetler handles GET /admin/faaliyetler.
func (h *AdminHandler) Faaliyetler(w http.ResponseWriter, r *http.Request) {
	if !requirePageAdmin(w, r) {
		return
	}

	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListFaaliyetler(r.Context(), page, limit)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.renderPage(w, r, "admin/faaliyetler", i18n.T(requestLang(r), "nav.faaliyetler"),
		listData[store.Faaliyet]{Items: items, Pagination: pagination})
}

// Haberler handles GET /admin/haberler.
func (h *AdminHandler) Haberler(w http.ResponseWriter, r *http.Request) {
	if !requirePageAdmin(w, r) {
		return
	}

	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListHaberler(r.Context(), page, limit)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.renderPage(w, r, "admin/haberler", i18n.T(requestLang(r), "nav.haberler"),
		listData[store.Haber]{Items: items, Pagination: pagination})
}

func (h *AdminHandler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	err := h.renderer.Render(w, r, name, render.TemplateData{
		Title: title,
		Lang:  requestLang(r),
		User:  middleware.GetClaims(r),
		Data:  data,
	})
	if err != nil {
		h.logger.Error("failed to render admin page", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *AdminHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("admin handler failed", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
