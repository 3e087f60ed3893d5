// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/service"
)

// FaaliyetHandler serves the faaliyet CRUD API under /api/admin.
type FaaliyetHandler struct {
	content *service.ContentService
}

// NewFaaliyetHandler creates a new faaliyet API handler.
func NewFaaliyetHandler(content *service.ContentService) *FaaliyetHandler {
	return &FaaliyetHandler{content: content}
}

// requireAdmin re-checks the caller's role inside the handler. The admin
// middleware already gates these routes; the handler does not rely on it.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !middleware.IsAdmin(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}

// List handles GET /api/admin/faaliyetler.
func (h *FaaliyetHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListFaaliyetler(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: newFaaliyetViews(items), Pagination: pagination})
}

// Get handles GET /api/admin/faaliyetler/{id}.
func (h *FaaliyetHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	item, err := h.content.GetFaaliyet(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": newFaaliyetView(item)})
}

// Create handles POST /api/admin/faaliyetler.
func (h *FaaliyetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var input service.CreateFaaliyetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.content.CreateFaaliyet(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": newFaaliyetView(item)})
}

// Update handles PUT /api/admin/faaliyetler/{id}.
func (h *FaaliyetHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var input service.UpdateFaaliyetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.content.UpdateFaaliyet(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": newFaaliyetView(item)})
}

// Delete handles DELETE /api/admin/faaliyetler/{id}.
func (h *FaaliyetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.content.DeleteFaaliyet(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": "deleted"})
}
