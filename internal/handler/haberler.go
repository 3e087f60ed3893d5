// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tumed/tumed-go/internal/service"
)

// HaberHandler serves the haber CRUD API under /api/admin.
type HaberHandler struct {
	content *service.ContentService
}

// NewHaberHandler creates a new haber API handler.
func NewHaberHandler(content *service.ContentService) *HaberHandler {
	return &HaberHandler{content: content}
}

// List handles GET /api/admin/haberler.
func (h *HaberHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListHaberler(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: newHaberViews(items), Pagination: pagination})
}

// Get handles GET /api/admin/haberler/{id}.
func (h *HaberHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	item, err := h.content.GetHaber(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": newHaberView(item)})
}

// Create handles POST /api/admin/haberler.
func (h *HaberHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var input service.CreateHaberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.content.CreateHaber(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": newHaberView(item)})
}

// Update handles PUT /api/admin/haberler/{id}.
func (h *HaberHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var input service.UpdateHaberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.content.UpdateHaber(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": newHaberView(item)})
}

// Delete handles DELETE /api/admin/haberler/{id}.
func (h *HaberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.content.DeleteHaber(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": "deleted"})
}
