// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/util"
)

// EventsHandler serves the admin event log API.
type EventsHandler struct {
	queries *store.Queries
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(db *sql.DB) *EventsHandler {
	return &EventsHandler{queries: store.New(db)}
}

type eventView struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   *string   `json:"details"`
	IPAddress *string   `json:"ipAddress"`
	UserID    *int64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newEventView(e store.Event) eventView {
	var userID *int64
	if e.UserID.Valid {
		userID = &e.UserID.Int64
	}
	return eventView{
		ID:        e.ID,
		Level:     e.Level,
		Category:  e.Category,
		Message:   e.Message,
		Details:   util.StringPtrFromNull(e.Details),
		IPAddress: util.StringPtrFromNull(e.IPAddress),
		UserID:    userID,
		CreatedAt: e.CreatedAt,
	}
}

// List handles GET /api/admin/events, newest first.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	page, limit := parsePageParams(r)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > service.MaxPageSize {
		limit = service.DefaultPageSize
	}

	total, err := h.queries.CountEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	events, err := h.queries.ListEvents(r.Context(), store.ListEventsParams{
		Limit:  int64(limit),
		Offset: int64((page - 1) * limit),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, newEventView(e))
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	writeJSON(w, http.StatusOK, listResponse{
		Data: views,
		Pagination: service.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: pages,
		},
	})
}
