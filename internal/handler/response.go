// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site,
// the admin panel and the JSON API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tumed/tumed-go/internal/i18n"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/validate"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"error": message})
}

// writeValidationError writes a 400 response carrying the field violations.
func writeValidationError(w http.ResponseWriter, violations validate.Violations) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "Validation failed",
		"fields": violations,
	})
}

// writeServiceError maps service errors to HTTP responses. Validation
// failures enumerate their fields; everything unexpected is a plain 500
// without internal detail.
func writeServiceError(w http.ResponseWriter, err error) {
	var violations validate.Violations
	switch {
	case errors.As(err, &violations):
		writeValidationError(w, violations)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrAuthUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Authentication temporarily unavailable")
	case errors.Is(err, service.ErrUnsupportedFileType):
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported file type")
	case errors.Is(err, service.ErrFileTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// listResponse is the envelope for paginated collections.
type listResponse struct {
	Data       any                `json:"data"`
	Pagination service.Pagination `json:"pagination"`
}

// requestLang resolves the response language from the Accept-Language
// header.
func requestLang(r *http.Request) string {
	return i18n.MatchLanguage(r.Header.Get("Accept-Language"))
}

// parseIDParam reads the {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parsePageParams reads ?page and ?limit query parameters. Absent or
// malformed values fall back to defaults; range clamping happens in the
// service layer.
func parsePageParams(r *http.Request) (page, limit int) {
	page = 1
	limit = service.DefaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	return page, limit
}
