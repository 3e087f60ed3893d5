// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/tumed/tumed-go/internal/imaging"
	"github.com/tumed/tumed-go/internal/service"
)

// UploadHandler serves POST /api/admin/upload.
type UploadHandler struct {
	uploads *service.UploadService
	logger  *slog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploads *service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// Upload accepts a multipart form with a "file" field and stores the
// image, responding with its public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	// Spool bodies over the limit to disk instead of memory, the size
	// check happens against the part itself below.
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if header.Size > service.MaxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	// Sniff the real content type from the first bytes rather than
	// trusting the client-declared header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && n == 0 {
		writeError(w, http.StatusBadRequest, "Unreadable file")
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	mimeType := imaging.DetectMimeType(head[:n])

	url, err := h.uploads.Store(r.Context(), file, mimeType, header.Size, header.Filename)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.Info("file uploaded",
		"category", "upload",
		"name", header.Filename,
		"size", header.Size,
		"url", url,
	)
	writeJSON(w, http.StatusCreated, map[string]any{"url": url})
}
