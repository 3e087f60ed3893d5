// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tumed/tumed-go/internal/imaging"
	"github.com/tumed/tumed-go/internal/model"
	"github.com/tumed/tumed-go/internal/util"
)

// Upload limits
const (
	MaxUploadSize    = 5 * 1024 * 1024 // 5 MiB
	PublicUploadPath = "/uploads"
)

// AllowedMimeTypes defines the MIME types that can be uploaded.
var AllowedMimeTypes = map[string]bool{
	model.MimeTypeJPEG: true,
	model.MimeTypePNG:  true,
	model.MimeTypeGIF:  true,
	model.MimeTypeWebP: true,
}

// UploadService stores uploaded images under the uploads directory and
// returns their public path.
type UploadService struct {
	uploadsDir string
	processor  *imaging.Processor
	logger     *slog.Logger
}

// NewUploadService creates a new UploadService rooted at uploadsDir.
// The directory is created on demand by Store.
func NewUploadService(uploadsDir string, logger *slog.Logger) *UploadService {
	return &UploadService{
		uploadsDir: uploadsDir,
		processor:  imaging.NewProcessor(uploadsDir),
		logger:     logger,
	}
}

// Store validates and persists an uploaded file, returning its public
// URL path. The declared MIME type must be in the allow-list and the
// declared size under MaxUploadSize; both are checked before any bytes
// are read. The write is atomic: data goes to a temp file that is
// renamed into place, so a failed upload never leaves a referencable
// half-written file.
func (s *UploadService) Store(ctx context.Context, file io.Reader, mimeType string, size int64, originalName string) (string, error) {
	if !AllowedMimeTypes[mimeType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
	if size > MaxUploadSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, size)
	}

	if err := os.MkdirAll(s.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("creating uploads directory: %w", err)
	}

	filename := generateFilename(originalName)

	tmp, err := os.CreateTemp(s.uploadsDir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// The size check above trusts the declared size; LimitReader
	// enforces it against the actual stream.
	written, err := io.Copy(tmp, io.LimitReader(file, MaxUploadSize+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if written > MaxUploadSize {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, written)
	}

	finalPath := filepath.Join(s.uploadsDir, filename)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("finalizing upload: %w", err)
	}

	// Thumbnails are best effort; the original upload already succeeded.
	if _, err := s.processor.CreateVariants(filename); err != nil {
		s.logger.Warn("creating upload variants",
			"category", model.EventCategoryUpload,
			"filename", filename,
			"error", err,
		)
	}

	s.logger.Info("file uploaded", "filename", filename, "size", written)

	return PublicUploadPath + "/" + filename, nil
}

// Remove deletes an uploaded file and its variants. Used by the orphan
// sweep; missing files are not an error.
func (s *UploadService) Remove(filename string) error {
	base := filepath.Base(filename)
	if err := os.Remove(filepath.Join(s.uploadsDir, base)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing upload: %w", err)
	}
	return s.processor.DeleteVariants(base)
}

// generateFilename combines a slug of the original name with a
// millisecond timestamp, a random suffix and the original extension.
// The random component makes collisions within the same millisecond
// practically impossible, so no existence check is needed.
func generateFilename(originalName string) string {
	base := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(base))
	slug := util.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if slug == "" {
		slug = "upload"
	}
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s%s", slug, time.Now().UnixMilli(), suffix, ext)
}
