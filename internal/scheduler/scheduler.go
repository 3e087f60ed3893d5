// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the background maintenance jobs: orphan upload
// cleanup and event log retention.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
)

// orphanGracePeriod protects fresh uploads that have not been attached
// to a record yet.
const orphanGracePeriod = 24 * time.Hour

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	db             *sql.DB
	uploads        *service.UploadService
	uploadsDir     string
	eventRetention time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, uploads *service.UploadService, uploadsDir string, eventRetention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:             db,
		uploads:        uploads,
		uploadsDir:     uploadsDir,
		eventRetention: eventRetention,
		cron:           cron.New(),
		logger:         logger,
	}
}

// Start registers the jobs and begins the cron runner.
func (s *Scheduler) Start() error {
	// Purge old events nightly.
	if _, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.purgeEvents(); err != nil {
			s.logger.Error("failed to purge events", "error", err)
		}
	}); err != nil {
		return err
	}

	// Sweep orphaned uploads nightly, after the purge.
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.sweepOrphanUploads(); err != nil {
			s.logger.Error("failed to sweep orphan uploads", "error", err)
		}
	}); err != nil {
		return err
	}

	// Log content counts once a day for a cheap growth trail.
	if _, err := s.cron.AddFunc("0 4 * * *", func() {
		if err := s.logContentStats(); err != nil {
			s.logger.Error("failed to collect content stats", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// purgeEvents deletes event rows older than the retention window.
func (s *Scheduler) purgeEvents() error {
	if s.eventRetention <= 0 {
		return nil
	}

	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-s.eventRetention)

	deleted, err := store.New(s.db).DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("purged old events", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}

// sweepOrphanUploads removes uploaded files no content row references.
// Files younger than the grace period are kept so an upload in progress
// is never deleted between storing the file and saving the record.
func (s *Scheduler) sweepOrphanUploads() error {
	ctx := context.Background()
	referenced, err := s.referencedFilenames(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-orphanGracePeriod)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := s.uploads.Remove(entry.Name()); err != nil {
			s.logger.Warn("failed to remove orphan upload", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("removed orphan uploads", "count", removed)
	}
	return nil
}

// logContentStats records daily content totals in the application log.
func (s *Scheduler) logContentStats() error {
	ctx := context.Background()
	queries := store.New(s.db)

	faaliyetler, err := queries.CountFaaliyetler(ctx)
	if err != nil {
		return err
	}
	haberler, err := queries.CountHaberler(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("content stats", "faaliyetler", faaliyetler, "haberler", haberler)
	return nil
}

// referencedFilenames collects the basename of every image URL stored on
// faaliyetler and haberler.
func (s *Scheduler) referencedFilenames(ctx context.Context) (map[string]bool, error) {
	queries := store.New(s.db)

	faaliyetURLs, err := queries.ListFaaliyetImageURLs(ctx)
	if err != nil {
		return nil, err
	}
	haberURLs, err := queries.ListHaberImageURLs(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(faaliyetURLs)+len(haberURLs))
	for _, url := range append(faaliyetURLs, haberURLs...) {
		if url.Valid && url.String != "" {
			referenced[filepath.Base(url.String)] = true
		}
	}
	return referenced, nil
}
