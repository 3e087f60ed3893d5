// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tumed/tumed-go/internal/cache"
	"github.com/tumed/tumed-go/internal/model"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/util"
	"github.com/tumed/tumed-go/internal/validate"
)

// Pagination limits
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Field constraint rules shared by create and update paths.
var (
	titleRule       = validate.StringRule{Field: "title", Min: 1, Max: 200}
	descriptionRule = validate.StringRule{Field: "description", Min: 1}
	contentRule     = validate.StringRule{Field: "content", Min: 1}
	categoryRule    = validate.StringRule{Field: "category", Min: 1}
)

// ContentService executes validated CRUD operations for faaliyetler and
// haberler. Role checks happen in the HTTP layer before any call lands
// here; this service assumes an already-authorized caller.
type ContentService struct {
	queries *store.Queries
	cache   cache.Cache
	logger  *slog.Logger
}

// NewContentService creates a new ContentService. The cache holds
// rendered public pages and is invalidated on every successful mutation.
func NewContentService(db *sql.DB, c cache.Cache, logger *slog.Logger) *ContentService {
	return &ContentService{
		queries: store.New(db),
		cache:   c,
		logger:  logger,
	}
}

// invalidate drops all cached public pages after a content mutation.
func (s *ContentService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("clearing page cache", "category", model.EventCategorySystem, "error", err)
	}
}

// normalizePage clamps page and limit to valid ranges.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// totalPages computes ceil(total/limit).
func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// parsePublishDate accepts a date-only string and converts it to UTC
// midnight. An empty value defaults to the current time. RFC 3339
// timestamps are accepted as-is for API clients that send full times.
func parsePublishDate(value string) (time.Time, *validate.Violation) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	if d, err := time.Parse("2006-01-02", value); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, &validate.Violation{Field: "publishDate", Message: "publishDate must be a YYYY-MM-DD date"}
}

// CreateFaaliyetInput holds the fields for creating a faaliyet.
type CreateFaaliyetInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
}

// UpdateFaaliyetInput holds a partial update; nil fields are unchanged.
type UpdateFaaliyetInput struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	ImageURL    util.NullableString `json:"imageUrl"`
}

// CreateFaaliyet validates and persists a new faaliyet. The id and
// timestamps are assigned server-side.
func (s *ContentService) CreateFaaliyet(ctx context.Context, input CreateFaaliyetInput) (store.Faaliyet, error) {
	if err := validate.Collect(
		titleRule.Check(input.Title),
		descriptionRule.Check(input.Description),
		categoryRule.Check(input.Category),
	).OrNil(); err != nil {
		return store.Faaliyet{}, err
	}

	now := time.Now().UTC()
	created, err := s.queries.CreateFaaliyet(ctx, store.CreateFaaliyetParams{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    util.NullStringFromPtr(input.ImageURL),
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return store.Faaliyet{}, fmt.Errorf("creating faaliyet: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("faaliyet created", "category", model.EventCategoryContent, "id", created.ID)
	return created, nil
}

// GetFaaliyet returns the faaliyet or ErrNotFound.
func (s *ContentService) GetFaaliyet(ctx context.Context, id int64) (store.Faaliyet, error) {
	f, err := s.queries.GetFaaliyet(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Faaliyet{}, ErrNotFound
	}
	if err != nil {
		return store.Faaliyet{}, fmt.Errorf("getting faaliyet: %w", err)
	}
	return f, nil
}

// ListFaaliyetler returns one page of faaliyetler, newest createdAt
// first. A page beyond the last returns an empty slice, not an error.
func (s *ContentService) ListFaaliyetler(ctx context.Context, page, limit int) ([]store.Faaliyet, Pagination, error) {
	page, limit = normalizePage(page, limit)

	total, err := s.queries.CountFaaliyetler(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("counting faaliyetler: %w", err)
	}

	items, err := s.queries.ListFaaliyetler(ctx, store.ListFaaliyetlerParams{
		Limit:  int64(limit),
		Offset: int64((page - 1) * limit),
	})
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("listing faaliyetler: %w", err)
	}

	return items, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateFaaliyet applies a partial update. The existence check precedes
// the write so a typo'd id can never create a record. Validation runs
// only against supplied fields.
func (s *ContentService) UpdateFaaliyet(ctx context.Context, id int64, input UpdateFaaliyetInput) (store.Faaliyet, error) {
	existing, err := s.GetFaaliyet(ctx, id)
	if err != nil {
		return store.Faaliyet{}, err
	}

	var violations validate.Violations
	if input.Title != nil {
		violations = append(violations, validate.Collect(titleRule.Check(*input.Title))...)
	}
	if input.Description != nil {
		violations = append(violations, validate.Collect(descriptionRule.Check(*input.Description))...)
	}
	if input.Category != nil {
		violations = append(violations, validate.Collect(categoryRule.Check(*input.Category))...)
	}
	if err := violations.OrNil(); err != nil {
		return store.Faaliyet{}, err
	}

	params := store.UpdateFaaliyetParams{
		Title:       existing.Title,
		Description: existing.Description,
		ImageURL:    existing.ImageURL,
		Category:    existing.Category,
		UpdatedAt:   time.Now().UTC(),
		ID:          id,
	}
	if input.Title != nil {
		params.Title = *input.Title
	}
	if input.Description != nil {
		params.Description = *input.Description
	}
	if input.Category != nil {
		params.Category = *input.Category
	}
	if input.ImageURL.Set {
		params.ImageURL = sql.NullString{String: input.ImageURL.Value, Valid: input.ImageURL.Valid}
	}

	updated, err := s.queries.UpdateFaaliyet(ctx, params)
	if err != nil {
		return store.Faaliyet{}, fmt.Errorf("updating faaliyet: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("faaliyet updated", "category", model.EventCategoryContent, "id", id)
	return updated, nil
}

// DeleteFaaliyet removes a faaliyet. Deleting an absent id reports
// ErrNotFound, so a second delete of the same id fails cleanly.
func (s *ContentService) DeleteFaaliyet(ctx context.Context, id int64) error {
	if _, err := s.GetFaaliyet(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteFaaliyet(ctx, id); err != nil {
		return fmt.Errorf("deleting faaliyet: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("faaliyet deleted", "category", model.EventCategoryContent, "id", id)
	return nil
}

// CreateHaberInput holds the fields for creating a haber. PublishDate
// is a date-only string; empty means "now".
type CreateHaberInput struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	PublishDate string  `json:"publishDate"`
}

// UpdateHaberInput holds a partial update; nil fields are unchanged.
type UpdateHaberInput struct {
	Title       *string             `json:"title"`
	Content     *string             `json:"content"`
	Category    *string             `json:"category"`
	ImageURL    util.NullableString `json:"imageUrl"`
	PublishDate *string             `json:"publishDate"`
}

// CreateHaber validates and persists a new haber.
func (s *ContentService) CreateHaber(ctx context.Context, input CreateHaberInput) (store.Haber, error) {
	publishDate, dateViolation := parsePublishDate(input.PublishDate)
	if err := validate.Collect(
		titleRule.Check(input.Title),
		contentRule.Check(input.Content),
		categoryRule.Check(input.Category),
		dateViolation,
	).OrNil(); err != nil {
		return store.Haber{}, err
	}

	now := time.Now().UTC()
	created, err := s.queries.CreateHaber(ctx, store.CreateHaberParams{
		Title:       input.Title,
		Content:     input.Content,
		ImageURL:    util.NullStringFromPtr(input.ImageURL),
		Category:    input.Category,
		PublishDate: publishDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return store.Haber{}, fmt.Errorf("creating haber: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("haber created", "category", model.EventCategoryContent, "id", created.ID)
	return created, nil
}

// GetHaber returns the haber or ErrNotFound.
func (s *ContentService) GetHaber(ctx context.Context, id int64) (store.Haber, error) {
	h, err := s.queries.GetHaber(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Haber{}, ErrNotFound
	}
	if err != nil {
		return store.Haber{}, fmt.Errorf("getting haber: %w", err)
	}
	return h, nil
}

// ListHaberler returns one page of haberler, newest publishDate first.
func (s *ContentService) ListHaberler(ctx context.Context, page, limit int) ([]store.Haber, Pagination, error) {
	page, limit = normalizePage(page, limit)

	total, err := s.queries.CountHaberler(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("counting haberler: %w", err)
	}

	items, err := s.queries.ListHaberler(ctx, store.ListHaberlerParams{
		Limit:  int64(limit),
		Offset: int64((page - 1) * limit),
	})
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("listing haberler: %w", err)
	}

	return items, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateHaber applies a partial update with the same semantics as
// UpdateFaaliyet.
func (s *ContentService) UpdateHaber(ctx context.Context, id int64, input UpdateHaberInput) (store.Haber, error) {
	existing, err := s.GetHaber(ctx, id)
	if err != nil {
		return store.Haber{}, err
	}

	var violations validate.Violations
	if input.Title != nil {
		violations = append(violations, validate.Collect(titleRule.Check(*input.Title))...)
	}
	if input.Content != nil {
		violations = append(violations, validate.Collect(contentRule.Check(*input.Content))...)
	}
	if input.Category != nil {
		violations = append(violations, validate.Collect(categoryRule.Check(*input.Category))...)
	}

	publishDate := existing.PublishDate
	if input.PublishDate != nil {
		parsed, dateViolation := parsePublishDate(*input.PublishDate)
		if dateViolation != nil {
			violations = append(violations, *dateViolation)
		} else {
			publishDate = parsed
		}
	}
	if err := violations.OrNil(); err != nil {
		return store.Haber{}, err
	}

	params := store.UpdateHaberParams{
		Title:       existing.Title,
		Content:     existing.Content,
		ImageURL:    existing.ImageURL,
		Category:    existing.Category,
		PublishDate: publishDate,
		UpdatedAt:   time.Now().UTC(),
		ID:          id,
	}
	if input.Title != nil {
		params.Title = *input.Title
	}
	if input.Content != nil {
		params.Content = *input.Content
	}
	if input.Category != nil {
		params.Category = *input.Category
	}
	if input.ImageURL.Set {
		params.ImageURL = sql.NullString{String: input.ImageURL.Value, Valid: input.ImageURL.Valid}
	}

	updated, err := s.queries.UpdateHaber(ctx, params)
	if err != nil {
		return store.Haber{}, fmt.Errorf("updating haber: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("haber updated", "category", model.EventCategoryContent, "id", id)
	return updated, nil
}

// DeleteHaber removes a haber, reporting ErrNotFound for absent ids.
func (s *ContentService) DeleteHaber(ctx context.Context, id int64) error {
	if _, err := s.GetHaber(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteHaber(ctx, id); err != nil {
		return fmt.Errorf("deleting haber: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("haber deleted", "category", model.EventCategoryContent, "id", id)
	return nil
}
