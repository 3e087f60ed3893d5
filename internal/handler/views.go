// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"time"

	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/util"
)

// faaliyetView is the JSON shape of a faaliyet. ImageURL serializes as
// null when no image is attached.
type faaliyetView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newFaaliyetView(f store.Faaliyet) faaliyetView {
	return faaliyetView{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		ImageURL:    util.StringPtrFromNull(f.ImageURL),
		Category:    f.Category,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func newFaaliyetViews(items []store.Faaliyet) []faaliyetView {
	views := make([]faaliyetView, 0, len(items))
	for _, f := range items {
		views = append(views, newFaaliyetView(f))
	}
	return views
}

// haberView is the JSON shape of a haber.
type haberView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"imageUrl"`
	Category    string    `json:"category"`
	PublishDate time.Time `json:"publishDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newHaberView(h store.Haber) haberView {
	return haberView{
		ID:          h.ID,
		Title:       h.Title,
		Content:     h.Content,
		ImageURL:    util.StringPtrFromNull(h.ImageURL),
		Category:    h.Category,
		PublishDate: h.PublishDate,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func newHaberViews(items []store.Haber) []haberView {
	views := make([]haberView, 0, len(items))
	for _, h := range items {
		views = append(views, newHaberView(h))
	}
	return views
}
