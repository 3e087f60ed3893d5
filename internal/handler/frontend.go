// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tumed/tumed-go/internal/cache"
	"github.com/tumed/tumed-go/internal/i18n"
	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/render"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
)

// homePageSize bounds the per-section item count on the landing page.
const homePageSize = 5

// FrontendHandler renders the public, read-only pages.
type FrontendHandler struct {
	content  *service.ContentService
	cache    cache.Cache
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewFrontendHandler creates a new frontend handler.
func NewFrontendHandler(content *service.ContentService, c cache.Cache, renderer *render.Renderer, logger *slog.Logger) *FrontendHandler {
	return &FrontendHandler{
		content:  content,
		cache:    c,
		renderer: renderer,
		logger:   logger,
	}
}

// servePage renders a public page through the cache. Pages are cached
// per path, query and language for anonymous visitors only; the content
// service clears the cache on every mutation.
func (h *FrontendHandler) servePage(w http.ResponseWriter, r *http.Request, name string, data render.TemplateData) {
	lang := requestLang(r)
	data.Lang = lang
	data.User = middleware.GetClaims(r)

	cacheable := h.cache != nil && data.User == nil
	key := "page:" + lang + ":" + r.URL.RequestURI()

	if cacheable {
		if cached, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write(cached)
			return
		}
	}

	rec := &bufferWriter{header: make(http.Header), status: http.StatusOK}
	if err := h.renderer.Render(rec, r, name, data); err != nil {
		h.logger.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := h.cache.Set(r.Context(), key, rec.buf.Bytes(), 0); err != nil {
			h.logger.Warn("failed to cache page", "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(rec.buf.Bytes())
}

// bufferWriter captures a rendered response for caching.
type bufferWriter struct {
	header http.Header
	buf    bytes.Buffer
	status int
}

func (b *bufferWriter) Header() http.Header         { return b.header }
func (b *bufferWriter) Write(p []byte) (int, error) { return b.buf.Write(p) }
func (b *bufferWriter) WriteHeader(status int)      { b.status = status }

// homeData feeds the landing page template.
type homeData struct {
	Faaliyetler []store.Faaliyet
	Haberler    []store.Haber
}

// listData feeds the public list templates.
type listData[T any] struct {
	Items      []T
	Pagination service.Pagination
}

// Home handles GET /.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	faaliyetler, _, err := h.content.ListFaaliyetler(r.Context(), 1, homePageSize)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	haberler, _, err := h.content.ListHaberler(r.Context(), 1, homePageSize)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.servePage(w, r, "public/home", render.TemplateData{
		Data: homeData{Faaliyetler: faaliyetler, Haberler: haberler},
	})
}

// Faaliyetler handles GET /faaliyetler.
func (h *FrontendHandler) Faaliyetler(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListFaaliyetler(r.Context(), page, limit)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	lang := requestLang(r)
	h.servePage(w, r, "public/faaliyetler", render.TemplateData{
		Title: i18n.T(lang, "nav.faaliyetler"),
		Data:  listData[store.Faaliyet]{Items: items, Pagination: pagination},
	})
}

// Faaliyet handles GET /faaliyetler/{id}.
func (h *FrontendHandler) Faaliyet(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	item, err := h.content.GetFaaliyet(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.servePage(w, r, "public/faaliyet", render.TemplateData{
		Title: item.Title,
		Data:  item,
	})
}

// Haberler handles GET /haberler.
func (h *FrontendHandler) Haberler(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageParams(r)
	items, pagination, err := h.content.ListHaberler(r.Context(), page, limit)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	lang := requestLang(r)
	h.servePage(w, r, "public/haberler", render.TemplateData{
		Title: i18n.T(lang, "nav.haberler"),
		Data:  listData[store.Haber]{Items: items, Pagination: pagination},
	})
}

// Haber handles GET /haberler/{id}.
func (h *FrontendHandler) Haber(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	item, err := h.content.GetHaber(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.servePage(w, r, "public/haber", render.TemplateData{
		Title: item.Title,
		Data:  item,
	})
}

// NotFound handles unmatched public routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *FrontendHandler) notFound(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	http.Error(w, i18n.T(lang, "error.not_found"), http.StatusNotFound)
}

func (h *FrontendHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("frontend handler failed", "path", r.URL.Path, "error", err)
	lang := requestLang(r)
	http.Error(w, i18n.T(lang, "error.internal"), http.StatusInternalServerError)
}
