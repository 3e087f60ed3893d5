// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tumed/tumed-go/internal/auth"
	"github.com/tumed/tumed-go/internal/cache"
	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/model"
	"github.com/tumed/tumed-go/internal/render"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/testutil"
	"github.com/tumed/tumed-go/internal/token"
	"github.com/tumed/tumed-go/web"
)

const testSecret = "test-secret-key-thats-long-enough-123456"

// testEnv bundles everything a handler test needs.
type testEnv struct {
	db     *sql.DB
	router chi.Router
	signer *token.Signer
}

// newTestEnv builds a router with the same layout as the real server.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	logger := testutil.TestLogger()
	signer := token.NewSigner(testSecret, time.Hour)

	pageCache := cache.NewMemoryCache(cache.MemoryCacheOptions{
		DefaultTTL:      time.Minute,
		CleanupInterval: time.Minute,
	})
	t.Cleanup(func() { _ = pageCache.Close() })

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, IsDev: true})
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}

	uploadsDir := t.TempDir()

	authService := service.NewAuthService(db, signer, logger)
	contentService := service.NewContentService(db, pageCache, logger)
	uploadService := service.NewUploadService(uploadsDir, logger)
	protection := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           100,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	authHandler := NewAuthHandler(authService, signer, protection, renderer, logger, true)
	faaliyetHandler := NewFaaliyetHandler(contentService)
	haberHandler := NewHaberHandler(contentService)
	uploadHandler := NewUploadHandler(uploadService, logger)
	eventsHandler := NewEventsHandler(db)
	adminHandler := NewAdminHandler(db, contentService, renderer, logger)
	frontendHandler := NewFrontendHandler(contentService, pageCache, renderer, logger)

	r := chi.NewRouter()
	r.Use(middleware.LoadClaims(signer))

	r.Get("/", frontendHandler.Home)
	r.Get("/faaliyetler", frontendHandler.Faaliyetler)
	r.Get("/faaliyetler/{id}", frontendHandler.Faaliyet)
	r.Get("/faaliyetler/{id}/{slug}", frontendHandler.Faaliyet)
	r.Get("/haberler", frontendHandler.Haberler)
	r.Get("/haberler/{id}", frontendHandler.Haber)
	r.Get("/haberler/{id}/{slug}", frontendHandler.Haber)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.LoginSubmit)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(signer))
		r.Use(middleware.RequireAdmin())
		r.Get("/", adminHandler.Dashboard)
		r.Get("/faaliyetler", adminHandler.Faaliyetler)
		r.Get("/haberler", adminHandler.Haberler)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.APILogin)
		r.Post("/auth/logout", authHandler.Logout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIRequireAdmin(signer))
			r.Get("/me", authHandler.Me)
			r.Get("/events", eventsHandler.List)
			r.Post("/upload", uploadHandler.Upload)
			r.Get("/faaliyetler", faaliyetHandler.List)
			r.Post("/faaliyetler", faaliyetHandler.Create)
			r.Get("/faaliyetler/{id}", faaliyetHandler.Get)
			r.Put("/faaliyetler/{id}", faaliyetHandler.Update)
			r.Delete("/faaliyetler/{id}", faaliyetHandler.Delete)
			r.Get("/haberler", haberHandler.List)
			r.Post("/haberler", haberHandler.Create)
			r.Get("/haberler/{id}", haberHandler.Get)
			r.Put("/haberler/{id}", haberHandler.Update)
			r.Delete("/haberler/{id}", haberHandler.Delete)
		})
	})

	return &testEnv{db: db, router: r, signer: signer}
}

// createUser inserts a user with a bcrypt-hashed password.
func (e *testEnv) createUser(t *testing.T, email, password, role string) store.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	now := time.Now().UTC()
	user, err := store.New(e.db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test Kullanıcı",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

// adminCookie issues a valid session cookie for a fresh admin user.
func (e *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	user := e.createUser(t, "admin@tumed.org", "sifre123", model.RoleAdmin)
	return e.cookieFor(t, user)
}

func (e *testEnv) cookieFor(t *testing.T, user store.User) *http.Cookie {
	t.Helper()

	tok, err := e.signer.Issue(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return &http.Cookie{Name: token.CookieName, Value: tok}
}
