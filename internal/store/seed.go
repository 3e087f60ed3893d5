// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/tumed/tumed-go/internal/auth"
	"github.com/tumed/tumed-go/internal/model"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@tumed.org"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "TÜMED Yönetici"
)

// Seed creates the initial admin user if no user with the default email
// exists yet. It is idempotent.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Name:         DefaultAdminName,
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
	)
	slog.Warn("default admin password is in effect, change it after first login")

	return nil
}

// SeedSampleContent inserts a few faaliyet and haber records for local
// development. It only runs against empty tables.
func SeedSampleContent(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	count, err := queries.CountFaaliyetler(ctx)
	if err != nil {
		return fmt.Errorf("counting faaliyetler: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	faaliyetler := []CreateFaaliyetParams{
		{
			Title:       "Geleneksel Mezunlar Buluşması",
			Description: "Her yıl düzenlenen mezunlar buluşmamız bu yıl da kampüste gerçekleşecek.",
			Category:    "etkinlik",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Burs Fonu Bağış Kampanyası",
			Description: "Öğrencilere burs desteği sağlamak için bağış kampanyamız başladı.",
			Category:    "kampanya",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, params := range faaliyetler {
		if _, err := queries.CreateFaaliyet(ctx, params); err != nil {
			return fmt.Errorf("seeding faaliyet: %w", err)
		}
	}

	haberler := []CreateHaberParams{
		{
			Title:       "Derneğimizin Yeni Yönetim Kurulu Seçildi",
			Content:     "Genel kurul toplantısında yeni yönetim kurulu üyeleri belirlendi.",
			Category:    "duyuru",
			PublishDate: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, params := range haberler {
		if _, err := queries.CreateHaber(ctx, params); err != nil {
			return fmt.Errorf("seeding haber: %w", err)
		}
	}

	slog.Info("seeded sample content", "faaliyetler", len(faaliyetler), "haberler", len(haberler))
	return nil
}
