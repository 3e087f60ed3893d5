// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tumed/tumed-go/internal/auth"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/testutil"
	"github.com/tumed/tumed-go/internal/token"
	"github.com/tumed/tumed-go/internal/validate"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthService(t *testing.T) (*AuthService, *sql.DB, func()) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	signer := token.NewSigner(testSecret, time.Hour)
	return NewAuthService(db, signer, testutil.TestLogger()), db, cleanup
}

func createTestUser(t *testing.T, db *sql.DB, email, password, role string) store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	now := time.Now()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func TestAuthService_Login(t *testing.T) {
	svc, db, cleanup := newAuthService(t)
	defer cleanup()

	user := createTestUser(t, db, "admin@tumed.org", "gizli-parola", "admin")

	result, err := svc.Login(context.Background(), "admin@tumed.org", "gizli-parola")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != user.ID {
		t.Errorf("User.ID = %d, want %d", result.User.ID, user.ID)
	}
	if result.Token == "" {
		t.Fatal("Token should not be empty")
	}

	claims, err := token.NewSigner(testSecret, time.Hour).Validate(result.Token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, db, cleanup := newAuthService(t)
	defer cleanup()

	createTestUser(t, db, "admin@tumed.org", "gizli-parola", "admin")

	_, err := svc.Login(context.Background(), "admin@tumed.org", "yanlis-parola")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, db, cleanup := newAuthService(t)
	defer cleanup()

	createTestUser(t, db, "admin@tumed.org", "gizli-parola", "admin")

	// Unknown email must be indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), "unknown@tumed.org", "gizli-parola")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_MalformedInput(t *testing.T) {
	svc, _, cleanup := newAuthService(t)
	defer cleanup()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"invalid email", "not-an-email", "gizli-parola"},
		{"short password", "admin@tumed.org", "12345"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			var violations validate.Violations
			if !errors.As(err, &violations) {
				t.Errorf("Login: err = %v, want validate.Violations", err)
			}
		})
	}
}
