// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tumed/tumed-go/internal/auth"
	"github.com/tumed/tumed-go/internal/model"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/token"
	"github.com/tumed/tumed-go/internal/validate"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	queries *store.Queries
	signer  *token.Signer
	logger  *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB, signer *token.Signer, logger *slog.Logger) *AuthService {
	return &AuthService{
		queries: store.New(db),
		signer:  signer,
		logger:  logger,
	}
}

// LoginResult carries the authenticated user and their session token.
type LoginResult struct {
	User  store.User
	Token string
}

// Login validates the submitted credentials and issues a session token.
// Malformed input is rejected with validate.Violations before any lookup.
// Unknown email and wrong password both return ErrInvalidCredentials;
// store failures return ErrAuthUnavailable instead so an outage is never
// reported as bad credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	passwordRule := validate.StringRule{Field: "password", Min: 6}
	if err := validate.Collect(
		validate.Email("email", email),
		passwordRule.Check(password),
	).OrNil(); err != nil {
		return nil, err
	}

	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn a hash comparison so the timing matches the
			// wrong-password path.
			auth.VerifyPassword(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn("failed login attempt",
			"category", model.EventCategoryAuth,
			"email", email,
		)
		return nil, ErrInvalidCredentials
	}

	tok, err := s.signer.Issue(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	s.logger.Info("successful login", "user_id", user.ID, "email", user.Email)

	return &LoginResult{User: user, Token: tok}, nil
}

// GetUser fetches a user by ID. Returns ErrNotFound when no such user
// exists.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*store.User, error) {
	user, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return &user, nil
}

// dummyHash is a bcrypt hash of an unguessable value, used to equalize
// timing between unknown-email and wrong-password failures.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
