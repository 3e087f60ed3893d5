// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package token issues and validates the signed session tokens carried
// in the auth cookie. Tokens are stateless: all identity and role data
// lives in the claims, so there is no server-side session store and a
// token stays valid until it expires even if the account changes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the HTTP-only cookie the session token travels in.
const CookieName = "tumed_session"

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated identity inside the session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Signer issues and validates HS256 session tokens with a fixed secret
// and lifetime.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer. The secret must already be validated for
// length by the config layer.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime, used to set cookie expiry.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the given user.
func (s *Signer) Issue(userID int64, email, name, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tumed",
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Validate parses and verifies a token string, returning its claims.
// Any failure, including a token signed with a different method or
// secret, maps to ErrInvalidToken.
func (s *Signer) Validate(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer("tumed"))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
