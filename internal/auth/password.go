// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides password hashing for admin credentials.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost used when the existing credential records
// were seeded. Changing it only affects newly hashed passwords.
const BcryptCost = 10

// MaxPasswordLength guards against bcrypt's 72-byte truncation: longer
// inputs are rejected instead of silently truncated.
const MaxPasswordLength = 72

var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a bcrypt hash.
// Returns false for any mismatch or malformed hash; errors are not
// surfaced so callers cannot distinguish a bad hash from a bad password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
