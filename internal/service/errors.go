// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the content, authentication and upload
// business logic on top of the store.
package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; anything else is treated as an internal failure.
var (
	// ErrNotFound signals a well-formed but absent entity id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses cannot leak which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthUnavailable signals a store failure during authentication.
	// It is deliberately distinct from ErrInvalidCredentials.
	ErrAuthUnavailable = errors.New("authentication unavailable")

	// ErrFileTooLarge signals an upload over the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrUnsupportedFileType signals an upload outside the MIME allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
