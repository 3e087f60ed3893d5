// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and types shared across the
// application: user roles, upload MIME types, and event log levels.
package model

// User roles. Only RoleAdmin may mutate content or upload files.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// IsAdminRole returns true if the given role grants admin panel access.
func IsAdminRole(role string) bool {
	return role == RoleAdmin
}
