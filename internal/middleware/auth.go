// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, rate limiting and request hardening.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tumed/tumed-go/internal/model"
	"github.com/tumed/tumed-go/internal/token"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyClaims is the context key for the session claims.
const ContextKeyClaims ContextKey = "claims"

// writeJSONError writes a machine-readable error body for API routes.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sessionClaims extracts and validates the session token from the auth
// cookie. Returns nil for a missing, malformed or expired token.
func sessionClaims(r *http.Request, signer *token.Signer) *token.Claims {
	cookie, err := r.Cookie(token.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := signer.Validate(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// LoadClaims attaches validated session claims to the request context
// when present. It never denies; gating is done by Auth/RequireAdmin.
func LoadClaims(signer *token.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims := sessionClaims(r, signer); claims != nil {
				ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Auth gates page routes: requests without a valid session are
// redirected to the login page.
func Auth(signer *token.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := sessionClaims(r, signer)
			if claims == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin page routes. Both the unauthenticated and
// the authenticated-non-admin states are sent back to the login page;
// the admin panel simply does not exist for them.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !model.IsAdminRole(claims.Role) {
				slog.Warn("admin page access denied",
					"category", model.EventCategoryAuth,
					"method", r.Method,
					"path", r.URL.Path,
					"user_id", claims.UserID,
					"user_role", claims.Role,
				)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// APIRequireAdmin gates admin API routes with a JSON error instead of
// a redirect. Handlers behind it still re-check the role themselves;
// neither layer trusts the other.
func APIRequireAdmin(signer *token.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := sessionClaims(r, signer)
			if claims == nil || !model.IsAdminRole(claims.Role) {
				if claims != nil {
					slog.Warn("admin API access denied",
						"category", model.EventCategoryAuth,
						"method", r.Method,
						"path", r.URL.Path,
						"user_id", claims.UserID,
						"user_role", claims.Role,
					)
				}
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClaims returns a context carrying the given session claims.
func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyClaims, claims)
}

// GetClaims retrieves the session claims from the request context.
// Returns nil if the request carries no valid session.
func GetClaims(r *http.Request) *token.Claims {
	claims, ok := r.Context().Value(ContextKeyClaims).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(r *http.Request) bool {
	claims := GetClaims(r)
	return claims != nil && model.IsAdminRole(claims.Role)
}
