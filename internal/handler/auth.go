// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tumed/tumed-go/internal/i18n"
	"github.com/tumed/tumed-go/internal/middleware"
	"github.com/tumed/tumed-go/internal/render"
	"github.com/tumed/tumed-go/internal/service"
	"github.com/tumed/tumed-go/internal/store"
	"github.com/tumed/tumed-go/internal/token"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	auth       *service.AuthService
	signer     *token.Signer
	protection *middleware.LoginProtection
	renderer   *render.Renderer
	logger     *slog.Logger
	isDev      bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService, signer *token.Signer, protection *middleware.LoginProtection, renderer *render.Renderer, logger *slog.Logger, isDev bool) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		signer:     signer,
		protection: protection,
		renderer:   renderer,
		logger:     logger,
		isDev:      isDev,
	}
}

// userView is the user shape returned to clients. The password hash
// never leaves the server.
type userView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u store.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionCookie builds the auth cookie carrying a signed token. An empty
// token with negative max age clears it.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     token.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !h.isDev,
		SameSite: http.SameSiteLaxMode,
	}
}

// login runs the shared credential flow: lockout check, authentication,
// failure bookkeeping. Returns the result or a service error.
func (h *AuthHandler) login(r *http.Request, email, password string) (*service.LoginResult, error) {
	if locked, _ := h.protection.IsAccountLocked(email); locked {
		return nil, errLocked
	}

	result, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.protection.RecordFailedAttempt(email)
		}
		return nil, err
	}

	h.protection.RecordSuccessfulLogin(email)
	return result, nil
}

// errLocked marks a login attempt against a locked account.
var errLocked = errors.New("account locked")

// APILogin handles POST /api/auth/login.
func (h *AuthHandler) APILogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.login(r, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errLocked) {
			writeError(w, http.StatusTooManyRequests, "Account temporarily locked. Try again later.")
			return
		}
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.signer.TTL().Seconds())))
	writeJSON(w, http.StatusOK, map[string]any{"data": newUserView(result.User)})
}

// Logout handles POST /api/auth/logout. It serves both the JSON API and
// the admin panel's logout form.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, map[string]any{"data": "logged out"})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Me handles GET /api/admin/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil || !middleware.IsAdmin(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.auth.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": newUserView(*user)})
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, "", "")
}

// LoginSubmit handles POST /login from the HTML form.
func (h *AuthHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	lang := requestLang(r)

	result, err := h.login(r, email, password)
	if err != nil {
		switch {
		case errors.Is(err, errLocked):
			h.renderLogin(w, r, i18n.T(lang, "auth.locked"), "error")
		case errors.Is(err, service.ErrAuthUnavailable):
			h.renderLogin(w, r, i18n.T(lang, "auth.unavailable"), "error")
		default:
			// Validation failures and bad credentials read the same to
			// the visitor.
			h.renderLogin(w, r, i18n.T(lang, "auth.invalid_credentials"), "error")
		}
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.signer.TTL().Seconds())))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, flash, flashType string) {
	lang := requestLang(r)
	err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title:     i18n.T(lang, "auth.login"),
		Lang:      lang,
		Flash:     flash,
		FlashType: flashType,
	})
	if err != nil {
		h.logger.Error("failed to render login page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
