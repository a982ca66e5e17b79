// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/pressroomdev/pressroom/internal/auth"
	"github.com/pressroomdev/pressroom/internal/middleware"
	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/render"
	"github.com/pressroomdev/pressroom/internal/service"
	"github.com/pressroomdev/pressroom/internal/store"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		eventService:    service.NewEventService(db),
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Already-authenticated operators are sent
// straight to the admin panel.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if operatorID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyOperatorID); operatorID > 0 {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{Title: "Sign In"}); err != nil {
		logAndInternalError(w, "rendering login form", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, redirectLogin, "Invalid form data.")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required.")
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth, "login attempt on locked account", nil, map[string]any{"email": email})
			flashError(w, r, h.renderer, redirectLogin, fmt.Sprintf("Account locked. Try again in %s.", remaining.Round(time.Minute)))
			return
		}
	}

	operator, err := h.queries.GetOperatorByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth, "login failed: operator not found", nil, map[string]any{"email": email})
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record the failure for unknown accounts too, to prevent enumeration.
		h.recordFailure(w, r, email)
		return
	}

	valid, err := auth.CheckPassword(password, operator.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password.")
		return
	}
	if !valid {
		_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth, "login failed: invalid password", &operator.ID, map[string]any{"email": email})
		h.recordFailure(w, r, email)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Transparently upgrade hashes created with older parameters.
	if auth.NeedsRehash(operator.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateOperatorPassword(r.Context(), store.UpdateOperatorPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
				ID:           operator.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "operator_id", operator.ID)
			}
		}
	}

	// Regenerate session ID to prevent session fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), middleware.SessionKeyOperatorID, operator.ID)

	slog.Info("operator logged in", "operator_id", operator.ID, "email", operator.Email)
	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryAuth, "operator logged in", &operator.ID, map[string]any{"email": operator.Email})

	flashAndRedirect(w, r, h.renderer, redirectAdmin, fmt.Sprintf("Welcome back, %s.", operator.Name), "success")
}

// recordFailure records a failed attempt and redirects with an appropriate
// message.
func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, email string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			flashError(w, r, h.renderer, redirectLogin, fmt.Sprintf("Too many failed attempts. Account locked for %s.", lockDuration.Round(time.Minute)))
			return
		}
		if remaining := h.loginProtection.GetRemainingAttempts(email); remaining <= 3 && remaining > 0 {
			flashError(w, r, h.renderer, redirectLogin, fmt.Sprintf("Invalid email or password. %d attempts remaining.", remaining))
			return
		}
	}
	flashError(w, r, h.renderer, redirectLogin, "Invalid email or password.")
}

// Logout handles operator logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	operatorID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyOperatorID)

	if operatorID > 0 {
		_ = h.eventService.LogInfo(r.Context(), model.EventCategoryAuth, "operator logged out", &operatorID, nil)
	}

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	flashAndRedirect(w, r, h.renderer, redirectLogin, "You have been logged out.", "info")
}
