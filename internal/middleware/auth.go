// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyOperator holds the authenticated operator in the request context.
const ContextKeyOperator ContextKey = "operator"

// SessionKeyOperatorID is the session key for the authenticated operator's id.
const SessionKeyOperatorID = "operator_id"

// Auth creates middleware that requires authentication. It checks for a
// valid operator session and redirects to login if not authenticated.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operatorID := sm.GetInt64(r.Context(), SessionKeyOperatorID)
			if operatorID == 0 {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadOperator creates middleware that loads the current operator into the
// request context. It should run after Auth.
func LoadOperator(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operatorID := sm.GetInt64(r.Context(), SessionKeyOperatorID)
			if operatorID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			operator, err := queries.GetOperatorByID(r.Context(), operatorID)
			if err != nil {
				// Stale session, e.g. the operator was removed.
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperator retrieves the current operator from the request context.
// Returns nil if no operator is in context.
func GetOperator(r *http.Request) *store.Operator {
	operator, ok := r.Context().Value(ContextKeyOperator).(store.Operator)
	if !ok {
		return nil
	}
	return &operator
}

// GetOperatorID returns the current operator's id from context, or 0 if not
// found. Safe to use in logging where a zero value is acceptable.
func GetOperatorID(r *http.Request) int64 {
	if operator := GetOperator(r); operator != nil {
		return operator.ID
	}
	return 0
}

// GetOperatorContext returns the operator identity used by the service
// layer. The zero value means no authenticated operator.
func GetOperatorContext(r *http.Request) model.OperatorContext {
	operator := GetOperator(r)
	if operator == nil {
		return model.OperatorContext{}
	}
	return model.OperatorContext{
		ID:      operator.ID,
		IsAdmin: operator.Role == model.RoleAdmin,
	}
}

// roleLevel returns a numeric level for role hierarchy. Higher level means
// more permissions; unknown roles have no admin access.
func roleLevel(role string) int {
	switch role {
	case model.RoleAdmin:
		return 2
	case model.RoleEditor:
		return 1
	default:
		return 0
	}
}

// RequireRole creates middleware that requires a minimum operator role.
// Roles are hierarchical: admin > editor, so RequireRole(RoleEditor) admits
// both.
func RequireRole(minRole string) func(http.Handler) http.Handler {
	minLevel := roleLevel(minRole)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operator := GetOperator(r)
			if operator == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if roleLevel(operator.Role) < minLevel {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"operator_id", operator.ID,
					"operator_role", operator.Role,
					"required_role", minRole,
				)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin creates middleware that requires the admin role.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(model.RoleAdmin)
}
