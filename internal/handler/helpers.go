// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the admin panel and the
// public frontend.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pressroomdev/pressroom/internal/render"
)

// Redirect targets and page sizes shared across handlers.
const (
	redirectLogin  = "/login"
	redirectAdmin  = "/admin/posts"
	postsPerPage   = 20
	latestPerPage  = 10
	formTimeLayout = "2006-01-02T15:04"
)

// flashAndRedirect sets a flash message and redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, target, message, flashType string) {
	renderer.SetFlash(r, message, flashType)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, target, message string) {
	flashAndRedirect(w, r, renderer, target, message, "error")
}

// logAndInternalError logs the error and writes a 500 response.
func logAndInternalError(w http.ResponseWriter, msg string, args ...any) {
	slog.Error(msg, args...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// idParam parses a numeric URL parameter. Returns 0 when missing or invalid.
func idParam(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// pageParam parses the ?page query parameter, defaulting to 1.
func pageParam(r *http.Request) int64 {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseFormTime parses an optional datetime-local form value.
func parseFormTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(formTimeLayout, value, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// optionalString returns nil for an empty form value.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// optionalID returns nil for an empty or non-positive form value.
func optionalID(value string) *int64 {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// Pagination holds pagination data for admin templates.
type Pagination struct {
	CurrentPage int64
	TotalPages  int64
	TotalItems  int64
	PerPage     int64
	HasPrev     bool
	HasNext     bool
	PrevPage    int64
	NextPage    int64
}

// buildPagination computes pagination for a listing.
func buildPagination(currentPage, totalItems, perPage int64) Pagination {
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
	}
}
