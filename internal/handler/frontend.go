// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/pressroomdev/pressroom/internal/render"
	"github.com/pressroomdev/pressroom/internal/service"
	"github.com/pressroomdev/pressroom/internal/store"
)

// htmlSanitizer strips dangerous markup from rendered post content.
var htmlSanitizer = bluemonday.UGCPolicy()

// FrontendHandler serves the public pages.
type FrontendHandler struct {
	posts    *service.PostService
	renderer *render.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(posts *service.PostService, renderer *render.Renderer) *FrontendHandler {
	return &FrontendHandler{
		posts:    posts,
		renderer: renderer,
	}
}

// postView is a published post prepared for template rendering.
type postView struct {
	Post store.Post
	HTML template.HTML
}

// Home shows the latest published posts.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.PublishedLatest(r.Context(), latestPerPage)
	if err != nil {
		logAndInternalError(w, "loading latest posts", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/home", render.TemplateData{Title: "Latest Posts", Data: posts}); err != nil {
		logAndInternalError(w, "rendering home", "error", err)
	}
}

// Posts shows every published post.
func (h *FrontendHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.PublishedAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading published posts", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/posts", render.TemplateData{Title: "All Posts", Data: posts}); err != nil {
		logAndInternalError(w, "rendering posts", "error", err)
	}
}

// Post shows a single published post by slug, with its Markdown content
// rendered and sanitized.
func (h *FrontendHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.FindPublishedBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logAndInternalError(w, "loading post", "error", err, "slug", slug)
		return
	}

	view := postView{
		Post: post,
		HTML: renderMarkdown(post.Content),
	}
	if err := h.renderer.Render(w, r, "frontend/post", render.TemplateData{Title: post.Title, Data: view}); err != nil {
		logAndInternalError(w, "rendering post", "error", err)
	}
}

// renderMarkdown converts Markdown to sanitized HTML.
func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		// Fall back to the sanitized raw text.
		return template.HTML(htmlSanitizer.Sanitize(content)) // #nosec G203
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())) // #nosec G203
}
