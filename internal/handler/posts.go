// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pressroomdev/pressroom/internal/middleware"
	"github.com/pressroomdev/pressroom/internal/render"
	"github.com/pressroomdev/pressroom/internal/service"
	"github.com/pressroomdev/pressroom/internal/store"
	"github.com/pressroomdev/pressroom/internal/util"
)

// PostHandler handles the admin post management routes.
type PostHandler struct {
	posts       *service.PostService
	media       *service.MediaService
	renderer    *render.Renderer
	lockTimeout time.Duration
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService, media *service.MediaService, renderer *render.Renderer, lockTimeout time.Duration) *PostHandler {
	if lockTimeout <= 0 {
		lockTimeout = service.DefaultEditLockTimeout
	}
	return &PostHandler{
		posts:       posts,
		media:       media,
		renderer:    renderer,
		lockTimeout: lockTimeout,
	}
}

// postFormData is the template payload for the post form.
type postFormData struct {
	Post        store.Post
	Form        service.PostInput
	ToPublishAt string
	Images      []store.Medium
	IsEdit      bool
	IsAdmin     bool
}

// postListData is the template payload for the post listing.
type postListData struct {
	Posts      []store.Post
	Pagination Pagination
}

// List shows the paginated post listing. Landing here releases every edit
// lock the operator holds, so leaving an edit form frees the post.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)

	if err := h.posts.ReleaseLocksForOperator(r.Context(), op.ID); err != nil {
		logAndInternalError(w, "releasing edit locks", "error", err, "operator_id", op.ID)
		return
	}

	page := pageParam(r)
	posts, total, err := h.posts.ListPage(r.Context(), postsPerPage, (page-1)*postsPerPage)
	if err != nil {
		logAndInternalError(w, "listing posts", "error", err)
		return
	}

	data := postListData{
		Posts:      posts,
		Pagination: buildPagination(page, total, postsPerPage),
	}
	if err := h.renderer.Render(w, r, "admin/posts", render.TemplateData{Title: "Posts", Data: data}); err != nil {
		logAndInternalError(w, "rendering post list", "error", err)
	}
}

// NewForm renders the empty post form.
func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)

	images, err := h.media.ListImages(r.Context())
	if err != nil {
		logAndInternalError(w, "listing images", "error", err)
		return
	}

	data := postFormData{
		Form:    service.PostInput{Status: "draft"},
		Images:  images,
		IsAdmin: op.IsAdmin,
	}
	if err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{Title: "New Post", Data: data}); err != nil {
		logAndInternalError(w, "rendering post form", "error", err)
	}
}

// Create handles the new-post form submission. Validation failures re-render
// the form with every message and the submitted values preserved.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)

	in, err := parsePostInput(r, op.IsAdmin)
	if err != nil {
		flashError(w, r, h.renderer, "/admin/posts/new", "Invalid form data.")
		return
	}

	id, err := h.posts.Create(r.Context(), op, in)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.renderForm(w, r, postFormData{Form: in, ToPublishAt: r.FormValue("to_publish_at"), IsAdmin: op.IsAdmin}, verrs)
		case errors.Is(err, service.ErrEmptySlug):
			h.renderForm(w, r, postFormData{Form: in, ToPublishAt: r.FormValue("to_publish_at"), IsAdmin: op.IsAdmin},
				[]string{"Title must contain at least one letter or digit."})
		default:
			logAndInternalError(w, "creating post", "error", err)
		}
		return
	}

	flashAndRedirect(w, r, h.renderer, redirectAdmin, fmt.Sprintf("Post #%d created.", id), "success")
}

// EditForm renders the edit form. If another operator holds an unexpired
// lock, editing is refused; otherwise the lock is (re)acquired for this
// operator.
func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)
	id := idParam(r, "id")
	if id == 0 {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logAndInternalError(w, "loading post", "error", err, "post_id", id)
		return
	}

	locked, err := h.posts.IsLocked(r.Context(), id, op.ID, h.lockTimeout)
	if err != nil {
		logAndInternalError(w, "checking edit lock", "error", err, "post_id", id)
		return
	}
	if locked {
		flashError(w, r, h.renderer, redirectAdmin, "This post is being edited by another operator.")
		return
	}

	if err := h.posts.AcquireLock(r.Context(), id, op.ID); err != nil {
		logAndInternalError(w, "acquiring edit lock", "error", err, "post_id", id)
		return
	}

	images, err := h.media.ListImages(r.Context())
	if err != nil {
		logAndInternalError(w, "listing images", "error", err)
		return
	}

	data := postFormData{
		Post:    post,
		Form:    inputFromPost(post),
		Images:  images,
		IsEdit:  true,
		IsAdmin: op.IsAdmin,
	}
	if post.ToPublishAt.Valid {
		data.ToPublishAt = post.ToPublishAt.Time.Format(formTimeLayout)
	}
	if err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{Title: "Edit Post", Data: data}); err != nil {
		logAndInternalError(w, "rendering post form", "error", err)
	}
}

// Update handles the edit form submission.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)
	id := idParam(r, "id")
	if id == 0 {
		http.NotFound(w, r)
		return
	}

	in, err := parsePostInput(r, op.IsAdmin)
	if err != nil {
		flashError(w, r, h.renderer, fmt.Sprintf("/admin/posts/%d/edit", id), "Invalid form data.")
		return
	}

	// Non-admins cannot change meta fields; carry the stored values through
	// so an editor's save does not wipe them.
	if !op.IsAdmin {
		post, err := h.posts.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			logAndInternalError(w, "loading post", "error", err, "post_id", id)
			return
		}
		in.MetaTitle = util.PtrFromNullString(post.MetaTitle)
		in.MetaDescription = util.PtrFromNullString(post.MetaDescription)
	}

	if err := h.posts.Update(r.Context(), op, id, in); err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.renderEditFormWithErrors(w, r, id, in, verrs)
		case errors.Is(err, service.ErrEmptySlug):
			h.renderEditFormWithErrors(w, r, id, in, []string{"Title must contain at least one letter or digit."})
		case errors.Is(err, service.ErrNotFound):
			http.NotFound(w, r)
		default:
			logAndInternalError(w, "updating post", "error", err, "post_id", id)
		}
		return
	}

	flashAndRedirect(w, r, h.renderer, redirectAdmin, fmt.Sprintf("Post #%d updated.", id), "success")
}

// Enable reactivates a soft-deleted post.
func (h *PostHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Disable soft-deletes a post.
func (h *PostHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *PostHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	op := middleware.GetOperatorContext(r)
	id := idParam(r, "id")
	if id == 0 {
		http.NotFound(w, r)
		return
	}

	var err error
	var message string
	if active {
		err = h.posts.Enable(r.Context(), op, id)
		message = fmt.Sprintf("Post #%d enabled.", id)
	} else {
		err = h.posts.Disable(r.Context(), op, id)
		message = fmt.Sprintf("Post #%d disabled.", id)
	}

	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logAndInternalError(w, "toggling post", "error", err, "post_id", id)
		return
	}

	flashAndRedirect(w, r, h.renderer, redirectAdmin, message, "success")
}

// revisionListData is the template payload for the revision listing.
type revisionListData struct {
	Post      store.Post
	Revisions []store.PostRevision
}

// Revisions shows a post's retained revision history.
func (h *PostHandler) Revisions(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logAndInternalError(w, "loading post", "error", err, "post_id", id)
		return
	}

	revisions, err := h.posts.ListRevisions(r.Context(), id)
	if err != nil {
		logAndInternalError(w, "listing revisions", "error", err, "post_id", id)
		return
	}

	data := revisionListData{Post: post, Revisions: revisions}
	if err := h.renderer.Render(w, r, "admin/revisions", render.TemplateData{Title: "Revisions", Data: data}); err != nil {
		logAndInternalError(w, "rendering revisions", "error", err)
	}
}

// RestoreRevision overwrites the post with a revision snapshot. A stale
// revision id, e.g. one pruned between page load and submit, is treated as a
// success so the operator just sees the current state again.
func (h *PostHandler) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorContext(r)
	postID := idParam(r, "id")
	revisionID := idParam(r, "revisionID")
	if postID == 0 || revisionID == 0 {
		http.NotFound(w, r)
		return
	}

	if err := h.posts.RestoreRevision(r.Context(), op, revisionID); err != nil {
		logAndInternalError(w, "restoring revision", "error", err, "revision_id", revisionID)
		return
	}

	flashAndRedirect(w, r, h.renderer, fmt.Sprintf("/admin/posts/%d/revisions", postID), "Revision restored.", "success")
}

func (h *PostHandler) renderForm(w http.ResponseWriter, r *http.Request, data postFormData, errs []string) {
	images, err := h.media.ListImages(r.Context())
	if err == nil {
		data.Images = images
	}

	title := "New Post"
	if data.IsEdit {
		title = "Edit Post"
	}
	if err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{
		Title:  title,
		Data:   data,
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "rendering post form", "error", err)
	}
}

func (h *PostHandler) renderEditFormWithErrors(w http.ResponseWriter, r *http.Request, id int64, in service.PostInput, errs []string) {
	op := middleware.GetOperatorContext(r)

	post, err := h.posts.FindByID(r.Context(), id)
	if err != nil {
		logAndInternalError(w, "loading post", "error", err, "post_id", id)
		return
	}

	h.renderForm(w, r, postFormData{
		Post:        post,
		Form:        in,
		ToPublishAt: r.FormValue("to_publish_at"),
		IsEdit:      true,
		IsAdmin:     op.IsAdmin,
	}, errs)
}

// parsePostInput extracts the post fields from the submitted form. Meta
// fields are admin-only and dropped for other roles.
func parsePostInput(r *http.Request, isAdmin bool) (service.PostInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.PostInput{}, err
	}

	in := service.PostInput{
		Title:           r.FormValue("title"),
		Content:         r.FormValue("content"),
		Status:          r.FormValue("status"),
		ToPublishAt:     parseFormTime(r.FormValue("to_publish_at")),
		FeaturedMediaID: optionalID(r.FormValue("featured_media_id")),
	}
	if isAdmin {
		in.MetaTitle = optionalString(r.FormValue("meta_title"))
		in.MetaDescription = optionalString(r.FormValue("meta_description"))
	}
	return in, nil
}

// inputFromPost converts a stored post back into form values.
func inputFromPost(post store.Post) service.PostInput {
	return service.PostInput{
		Title:           post.Title,
		Content:         post.Content,
		Status:          post.Status,
		ToPublishAt:     util.PtrFromNullTime(post.ToPublishAt),
		FeaturedMediaID: util.PtrFromNullInt64(post.FeaturedMediaID),
		MetaTitle:       util.PtrFromNullString(post.MetaTitle),
		MetaDescription: util.PtrFromNullString(post.MetaDescription),
	}
}
