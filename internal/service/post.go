// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pressroomdev/pressroom/internal/cache"
	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
	"github.com/pressroomdev/pressroom/internal/util"
)

// ErrNotFound is returned when a post does not exist.
var ErrNotFound = errors.New("post not found")

// ErrEmptySlug is returned when no slug can be derived from a title, e.g. a
// title made entirely of symbols. This is a contract violation rather than a
// user-correctable validation error, so it is not part of ValidationErrors.
var ErrEmptySlug = errors.New("cannot derive a slug from the title")

// DefaultEditLockTimeout is how long an edit lock held by another operator is
// honored before being treated as expired.
const DefaultEditLockTimeout = 15 * time.Minute

// Published listing limits
const (
	minLatestPosts = 1
	maxLatestPosts = 50
)

// ValidationErrors is the full list of field problems found in one
// validation pass. It is returned as a value so callers can re-display every
// message at once alongside the operator's input.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// PostInput holds the editable fields of a post as submitted by an operator.
type PostInput struct {
	Title           string
	Content         string
	Status          string
	ToPublishAt     *time.Time
	FeaturedMediaID *int64
	MetaTitle       *string
	MetaDescription *string
}

// PostService implements the post lifecycle: create/update with slug
// uniqueness and bounded revision history, soft delete, advisory edit locks,
// and lazy promotion of scheduled drafts.
//
// The edit lock is advisory only. It gates whether the admin UI lets an
// operator open the edit form; it is not enforced by the database, and a
// writer that skips the check can still update the row.
type PostService struct {
	db      *sql.DB
	queries *store.Queries
	media   *MediaService
	events  *EventService
	cache   *cache.PostCache

	// now is the clock used for lock expiry, scheduling, and timestamps.
	now func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{
		db:      db,
		queries: store.New(db),
		media:   NewMediaService(db),
		events:  NewEventService(db),
		now:     time.Now,
	}
}

// SetCache attaches a post cache. A nil cache disables caching.
func (s *PostService) SetCache(pc *cache.PostCache) {
	s.cache = pc
}

// Validate checks the input and returns every problem found in one pass.
// excludeID, when non-nil, exempts that post from the meta-title uniqueness
// check (self-collision on update).
func (s *PostService) Validate(ctx context.Context, in PostInput, excludeID *int64) (ValidationErrors, error) {
	var errs ValidationErrors

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs = append(errs, "Title is required.")
	case utf8.RuneCountInString(title) < model.MinTitleLen:
		errs = append(errs, fmt.Sprintf("Title must be at least %d characters.", model.MinTitleLen))
	}

	content := strings.TrimSpace(in.Content)
	switch {
	case content == "":
		errs = append(errs, "Content is required.")
	case utf8.RuneCountInString(content) < model.MinContentLen:
		errs = append(errs, fmt.Sprintf("Content must be at least %d characters.", model.MinContentLen))
	}

	if !model.IsValidPostStatus(in.Status) {
		errs = append(errs, "Status must be draft or published.")
	}

	if in.ToPublishAt != nil && in.ToPublishAt.Before(s.now()) {
		errs = append(errs, "Publish date cannot be in the past.")
	}

	if in.FeaturedMediaID != nil {
		image, err := s.media.FindImageByID(ctx, *in.FeaturedMediaID)
		if err != nil {
			return nil, err
		}
		if image == nil {
			errs = append(errs, "Featured image is invalid.")
		}
	}

	if in.MetaTitle != nil {
		if utf8.RuneCountInString(*in.MetaTitle) > model.MaxMetaTitleLen {
			errs = append(errs, fmt.Sprintf("Meta title must be at most %d characters.", model.MaxMetaTitleLen))
		} else {
			taken, err := s.metaTitleExists(ctx, *in.MetaTitle, excludeID)
			if err != nil {
				return nil, err
			}
			if taken {
				errs = append(errs, "Meta title already exists, choose another.")
			}
		}
	}

	if in.MetaDescription != nil && utf8.RuneCountInString(*in.MetaDescription) > model.MaxMetaDescriptionLen {
		errs = append(errs, fmt.Sprintf("Meta description must be at most %d characters.", model.MaxMetaDescriptionLen))
	}

	return errs, nil
}

// Create validates the input, derives a unique slug from the title, and
// inserts a new active post. Returns the new post's id.
func (s *PostService) Create(ctx context.Context, op model.OperatorContext, in PostInput) (int64, error) {
	errs, err := s.Validate(ctx, in, nil)
	if err != nil {
		return 0, err
	}
	if len(errs) > 0 {
		return 0, errs
	}

	slug := util.Slugify(in.Title)
	if slug == "" {
		return 0, ErrEmptySlug
	}
	slug, err = s.uniqueSlug(ctx, s.queries, slug, nil)
	if err != nil {
		return 0, err
	}

	now := s.now()
	post, err := s.queries.CreatePost(ctx, store.CreatePostParams{
		Title:           strings.TrimSpace(in.Title),
		Content:         strings.TrimSpace(in.Content),
		Status:          in.Status,
		Slug:            slug,
		FeaturedMediaID: util.NullInt64FromPtr(in.FeaturedMediaID),
		ToPublishAt:     util.NullTimeFromPtr(in.ToPublishAt),
		MetaTitle:       util.NullStringFromPtr(in.MetaTitle),
		MetaDescription: util.NullStringFromPtr(in.MetaDescription),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx)
	_ = s.events.LogInfo(ctx, model.EventCategoryPost, "post created", &op.ID, map[string]any{
		"post_id": post.ID,
		"slug":    post.Slug,
	})

	return post.ID, nil
}

// Update validates the input, snapshots the post's pre-update state as a
// revision, prunes history to the retention cap, applies the new fields, and
// releases the edit lock. Snapshot, prune, write, and unlock run in a single
// transaction.
func (s *PostService) Update(ctx context.Context, op model.OperatorContext, id int64, in PostInput) error {
	post, err := s.queries.GetPost(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	errs, err := s.Validate(ctx, in, &id)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}

	slug := util.Slugify(in.Title)
	if slug == "" {
		return ErrEmptySlug
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := s.queries.WithTx(tx)
	now := s.now()

	// Snapshot what-used-to-be-true before overwriting it.
	if _, err := qtx.CreatePostRevision(ctx, store.CreatePostRevisionParams{
		PostID:          post.ID,
		Title:           post.Title,
		Content:         post.Content,
		Status:          post.Status,
		FeaturedMediaID: post.FeaturedMediaID,
		ToPublishAt:     post.ToPublishAt,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		CreatedAt:       now,
	}); err != nil {
		return fmt.Errorf("snapshotting post %d: %w", id, err)
	}

	if err := qtx.PrunePostRevisions(ctx, store.PrunePostRevisionsParams{
		PostID:   post.ID,
		PostID_2: post.ID,
		Limit:    model.MaxRevisionsPerPost,
	}); err != nil {
		return fmt.Errorf("pruning revisions for post %d: %w", id, err)
	}

	slug, err = s.uniqueSlug(ctx, qtx, slug, &id)
	if err != nil {
		return err
	}

	if err := qtx.UpdatePost(ctx, store.UpdatePostParams{
		Title:           strings.TrimSpace(in.Title),
		Content:         strings.TrimSpace(in.Content),
		Status:          in.Status,
		Slug:            slug,
		FeaturedMediaID: util.NullInt64FromPtr(in.FeaturedMediaID),
		ToPublishAt:     util.NullTimeFromPtr(in.ToPublishAt),
		MetaTitle:       util.NullStringFromPtr(in.MetaTitle),
		MetaDescription: util.NullStringFromPtr(in.MetaDescription),
		UpdatedAt:       now,
		ID:              id,
	}); err != nil {
		return fmt.Errorf("updating post %d: %w", id, err)
	}

	// A successful save releases the edit lock.
	if err := qtx.UnlockPost(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	_ = s.events.LogInfo(ctx, model.EventCategoryPost, "post updated", &op.ID, map[string]any{
		"post_id": id,
		"slug":    slug,
	})

	return nil
}

// Enable reactivates a soft-deleted post.
func (s *PostService) Enable(ctx context.Context, op model.OperatorContext, id int64) error {
	return s.setActive(ctx, op, id, true)
}

// Disable soft-deletes a post. The row and its revisions are preserved.
func (s *PostService) Disable(ctx context.Context, op model.OperatorContext, id int64) error {
	return s.setActive(ctx, op, id, false)
}

func (s *PostService) setActive(ctx context.Context, op model.OperatorContext, id int64, active bool) error {
	if _, err := s.queries.GetPost(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.queries.SetPostActive(ctx, store.SetPostActiveParams{
		IsActive:  active,
		UpdatedAt: s.now(),
		ID:        id,
	}); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	message := "post disabled"
	if active {
		message = "post enabled"
	}
	_ = s.events.LogInfo(ctx, model.EventCategoryPost, message, &op.ID, map[string]any{"post_id": id})
	return nil
}

// HardDelete removes a post and, by cascade, its revisions. Not exposed
// through the admin flows; Disable is the normal deletion path.
func (s *PostService) HardDelete(ctx context.Context, id int64) error {
	if err := s.queries.DeletePost(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// UniqueSlugFor resolves base to a slug that collides with no other post,
// appending -2, -3, … as needed. excludeID exempts a post's own slug so a
// no-op rename keeps its slug unchanged.
func (s *PostService) UniqueSlugFor(ctx context.Context, base string, excludeID *int64) (string, error) {
	return s.uniqueSlug(ctx, s.queries, base, excludeID)
}

func (s *PostService) uniqueSlug(ctx context.Context, q *store.Queries, base string, excludeID *int64) (string, error) {
	slug := base
	for counter := 2; ; counter++ {
		var count int64
		var err error
		if excludeID != nil {
			count, err = q.CountPostsBySlugExcluding(ctx, store.CountPostsBySlugExcludingParams{
				Slug: slug,
				ID:   *excludeID,
			})
		} else {
			count, err = q.CountPostsBySlug(ctx, slug)
		}
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *PostService) metaTitleExists(ctx context.Context, metaTitle string, excludeID *int64) (bool, error) {
	var count int64
	var err error
	if excludeID != nil {
		count, err = s.queries.CountPostsByMetaTitleExcluding(ctx, store.CountPostsByMetaTitleExcludingParams{
			MetaTitle: sql.NullString{String: metaTitle, Valid: true},
			ID:        *excludeID,
		})
	} else {
		count, err = s.queries.CountPostsByMetaTitle(ctx, sql.NullString{String: metaTitle, Valid: true})
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsLocked reports whether a different operator holds an unexpired edit lock
// on the post. A lock older than timeout is treated as expired; it is not
// cleared here.
func (s *PostService) IsLocked(ctx context.Context, postID, operatorID int64, timeout time.Duration) (bool, error) {
	post, err := s.queries.GetPost(ctx, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	if !post.LockedBy.Valid || !post.LockedAt.Valid {
		return false, nil
	}
	if post.LockedBy.Int64 == operatorID {
		return false, nil
	}
	return s.now().Sub(post.LockedAt.Time) < timeout, nil
}

// AcquireLock unconditionally marks the post as being edited by the
// operator. Last writer wins; callers are expected to check IsLocked first.
func (s *PostService) AcquireLock(ctx context.Context, postID, operatorID int64) error {
	return s.queries.LockPost(ctx, store.LockPostParams{
		LockedBy: sql.NullInt64{Int64: operatorID, Valid: true},
		LockedAt: sql.NullTime{Time: s.now(), Valid: true},
		ID:       postID,
	})
}

// ReleaseLock clears the edit lock on a post.
func (s *PostService) ReleaseLock(ctx context.Context, postID int64) error {
	return s.queries.UnlockPost(ctx, postID)
}

// ReleaseLocksForOperator clears every lock the operator holds. Called when
// the operator lands on the post listing, so navigating away frees locks
// without an explicit close action.
func (s *PostService) ReleaseLocksForOperator(ctx context.Context, operatorID int64) error {
	return s.queries.UnlockPostsByOperator(ctx, sql.NullInt64{Int64: operatorID, Valid: true})
}

// Sweep promotes every active draft whose scheduled publish time has passed
// and returns the number promoted. There is no background requirement:
// every read path calls Sweep first, so promotion is driven by read traffic.
func (s *PostService) Sweep(ctx context.Context) (int64, error) {
	now := s.now()
	promoted, err := s.queries.PromoteScheduledPosts(ctx, store.PromoteScheduledPostsParams{
		UpdatedAt:   now,
		ToPublishAt: sql.NullTime{Time: now, Valid: true},
	})
	if err != nil {
		return 0, err
	}
	if promoted > 0 {
		s.cache.Invalidate(ctx)
		_ = s.events.LogInfo(ctx, model.EventCategoryPost, "scheduled posts published", nil, map[string]any{
			"count": promoted,
		})
	}
	return promoted, nil
}

// ListAll returns every post, newest first, after sweeping scheduled drafts.
func (s *PostService) ListAll(ctx context.Context) ([]store.Post, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}
	return s.queries.ListPosts(ctx)
}

// ListPage returns one page of posts plus the total count, newest first.
func (s *PostService) ListPage(ctx context.Context, limit, offset int64) ([]store.Post, int64, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, 0, err
	}
	total, err := s.queries.CountPosts(ctx)
	if err != nil {
		return nil, 0, err
	}
	posts, err := s.queries.ListPostsPage(ctx, store.ListPostsPageParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// FindByID returns a post by id after sweeping scheduled drafts.
func (s *PostService) FindByID(ctx context.Context, id int64) (store.Post, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return store.Post{}, err
	}
	post, err := s.queries.GetPost(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Post{}, ErrNotFound
	}
	return post, err
}

// FindPublishedBySlug returns a published, active post by slug.
func (s *PostService) FindPublishedBySlug(ctx context.Context, slug string) (store.Post, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return store.Post{}, err
	}

	if post, ok := s.cache.GetBySlug(ctx, slug); ok {
		return post, nil
	}

	post, err := s.queries.GetPublishedPostBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Post{}, ErrNotFound
	}
	if err != nil {
		return store.Post{}, err
	}

	s.cache.SetBySlug(ctx, slug, post)
	return post, nil
}

// PublishedAll returns every published, active post, newest first.
func (s *PostService) PublishedAll(ctx context.Context) ([]store.Post, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	if posts, ok := s.cache.GetPublished(ctx); ok {
		return posts, nil
	}

	posts, err := s.queries.ListPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetPublished(ctx, posts)
	return posts, nil
}

// PublishedLatest returns the most recent published, active posts. The limit
// is clamped to [1, 50].
func (s *PostService) PublishedLatest(ctx context.Context, limit int64) ([]store.Post, error) {
	if limit < minLatestPosts {
		limit = minLatestPosts
	}
	if limit > maxLatestPosts {
		limit = maxLatestPosts
	}

	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	if posts, ok := s.cache.GetLatest(ctx, limit); ok {
		return posts, nil
	}

	posts, err := s.queries.ListLatestPublishedPosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.cache.SetLatest(ctx, limit, posts)
	return posts, nil
}

// ListRevisions returns a post's retained revisions, newest first.
func (s *PostService) ListRevisions(ctx context.Context, postID int64) ([]store.PostRevision, error) {
	return s.queries.ListPostRevisions(ctx, postID)
}

// FindRevision returns a single revision by id.
func (s *PostService) FindRevision(ctx context.Context, revisionID int64) (store.PostRevision, error) {
	rev, err := s.queries.GetPostRevision(ctx, revisionID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.PostRevision{}, ErrNotFound
	}
	return rev, err
}

// RestoreRevision overwrites the parent post's editable fields with the
// revision's snapshot, leaving id and slug untouched. No revision is created
// for the restore itself, so a restore cannot be undone except by restoring
// an older revision that is still retained.
//
// A missing revision id is a silent no-op; the admin UI has always treated
// it that way.
func (s *PostService) RestoreRevision(ctx context.Context, op model.OperatorContext, revisionID int64) error {
	rev, err := s.queries.GetPostRevision(ctx, revisionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := s.queries.WithTx(tx)
	if err := qtx.UpdatePostEditable(ctx, store.UpdatePostEditableParams{
		Title:           rev.Title,
		Content:         rev.Content,
		Status:          rev.Status,
		FeaturedMediaID: rev.FeaturedMediaID,
		ToPublishAt:     rev.ToPublishAt,
		MetaTitle:       rev.MetaTitle,
		MetaDescription: rev.MetaDescription,
		UpdatedAt:       s.now(),
		ID:              rev.PostID,
	}); err != nil {
		return fmt.Errorf("restoring revision %d: %w", revisionID, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	_ = s.events.LogInfo(ctx, model.EventCategoryPost, "post revision restored", &op.ID, map[string]any{
		"post_id":     rev.PostID,
		"revision_id": revisionID,
	})

	return nil
}
