// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/pressroomdev/pressroom/internal/store"
)

// MediaService resolves media references for featured-image validation and
// the edit form's image picker. Upload and processing live outside this
// application.
type MediaService struct {
	queries *store.Queries
}

// NewMediaService creates a new media service.
func NewMediaService(db *sql.DB) *MediaService {
	return &MediaService{queries: store.New(db)}
}

// FindImageByID returns the media row for id when it exists and is an image,
// nil otherwise.
func (s *MediaService) FindImageByID(ctx context.Context, id int64) (*store.Medium, error) {
	media, err := s.queries.GetMediaByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(media.MimeType, "image/") {
		return nil, nil
	}
	return &media, nil
}

// ListImages returns all image media rows, newest first.
func (s *MediaService) ListImages(ctx context.Context) ([]store.Medium, error) {
	all, err := s.queries.ListMedia(ctx)
	if err != nil {
		return nil, err
	}
	images := make([]store.Medium, 0, len(all))
	for _, m := range all {
		if strings.HasPrefix(m.MimeType, "image/") {
			images = append(images, m)
		}
	}
	return images, nil
}

// URL returns the public URL for a media row.
func (s *MediaService) URL(m store.Medium) string {
	return "/" + m.Path + "/" + m.Filename
}
