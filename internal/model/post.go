// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Post statuses
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// ValidPostStatuses contains all valid post statuses.
var ValidPostStatuses = []string{PostStatusDraft, PostStatusPublished}

// Validation limits for post fields.
const (
	MinTitleLen           = 3
	MinContentLen         = 10
	MaxMetaTitleLen       = 70
	MaxMetaDescriptionLen = 160
)

// MaxRevisionsPerPost is the number of revisions retained per post.
// Older revisions are evicted, oldest first.
const MaxRevisionsPerPost = 3

// IsValidPostStatus returns true if the given status is a known post status.
func IsValidPostStatus(status string) bool {
	for _, s := range ValidPostStatuses {
		if s == status {
			return true
		}
	}
	return false
}
