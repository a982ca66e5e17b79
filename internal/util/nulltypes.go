// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions.
package util

import (
	"database/sql"
	"strconv"
	"time"
)

// NullInt64FromPtr converts a pointer to int64 into sql.NullInt64.
// Returns a valid NullInt64 if the pointer is non-nil, otherwise returns an invalid one.
func NullInt64FromPtr(ptr *int64) sql.NullInt64 {
	if ptr != nil {
		return sql.NullInt64{Int64: *ptr, Valid: true}
	}
	return sql.NullInt64{}
}

// ParseNullInt64Positive parses a string into sql.NullInt64, requiring positive values.
// Returns an invalid NullInt64 if the string is empty, cannot be parsed, or value is <= 0.
func ParseNullInt64Positive(s string) sql.NullInt64 {
	if s == "" {
		return sql.NullInt64{}
	}
	if val, err := strconv.ParseInt(s, 10, 64); err == nil && val > 0 {
		return sql.NullInt64{Int64: val, Valid: true}
	}
	return sql.NullInt64{}
}

// NullStringFromValue creates a sql.NullString from a string value.
// Returns a valid NullString if the string is non-empty, otherwise returns an invalid one.
func NullStringFromValue(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringFromPtr converts a pointer to string into sql.NullString.
// Returns a valid NullString if the pointer is non-nil, otherwise returns an invalid one.
func NullStringFromPtr(ptr *string) sql.NullString {
	if ptr != nil {
		return sql.NullString{String: *ptr, Valid: true}
	}
	return sql.NullString{}
}

// NullTimeFromPtr converts a pointer to time.Time into sql.NullTime.
// Returns a valid NullTime if the pointer is non-nil, otherwise returns an invalid one.
func NullTimeFromPtr(ptr *time.Time) sql.NullTime {
	if ptr != nil {
		return sql.NullTime{Time: *ptr, Valid: true}
	}
	return sql.NullTime{}
}

// PtrFromNullInt64 converts sql.NullInt64 into an int64 pointer.
func PtrFromNullInt64(n sql.NullInt64) *int64 {
	if n.Valid {
		v := n.Int64
		return &v
	}
	return nil
}

// PtrFromNullString converts sql.NullString into a string pointer.
func PtrFromNullString(n sql.NullString) *string {
	if n.Valid {
		v := n.String
		return &v
	}
	return nil
}

// PtrFromNullTime converts sql.NullTime into a time.Time pointer.
func PtrFromNullTime(n sql.NullTime) *time.Time {
	if n.Valid {
		v := n.Time
		return &v
	}
	return nil
}
