// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic for the admin panel, including the
// post lifecycle core and event logging for audit trails.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
)

// EventService provides event logging functionality.
type EventService struct {
	queries *store.Queries

	// now is the clock used for event timestamps.
	now func() time.Time
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{
		queries: store.New(db),
		now:     time.Now,
	}
}

// LogEvent creates a new event log entry.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, operatorID *int64, metadata map[string]any) error {
	var nullOperatorID sql.NullInt64
	if operatorID != nil {
		nullOperatorID = sql.NullInt64{Int64: *operatorID, Valid: true}
	}

	metadataJSON := "{}"
	if metadata != nil {
		jsonBytes, err := json.Marshal(metadata)
		if err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	_, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:      level,
		Category:   category,
		Message:    message,
		OperatorID: nullOperatorID,
		Metadata:   metadataJSON,
		CreatedAt:  s.now(),
	})
	if err != nil {
		log.Printf("Failed to log event: %v", err)
		return err
	}

	return nil
}

// LogInfo logs an info-level event.
func (s *EventService) LogInfo(ctx context.Context, category, message string, operatorID *int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelInfo, category, message, operatorID, metadata)
}

// LogWarning logs a warning-level event.
func (s *EventService) LogWarning(ctx context.Context, category, message string, operatorID *int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelWarning, category, message, operatorID, metadata)
}

// LogError logs an error-level event.
func (s *EventService) LogError(ctx context.Context, category, message string, operatorID *int64, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelError, category, message, operatorID, metadata)
}

// RecentEvents returns the most recent events, newest first.
func (s *EventService) RecentEvents(ctx context.Context, limit int64) ([]store.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queries.ListRecentEvents(ctx, limit)
}
