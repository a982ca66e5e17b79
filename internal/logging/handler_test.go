package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "pressroom-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})

	return db
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func latestEvents(t *testing.T, db *sql.DB) []store.Event {
	t.Helper()
	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	return events
}

func TestEventLogHandler_ErrorLevel(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Error("database connection failed", "host", "localhost", "port", 5432)

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Level != model.EventLevelError {
		t.Errorf("Level = %q, want %q", events[0].Level, model.EventLevelError)
	}
	if events[0].Message != "database connection failed" {
		t.Errorf("Message = %q", events[0].Message)
	}
}

func TestEventLogHandler_InfoNotCaptured(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Info("server started", "port", 8080)

	if events := latestEvents(t, db); len(events) != 0 {
		t.Errorf("expected 0 events for INFO level, got %d", len(events))
	}
}

func TestEventLogHandler_CustomLevel(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandlerWithLevel(discardHandler{}, db, slog.LevelInfo))

	logger.Info("server started", "port", 8080)

	if events := latestEvents(t, db); len(events) != 1 {
		t.Errorf("expected 1 event with custom INFO level, got %d", len(events))
	}
}

func TestEventLogHandler_CategoryInference(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	testCases := []struct {
		message          string
		expectedCategory string
	}{
		{"login attempt blocked", model.EventCategoryAuth},
		{"post revision prune failed", model.EventCategoryPost},
		{"cache invalidation failed", model.EventCategoryCache},
		{"unknown error occurred", model.EventCategorySystem},
	}

	for _, tc := range testCases {
		_, _ = db.Exec("DELETE FROM events")

		logger.Error(tc.message)

		events := latestEvents(t, db)
		if len(events) != 1 {
			t.Errorf("message %q: expected 1 event, got %d", tc.message, len(events))
			continue
		}
		if events[0].Category != tc.expectedCategory {
			t.Errorf("message %q: Category = %q, want %q", tc.message, events[0].Category, tc.expectedCategory)
		}
	}
}

func TestEventLogHandler_ExplicitCategory(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Error("something happened", "category", model.EventCategoryPost)

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Category != model.EventCategoryPost {
		t.Errorf("Category = %q, want explicit %q", events[0].Category, model.EventCategoryPost)
	}
}

func TestEventLogHandler_MetadataExtraction(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Error("request failed",
		"status_code", 500,
		"path", "/admin/posts",
	)

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	metadata := events[0].Metadata
	if !strings.Contains(metadata, "status_code") || !strings.Contains(metadata, "path") {
		t.Errorf("metadata missing expected keys: %s", metadata)
	}
}

func TestEventLogHandler_WithAttrs(t *testing.T) {
	db := testDB(t)
	handler := NewEventLogHandler(discardHandler{}, db)
	logger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("service", "admin")}))

	logger.Error("service error")

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Message != "service error" {
		t.Errorf("Message = %q", events[0].Message)
	}
}

func TestEscapeJSON(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{`hello`, `hello`},
		{`hello "world"`, `hello \"world\"`},
		{`path\to\file`, `path\\to\\file`},
		{"line1\nline2", `line1\nline2`},
		{"col1\tcol2", `col1\tcol2`},
	}

	for _, tc := range testCases {
		if got := escapeJSON(tc.input); got != tc.expected {
			t.Errorf("escapeJSON(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestSlogLevelToEventLevel(t *testing.T) {
	testCases := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, model.EventLevelInfo},
		{slog.LevelInfo, model.EventLevelInfo},
		{slog.LevelWarn, model.EventLevelWarning},
		{slog.LevelError, model.EventLevelError},
		{slog.LevelError + 4, model.EventLevelError},
	}

	for _, tc := range testCases {
		if got := slogLevelToEventLevel(tc.level); got != tc.expected {
			t.Errorf("slogLevelToEventLevel(%v) = %q, want %q", tc.level, got, tc.expected)
		}
	}
}
