package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pressroomdev/pressroom/internal/model"
	"github.com/pressroomdev/pressroom/internal/store"
)

func newTestEventService(t *testing.T) (*EventService, *fakeClock) {
	t.Helper()

	f, err := os.CreateTemp("", "pressroom-events-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	clock := &fakeClock{t: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	svc := NewEventService(db)
	svc.now = clock.now
	return svc, clock
}

func TestLogEvent_StampsWithInjectedClock(t *testing.T) {
	svc, clock := newTestEventService(t)
	ctx := context.Background()

	if err := svc.LogInfo(ctx, model.EventCategoryPost, "first", nil, nil); err != nil {
		t.Fatalf("LogInfo: %v", err)
	}

	clock.advance(42 * time.Minute)
	if err := svc.LogWarning(ctx, model.EventCategoryAuth, "second", nil, map[string]any{"email": "x@example.com"}); err != nil {
		t.Fatalf("LogWarning: %v", err)
	}

	events, err := svc.RecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	// Newest first
	if events[0].Message != "second" {
		t.Errorf("events[0].Message = %q, want %q", events[0].Message, "second")
	}
	if !events[0].CreatedAt.Equal(clock.t) {
		t.Errorf("events[0].CreatedAt = %v, want %v", events[0].CreatedAt, clock.t)
	}
	if !events[1].CreatedAt.Equal(clock.t.Add(-42 * time.Minute)) {
		t.Errorf("events[1].CreatedAt = %v, want %v", events[1].CreatedAt, clock.t.Add(-42*time.Minute))
	}
}
