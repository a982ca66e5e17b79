// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the scheduled-post sweep on a cron cadence. The
// sweep itself is lazy and runs on every read, so this is an optional
// backstop for deployments with little read traffic.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pressroomdev/pressroom/internal/service"
)

// Scheduler periodically promotes scheduled drafts to published.
type Scheduler struct {
	posts  *service.PostService
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(posts *service.PostService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		posts:  posts,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the sweep job with the given cron schedule, e.g.
// "* * * * *" for every minute, and starts the cron loop.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.runSweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "schedule", schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	promoted, err := s.posts.Sweep(ctx)
	if err != nil {
		s.logger.Error("scheduled sweep failed", "error", err)
		return
	}
	if promoted > 0 {
		s.logger.Info("scheduled posts published", "count", promoted)
	}
}
