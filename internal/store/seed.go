package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pressroomdev/pressroom/internal/auth"
	"github.com/pressroomdev/pressroom/internal/model"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// Seed creates initial data in the database.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	// Check if admin operator already exists
	_, err := queries.GetOperatorByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin operator already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin operator: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	operator, err := queries.CreateOperator(ctx, CreateOperatorParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		Name:         DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin operator: %w", err)
	}

	slog.Info("created default admin operator",
		"id", operator.ID,
		"email", operator.Email,
		"password", DefaultAdminPassword,
	)

	// A placeholder image so the featured-media dropdown is not empty on
	// fresh installs.
	if _, err := queries.CreateMedia(ctx, CreateMediaParams{
		Uuid:         uuid.New().String(),
		Filename:     "placeholder.png",
		OriginalName: "placeholder.png",
		Path:         "uploads",
		MimeType:     "image/png",
		AltText:      "Placeholder image",
		CreatedAt:    now,
	}); err != nil {
		return fmt.Errorf("creating placeholder media: %w", err)
	}

	return nil
}
