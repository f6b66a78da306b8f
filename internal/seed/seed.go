// Package seed provisions the initial records required for a usable system
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/app/repositories"
	"github.com/amitk/attendance/internal/pkg/auth"
)

// Default admin credentials. The password is bcrypt-hashed before it is
// stored; rotate it after first login.
const (
	adminUsername = "amit"
	adminPassword = "amit@123"
	adminEmail    = "amit@example.com"
	adminFullName = "Amit Kumar"
)

// EnsureAdminUser creates the default admin account when the users table
// is empty. It is idempotent across restarts: once any user exists it
// does nothing, so a renamed or re-credentialed admin is never recreated.
func EnsureAdminUser(ctx context.Context, userRepo repositories.IUserRepository, logger zerolog.Logger) error {
	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users for admin seed: %w", err)
	}
	if count > 0 {
		logger.Debug().Int64("user_count", count).Msg("Users already present, skipping admin seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &models.User{
		Type:        "admin",
		FullName:    adminFullName,
		Username:    adminUsername,
		Password:    hashedPassword,
		Email:       adminEmail,
		SubmittedBy: "system",
		UpdatedBy:   "system",
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	logger.Info().Str("username", adminUsername).Msg("Default admin user created")
	return nil
}
