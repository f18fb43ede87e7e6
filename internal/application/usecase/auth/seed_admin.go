// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// SeedAdminInput represents the seed admin account provisioned from the
// environment. There is no self-service registration.
type SeedAdminInput struct {
	Email    string
	Name     string
	Password string
}

// SeedAdminUseCase provisions the admin account on first boot.
type SeedAdminUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSeedAdminUseCase creates a new SeedAdminUseCase instance.
func NewSeedAdminUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *SeedAdminUseCase {
	return &SeedAdminUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute creates the seed admin if it does not already exist. An existing
// account is never overwritten.
func (uc *SeedAdminUseCase) Execute(ctx context.Context, input SeedAdminInput) error {
	if input.Email == "" || input.Password == "" {
		slog.Warn("admin seed skipped, email or password not configured")
		return nil
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("failed to check for seed admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	slog.Info("seed admin account created", "email", input.Email)
	return nil
}
