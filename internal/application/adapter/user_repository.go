// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// UserRepository defines the interface for admin account persistence operations.
type UserRepository interface {
	// Create creates a new admin account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves an admin account by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves an admin account by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if an admin account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
