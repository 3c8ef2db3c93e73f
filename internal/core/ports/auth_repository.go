package ports

import (
	"context"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Users are provisioned out of band (see cmd/seed); the API never creates them.
type AuthRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
