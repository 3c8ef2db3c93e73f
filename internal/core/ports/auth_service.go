package ports

import (
	"context"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies the (userID, password, role) triple and returns a signed
	// session token. Role is optional; when submitted it must match the stored
	// role.
	Login(ctx context.Context, userID, password, role string) (string, *domain.User, error)
}
