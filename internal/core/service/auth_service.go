package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecocollect/collection-system/internal/api/metrics"
	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/ports"
)

// AuthService verifies credentials against the credential store and mints
// stateless session tokens. The distinct failure modes (unknown user, bad
// password, wrong role) are preserved here for logging; the transport layer
// collapses them into a single generic response.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, userID, password, role string) (string, *domain.User, error) {
	if userID == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Info().Str("user_id", userID).Msg("login failed: user not found")
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Info().Str("user_id", userID).Msg("login failed: password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	if role != "" && role != user.Role {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Info().Str("user_id", userID).Str("submitted_role", role).Msg("login failed: role mismatch")
		return "", nil, domain.ErrRoleMismatch
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
