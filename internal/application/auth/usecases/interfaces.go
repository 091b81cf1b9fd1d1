package usecases

import (
	"context"

	"gestiontickets/internal/shared/authorization"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer mints and rotates session token pairs.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

// PasswordVerifier checks a plaintext password against a stored hash. It must
// fail with a cause-agnostic error so callers cannot leak why a login failed.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}
