package usecases

import (
	"context"
	"strings"

	"gestiontickets/internal/domain/user"
	"gestiontickets/internal/shared/authorization"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	Email        string
	Role         authorization.UserRole
	MemberID     *uint
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute authenticates the account. Unknown email and wrong password both
// yield the same generic unauthorized error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	account, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, err
	}

	if err := uc.verifier.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue session tokens")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role())

	return &LoginResult{
		UserID:       account.ID(),
		Email:        account.Email(),
		Role:         account.Role(),
		MemberID:     account.MemberID(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
