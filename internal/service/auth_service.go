package service

import (
	"context"
	"errors"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/apperr"
	"github.com/homelib/server/pkg/hash"
	"github.com/homelib/server/pkg/token"
)

// AuthService handles registration, credential verification and token
// issuance.
type AuthService struct {
	users       repository.UserRepository
	userService *UserService
	hasher      *hash.Hasher
	tokens      *token.Manager
}

// NewAuthService creates an auth service. Registration delegates to the user
// service so both paths share creation rules.
func NewAuthService(users repository.UserRepository, userService *UserService, hasher *hash.Hasher, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, userService: userService, hasher: hasher, tokens: tokens}
}

// SignUp registers a new user. It returns no tokens; the caller logs in
// separately.
func (s *AuthService) SignUp(ctx context.Context, in *SignUpInput) (*domain.User, error) {
	if in.Login == "" || in.Password == "" {
		return nil, apperr.ErrInvalidArgument.WithMessage("Login and password must be provided")
	}

	return s.userService.Create(ctx, &CreateUserInput{Login: in.Login, Password: in.Password})
}

// Login verifies credentials and issues a token pair. An unknown login and a
// wrong password fail identically so account existence never leaks.
func (s *AuthService) Login(ctx context.Context, in *LoginInput) (*token.Pair, error) {
	if in.Login == "" || in.Password == "" {
		return nil, apperr.ErrInvalidArgument.WithMessage("Login and password must be provided")
	}

	user, err := s.users.GetByLogin(ctx, in.Login)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}

	if err := s.hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}

	return s.tokens.GeneratePair(user.ID, user.Login)
}

// Refresh rotates a refresh token into a fresh access/refresh pair. Any
// verification failure, and a token whose user no longer exists, fail with
// Forbidden.
func (s *AuthService) Refresh(ctx context.Context, in *RefreshInput) (*token.Pair, error) {
	if in.RefreshToken == "" {
		return nil, apperr.ErrUnauthorized.WithMessage("Refresh token is required")
	}

	claims, err := s.tokens.ValidateRefresh(in.RefreshToken)
	if err != nil {
		return nil, domain.ErrBadRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, domain.ErrBadRefreshToken
		}
		return nil, err
	}

	return s.tokens.GeneratePair(user.ID, user.Login)
}

// Authenticate verifies an access token and resolves it to a live user.
// Protected routes call this through the auth middleware; every failure maps
// to Unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokens.ValidateAccess(accessToken)
	if err != nil {
		return nil, apperr.ErrUnauthorized.WithMessage("Invalid or expired token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized.WithMessage("User no longer exists")
		}
		return nil, err
	}
	return user, nil
}
