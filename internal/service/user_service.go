// Package service implements the business rules over the repositories:
// validation, the referential integrity rule on deletes, favorites
// aggregation, and authentication.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/pkg/hash"
)

// UserService manages user accounts.
type UserService struct {
	users  repository.UserRepository
	hasher *hash.Hasher
}

// NewUserService creates a user service.
func NewUserService(users repository.UserRepository, hasher *hash.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Create registers a new user with a hashed password. The login must not be
// taken.
func (s *UserService) Create(ctx context.Context, in *CreateUserInput) (*domain.User, error) {
	if in.Login == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           domain.NewID(),
		Login:        in.Login,
		PasswordHash: hashed,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword replaces the user's password after verifying the old one,
// bumping the version counter.
func (s *UserService) UpdatePassword(ctx context.Context, id string, in *UpdatePasswordInput) (*domain.User, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	if in.OldPassword == "" || in.NewPassword == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Verify(in.OldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, domain.ErrWrongOldPassword
		}
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = hashed
	user.Version++
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. Nothing references users, so there is no cascade.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
