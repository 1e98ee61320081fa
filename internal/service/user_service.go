package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/repository"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// ProfileUpdateInput carries the profile fields a caller may change about
// themselves. Email, national id, password and role are not among them.
type ProfileUpdateInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address   domain.Address
}

// UserService handles account administration and self-service profiles.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns the caller's own account.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// UpdateProfile applies the allowed profile fields to the caller's account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Address = input.Address

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// ChangeRole assigns a new role to the target account. Callers may never
// change their own role, admins included.
func (s *UserService) ChangeRole(ctx context.Context, callerID, targetID string, role domain.Role) (*domain.User, error) {
	if callerID == targetID {
		return nil, apperrors.NewValidationError("cannot modify your own role", nil)
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": "must be one of customer, vendor, admin"})
	}

	if err := s.users.UpdateRole(ctx, targetID, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternalError(err)
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}
