package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ec-shop/storefront-api/internal/auth"
	"github.com/ec-shop/storefront-api/internal/domain"
	"github.com/ec-shop/storefront-api/internal/repository"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// Session bundles the credentials returned by login and register.
type Session struct {
	Token     string
	CSRFToken string
	ExpiresAt time.Time
}

// RegisterInput carries validated registration data.
type RegisterInput struct {
	FirstName string
	LastName  string
	CI        string
	Phone     string
	Email     string
	Password  string
	Address   domain.Address
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokenMgr *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokenMgr: tokenMgr, bcryptCost: bcryptCost}
}

// Register creates a customer account. Email and national id are unique;
// either colliding yields a conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *Session, error) {
	exists, err := s.users.ExistsByEmailOrCI(ctx, input.Email, input.CI)
	if err != nil {
		return nil, nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, nil, apperrors.NewConflict("email or national id already registered")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CI:           input.CI,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
		Address:      input.Address,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, apperrors.NewInternalError(err)
	}

	session, err := s.newSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login authenticates by email and password. Unknown accounts burn a dummy
// hash comparison so the response time matches the wrong-password path, and
// both cases return the same generic unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.DummyCompare(password)
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	session, err := s.newSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) newSession(user *domain.User) (*Session, error) {
	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	csrfToken, err := auth.NewCSRFToken()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{Token: token, CSRFToken: csrfToken, ExpiresAt: expiresAt}, nil
}
