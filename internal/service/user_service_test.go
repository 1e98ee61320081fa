package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec-shop/storefront-api/internal/domain"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

func TestChangeRole_SelfChangeForbidden(t *testing.T) {
	users := newMockUserRepo()
	_ = users.Create(context.Background(), &domain.User{ID: "admin-1", Role: domain.RoleAdmin})
	svc := NewUserService(users)

	// Even admins cannot change their own role.
	_, err := svc.ChangeRole(context.Background(), "admin-1", "admin-1", domain.RoleCustomer)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Message, "own role")
}

func TestChangeRole_InvalidRole(t *testing.T) {
	users := newMockUserRepo()
	_ = users.Create(context.Background(), &domain.User{ID: "target-1", Role: domain.RoleCustomer})
	svc := NewUserService(users)

	_, err := svc.ChangeRole(context.Background(), "admin-1", "target-1", "superuser")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestChangeRole_UnknownTarget(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.ChangeRole(context.Background(), "admin-1", "missing", domain.RoleVendor)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestChangeRole_Success(t *testing.T) {
	users := newMockUserRepo()
	_ = users.Create(context.Background(), &domain.User{ID: "target-1", Role: domain.RoleCustomer})
	svc := NewUserService(users)

	updated, err := svc.ChangeRole(context.Background(), "admin-1", "target-1", domain.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVendor, updated.Role)
}

func TestUpdateProfile_OnlyAllowedFieldsChange(t *testing.T) {
	users := newMockUserRepo()
	_ = users.Create(context.Background(), &domain.User{
		ID:           "cust-1",
		FirstName:    "Ana",
		LastName:     "Garcia",
		Email:        "ana@example.com",
		CI:           "01234567890",
		PasswordHash: "hash",
		Role:         domain.RoleCustomer,
	})
	svc := NewUserService(users)

	updated, err := svc.UpdateProfile(context.Background(), "cust-1", ProfileUpdateInput{
		FirstName: "Anabel",
		LastName:  "Garcia",
		Phone:     "51234567",
		Address:   domain.Address{Street: "Calle 23", Municipality: "Plaza"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Anabel", updated.FirstName)
	assert.Equal(t, "51234567", updated.Phone)
	assert.Equal(t, "Calle 23", updated.Address.Street)

	// Identity and credential fields survive untouched.
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, "01234567890", updated.CI)
	assert.Equal(t, "hash", updated.PasswordHash)
	assert.Equal(t, domain.RoleCustomer, updated.Role)
}

func TestGetProfile_Unknown(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
