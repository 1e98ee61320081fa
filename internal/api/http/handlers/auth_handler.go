package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/api/dto"
	"github.com/ec-shop/storefront-api/internal/auth"
	"github.com/ec-shop/storefront-api/internal/service"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// AuthHandler exposes login, register and logout.
type AuthHandler struct {
	auth    *service.AuthService
	cookies *auth.Middleware
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies *auth.Middleware) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies}
}

// Login handles POST /api/auth/login. Malformed payloads, unknown accounts
// and wrong passwords all answer 401 with the same message; the service
// keeps the timing uniform.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Valid() {
		auth.DummyCompare(req.Password)
		return apperrors.NewUnauthorized("invalid credentials")
	}

	user, session, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.SetSessionCookies(c, session.Token, session.CSRFToken, session.ExpiresAt)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid registration data", details)
	}

	user, session, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CI:        req.CI,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address.ToDomain(),
	})
	if err != nil {
		return err
	}

	h.cookies.SetSessionCookies(c, session.Token, session.CSRFToken, session.ExpiresAt)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; logout only
// clears the client-held cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.ClearSessionCookies(c)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "session closed",
	})
}
