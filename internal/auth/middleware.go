package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/domain"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

const (
	// SessionCookieName carries the signed session token (HTTP-only).
	SessionCookieName = "auth-token"
	// CSRFCookieName carries the anti-forgery token (readable by scripts).
	CSRFCookieName = "csrf-token"
	// CSRFHeaderName is the header mirrored from the CSRF cookie.
	CSRFHeaderName = "X-CSRF-Token"

	principalKey = "auth_principal"
)

// Principal is the verified caller identity for the current request. It is
// rebuilt from the session cookie on every request; nothing is cached across
// requests.
type Principal struct {
	ID   string
	Role domain.Role
}

// Middleware extracts and verifies session cookies.
type Middleware struct {
	tokens *TokenManager
	secure bool
}

// NewMiddleware constructs the session middleware.
func NewMiddleware(tokens *TokenManager, secureCookies bool) *Middleware {
	return &Middleware{tokens: tokens, secure: secureCookies}
}

// Extract verifies the session cookie when present and stores the principal
// in request locals. A missing or invalid cookie is not an error here; route
// guards decide how to respond.
func (m *Middleware) Extract(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.Next()
	}
	claims, ok := m.tokens.Verify(token)
	if !ok {
		return c.Next()
	}
	c.Locals(principalKey, &Principal{ID: claims.SubjectID, Role: claims.Role})
	return c.Next()
}

// RequireSession rejects unauthenticated API calls with 401.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// VerifyCSRFRequest enforces the double-submit check on state-changing calls:
// the anti-forgery cookie must match the X-CSRF-Token header.
func VerifyCSRFRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !VerifyCSRF(c.Cookies(CSRFCookieName), c.Get(CSRFHeaderName)) {
			return apperrors.NewForbidden("missing or invalid anti-forgery token")
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// SetSessionCookies attaches the session and anti-forgery cookies to the
// response. The session cookie is HTTP-only; the anti-forgery cookie must be
// readable by client scripts so it can be mirrored into the request header.
func (m *Middleware) SetSessionCookies(c *fiber.Ctx, sessionToken, csrfToken string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    sessionToken,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     CSRFCookieName,
		Value:    csrfToken,
		Expires:  expiresAt,
		HTTPOnly: false,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearSessionCookies expires both cookies. Logout only clears the client
// copy; issued tokens stay valid until their expiry.
func (m *Middleware) ClearSessionCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     CSRFCookieName,
		Value:    "",
		Expires:  expired,
		HTTPOnly: false,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
