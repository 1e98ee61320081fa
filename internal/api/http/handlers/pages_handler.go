package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves minimal responses for the page areas the gate routes
// between. The real storefront UI is an external collaborator; these
// endpoints only exist so the gate has concrete destinations.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "home"})
}

// Login handles GET /auth/login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "login"})
}

// Register handles GET /auth/register.
func (h *PagesHandler) Register(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "register"})
}

// Dashboard handles GET /dashboard and below (customer area).
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "dashboard"})
}

// Admin handles GET /admin and below (staff area).
func (h *PagesHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "admin"})
}
