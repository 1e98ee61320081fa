package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/api/http/handlers"
	"github.com/ec-shop/storefront-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UsersHandler
	Products   *handlers.ProductsHandler
	Categories *handlers.CategoriesHandler
	Orders     *handlers.OrdersHandler
	Financial  *handlers.FinancialHandler
	Pages      *handlers.PagesHandler
	Session    *auth.Middleware
	Gate       *auth.Gate
}

// RegisterRoutes wires HTTP routes. The session middleware runs first so
// both the page gate and the API guards see the verified principal; the
// page gate handles redirects for page areas only.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Session.Extract)
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Page areas guarded by the gate.
	app.Get("/", cfg.Pages.Home)
	app.Get("/auth/login", cfg.Pages.Login)
	app.Get("/auth/register", cfg.Pages.Register)
	app.Get("/dashboard", cfg.Pages.Dashboard)
	app.Get("/dashboard/*", cfg.Pages.Dashboard)
	app.Get("/admin", cfg.Pages.Admin)
	app.Get("/admin/*", cfg.Pages.Admin)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)

	// State-changing routes below require the anti-forgery header in
	// addition to the session cookie.
	csrf := auth.VerifyCSRFRequest()

	users := api.Group("/users")
	users.Get("/me", auth.RequireSession(), cfg.Users.Me)
	users.Put("/me", auth.RequireSession(), csrf, cfg.Users.UpdateMe)
	users.Get("/", auth.Require(auth.ActionUserList), cfg.Users.List)
	users.Put("/:id/role", auth.Require(auth.ActionUserSetRole), csrf, cfg.Users.UpdateRole)

	products := api.Group("/products")
	products.Get("/", auth.Require(auth.ActionProductList), cfg.Products.List)
	products.Post("/", auth.Require(auth.ActionProductWrite), csrf, cfg.Products.Create)
	products.Put("/:id", auth.Require(auth.ActionProductWrite), csrf, cfg.Products.Update)
	products.Delete("/:id", auth.Require(auth.ActionProductWrite), csrf, cfg.Products.Delete)

	categories := api.Group("/categories")
	categories.Get("/", auth.Require(auth.ActionCategoryList), cfg.Categories.List)
	categories.Post("/", auth.Require(auth.ActionCategoryWrite), csrf, cfg.Categories.Create)
	categories.Put("/:id", auth.Require(auth.ActionCategoryWrite), csrf, cfg.Categories.Update)
	categories.Delete("/:id", auth.Require(auth.ActionCategoryWrite), csrf, cfg.Categories.Delete)

	orders := api.Group("/orders")
	orders.Post("/", auth.RequireSession(), csrf, cfg.Orders.Create)
	orders.Get("/", auth.Require(auth.ActionOrderListAll), cfg.Orders.ListAll)
	orders.Get("/me", auth.RequireSession(), cfg.Orders.ListMine)
	orders.Put("/:id/status", auth.Require(auth.ActionOrderSetStatus), csrf, cfg.Orders.UpdateStatus)

	api.Get("/financial/summary", auth.Require(auth.ActionFinancialView), cfg.Financial.Summary)
}
