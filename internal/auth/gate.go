package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/domain"
)

// Page area prefixes guarded by the gate. API routes answer with status
// codes instead of redirects and are exempt.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	CustomerArea = "/dashboard"
	StaffArea    = "/admin"
)

var apiPrefixes = []string{"/api/", "/health"}

// DecisionKind classifies a gate outcome.
type DecisionKind int

const (
	DecisionProceed DecisionKind = iota
	DecisionRedirect
)

// Decision is the per-request outcome of the page gate.
type Decision struct {
	Kind   DecisionKind
	Target string
}

func proceed() Decision               { return Decision{Kind: DecisionProceed} }
func redirect(target string) Decision { return Decision{Kind: DecisionRedirect, Target: target} }

// homeFor maps a role to its landing area.
func homeFor(role domain.Role) string {
	if role.IsStaff() {
		return StaffArea
	}
	return CustomerArea
}

// Decide applies the page-routing state machine to one request. The caller
// passes nil for unauthenticated requests. The decision is re-derived on
// every request; nothing is cached.
func Decide(path string, p *Principal) Decision {
	// Root: authenticated callers land on their area, visitors pass through.
	if path == "/" {
		if p != nil {
			return redirect(homeFor(p.Role))
		}
		return proceed()
	}

	// Login and register are for unauthenticated callers only.
	if path == LoginPath || path == RegisterPath ||
		strings.HasPrefix(path, LoginPath+"/") || strings.HasPrefix(path, RegisterPath+"/") {
		if p != nil {
			return redirect(homeFor(p.Role))
		}
		return proceed()
	}

	// Everything else is protected.
	if p == nil {
		return redirect(LoginPath)
	}

	if strings.HasPrefix(path, StaffArea) && !p.Role.IsStaff() {
		return redirect(CustomerArea)
	}
	if strings.HasPrefix(path, CustomerArea) && p.Role != domain.RoleCustomer {
		return redirect(StaffArea)
	}

	return proceed()
}

// Gate is the single choke point deciding, per inbound page request, whether
// to proceed or redirect.
type Gate struct{}

// NewGate constructs the gate middleware.
func NewGate() *Gate {
	return &Gate{}
}

// Handle applies Decide to page routes. API routes fall through untouched.
func (g *Gate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	for _, prefix := range apiPrefixes {
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}
	}

	principal, ok := PrincipalFromContext(c)
	if !ok {
		principal = nil
	}

	decision := Decide(path, principal)
	if decision.Kind == DecisionRedirect {
		return c.Redirect(decision.Target, fiber.StatusFound)
	}
	return c.Next()
}
