package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ec-shop/storefront-api/internal/domain"
	apperrors "github.com/ec-shop/storefront-api/pkg/util"
)

// Action identifies an endpoint-level operation gated by role policy.
type Action string

const (
	ActionProductList    Action = "product:list"
	ActionProductWrite   Action = "product:write"
	ActionCategoryList   Action = "category:list"
	ActionCategoryWrite  Action = "category:write"
	ActionOrderListAll   Action = "order:list_all"
	ActionOrderSetStatus Action = "order:set_status"
	ActionUserList       Action = "user:list"
	ActionUserSetRole    Action = "user:set_role"
	ActionFinancialView  Action = "financial:view"
)

// policy is the single declarative table mapping actions to allowed roles.
// Ownership-scoped operations (own profile, own orders) are not listed; any
// authenticated caller may perform them against their own records.
var policy = map[Action][]domain.Role{
	ActionProductList:    {domain.RoleAdmin, domain.RoleVendor, domain.RoleCustomer},
	ActionProductWrite:   {domain.RoleAdmin},
	ActionCategoryList:   {domain.RoleAdmin, domain.RoleVendor},
	ActionCategoryWrite:  {domain.RoleAdmin},
	ActionOrderListAll:   {domain.RoleAdmin, domain.RoleVendor},
	ActionOrderSetStatus: {domain.RoleAdmin, domain.RoleVendor},
	ActionUserList:       {domain.RoleAdmin},
	ActionUserSetRole:    {domain.RoleAdmin},
	ActionFinancialView:  {domain.RoleAdmin},
}

// Allowed reports whether the role may perform the action.
func Allowed(action Action, role domain.Role) bool {
	for _, allowed := range policy[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Require returns middleware enforcing the policy table for one action.
// Missing session and insufficient role are distinct outcomes: 401 vs 403.
func Require(action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !Allowed(action, principal.Role) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
