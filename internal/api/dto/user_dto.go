package dto

import "github.com/ec-shop/storefront-api/internal/domain"

// ProfileUpdateRequest carries the self-service profile fields. Email,
// national id and role cannot be changed here.
type ProfileUpdateRequest struct {
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Phone     string         `json:"phone"`
	Address   AddressPayload `json:"address"`
}

// Validate returns field-level errors, or nil when the payload is valid.
func (r ProfileUpdateRequest) Validate() map[string]any {
	details := map[string]any{}
	if len(r.FirstName) < 2 || len(r.FirstName) > 50 {
		details["firstName"] = "first name must be 2-50 characters"
	}
	if len(r.LastName) < 2 || len(r.LastName) > 80 {
		details["lastName"] = "last name must be 2-80 characters"
	}
	if !phonePattern.MatchString(r.Phone) {
		details["phone"] = "phone must be a mobile number (5 followed by 7 digits)"
	}
	r.Address.Validate("address.", details)
	if len(details) == 0 {
		return nil
	}
	return details
}

// RoleUpdateRequest carries the target role for PUT /users/{id}/role.
type RoleUpdateRequest struct {
	Role domain.Role `json:"role"`
}
