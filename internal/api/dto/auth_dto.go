package dto

import (
	"regexp"

	"github.com/ec-shop/storefront-api/internal/domain"
)

var (
	ciPattern    = regexp.MustCompile(`^\d{11}$`)
	phonePattern = regexp.MustCompile(`^5\d{7}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// AddressPayload mirrors the nested address object on registration, profile
// and order payloads.
type AddressPayload struct {
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Between      [2]string `json:"between"`
	Neighborhood string    `json:"neighborhood"`
	Municipality string    `json:"municipality"`
	Province     string    `json:"province"`
}

// Validate collects field errors into details under the given prefix.
func (a AddressPayload) Validate(prefix string, details map[string]any) {
	if len(a.Street) < 3 {
		details[prefix+"street"] = "street must be at least 3 characters"
	}
	if a.Number == "" {
		details[prefix+"number"] = "number is required"
	}
	if a.Between[0] == "" || a.Between[1] == "" {
		details[prefix+"between"] = "both cross streets are required"
	}
	if len(a.Neighborhood) < 2 {
		details[prefix+"neighborhood"] = "neighborhood is required"
	}
	if len(a.Municipality) < 2 {
		details[prefix+"municipality"] = "municipality is required"
	}
	if len(a.Province) < 2 {
		details[prefix+"province"] = "province is required"
	}
}

// ToDomain converts the payload to the domain address.
func (a AddressPayload) ToDomain() domain.Address {
	return domain.Address{
		Street:       a.Street,
		Number:       a.Number,
		Between:      a.Between,
		Neighborhood: a.Neighborhood,
		Municipality: a.Municipality,
		Province:     a.Province,
	}
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	CI              string         `json:"ci"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirmPassword"`
	Address         AddressPayload `json:"address"`
	TermsAccepted   bool           `json:"termsAccepted"`
}

// Validate returns field-level errors, or nil when the payload is valid.
func (r RegisterRequest) Validate() map[string]any {
	details := map[string]any{}
	if len(r.FirstName) < 2 || len(r.FirstName) > 50 {
		details["firstName"] = "first name must be 2-50 characters"
	}
	if len(r.LastName) < 2 || len(r.LastName) > 80 {
		details["lastName"] = "last name must be 2-80 characters"
	}
	if !ciPattern.MatchString(r.CI) {
		details["ci"] = "national id must be exactly 11 digits"
	}
	if !phonePattern.MatchString(r.Phone) {
		details["phone"] = "phone must be a mobile number (5 followed by 7 digits)"
	}
	if !emailPattern.MatchString(r.Email) {
		details["email"] = "invalid email address"
	}
	if len(r.Password) < 8 {
		details["password"] = "password must be at least 8 characters"
	}
	if r.Password != r.ConfirmPassword {
		details["confirmPassword"] = "passwords do not match"
	}
	if !r.TermsAccepted {
		details["termsAccepted"] = "terms and conditions must be accepted"
	}
	r.Address.Validate("address.", details)
	if len(details) == 0 {
		return nil
	}
	return details
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Valid reports whether the payload is well-formed. Login deliberately does
// not return field detail; malformed credentials and wrong credentials look
// the same to the caller.
func (r LoginRequest) Valid() bool {
	return emailPattern.MatchString(r.Email) && r.Password != ""
}

// UserResponse is the safe account projection returned by auth and user
// endpoints. The password hash never leaves the server.
type UserResponse struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	CI        string         `json:"ci"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Address   AddressPayload `json:"address"`
	Role      domain.Role    `json:"role"`
}

// NewUserResponse maps a domain user to its response projection.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CI:        user.CI,
		Phone:     user.Phone,
		Email:     user.Email,
		Address: AddressPayload{
			Street:       user.Address.Street,
			Number:       user.Address.Number,
			Between:      user.Address.Between,
			Neighborhood: user.Address.Neighborhood,
			Municipality: user.Address.Municipality,
			Province:     user.Address.Province,
		},
		Role: user.Role,
	}
}
