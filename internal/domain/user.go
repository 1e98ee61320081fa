package domain

import "time"

// Role enumerates the access levels an account can hold.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role grants access to the back-office area.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleVendor
}

// Address is the postal address attached to users and order shipments.
type Address struct {
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Between      [2]string `json:"between"`
	Neighborhood string    `json:"neighborhood"`
	Municipality string    `json:"municipality"`
	Province     string    `json:"province"`
}

// User is the domain model for every account: customers, vendors and admins.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	CI           string
	Phone        string
	Email        string
	PasswordHash string
	Address      Address
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name snapshotted onto orders.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
