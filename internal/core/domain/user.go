package domain

import "github.com/shopspring/decimal"

// Role is the authorization tier of a user. It is a closed enum; anything
// outside these three values is rejected at the boundary.
type Role string

const (
	RoleStaff          Role = "staff"
	RoleSecondaryAdmin Role = "secondary_admin"
	RolePrimaryAdmin   Role = "primary_admin"
)

// IsAdmin reports whether the role grants admin-tier access.
func (r Role) IsAdmin() bool {
	return r == RoleSecondaryAdmin || r == RolePrimaryAdmin
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleSecondaryAdmin || r == RolePrimaryAdmin
}

// UserStatus marks whether a user may still act. Inactive users keep their
// rows (and all owned data) but are blocked at the auth boundary.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is a local user record keyed by the external identity provider's uid.
// Profile fields are optional and only filled in for managed employees.
type User struct {
	UID         string           `json:"uid"`
	Email       string           `json:"email"`
	Role        Role             `json:"role"`
	Status      UserStatus       `json:"status"`
	FullName    string           `json:"full_name,omitempty"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	JobRole     string           `json:"job_role,omitempty"`
	PayRate     *decimal.Decimal `json:"pay_rate,omitempty"`
}

// EffectivePayRate returns the user's pay rate, or zero when none is set.
func (u User) EffectivePayRate() decimal.Decimal {
	if u.PayRate == nil {
		return decimal.Zero
	}
	return *u.PayRate
}
