package entity

import "time"

// User is a hostel resident or administrator, identified by email.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Role     Role   `json:"role"`

	// Badge is the name of the purchased package tier; nil until the first purchase.
	Badge *string `json:"badge,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasBadge reports whether the user holds a subscription tier.
func (u *User) HasBadge() bool {
	return u.Badge != nil && *u.Badge != ""
}

// Roles returns the user's role as a Roles slice for token issuance.
func (u *User) Roles() Roles {
	return Roles{u.Role}
}
