package domain

import "slices"

const RoleAdmin = "ROLE_ADMIN"

type User struct {
	Id          UserId   `json:"id" validate:"gt=0"`
	Username    string   `json:"username"`
	Email       Email    `json:"email" validate:"required,email"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Roles       []string `json:"roles"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

func (u User) IsAdmin() bool {
	return slices.Contains(u.Roles, RoleAdmin)
}

// DisplayName is what the navbar greets the user with.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
