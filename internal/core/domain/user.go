package domain

import (
	"strings"

	"github.com/google/uuid"
)

// UserRole discriminates the two user variants.
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User models a registered actor in the store. Address is only populated for
// the client variant; administrators carry no extra fields. Role is fixed at
// creation and users are never mutated afterwards.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	Address string   `json:"address,omitempty"`
}

// NewClient builds a client user. Clients must supply a postal address.
func NewClient(name, email, address string) (*User, error) {
	u, err := newUser(name, email, RoleClient)
	if err != nil {
		return nil, err
	}
	u.Address = strings.TrimSpace(address)
	if u.Address == "" {
		return nil, NewValidationError("client postal address must not be empty")
	}
	return u, nil
}

// NewAdministrator builds an administrator user.
func NewAdministrator(name, email string) (*User, error) {
	return newUser(name, email, RoleAdmin)
}

func newUser(name, email string, role UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, NewValidationError("name must not be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email must be a valid address")
	}
	return &User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
