package users

import (
	"regexp"
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/auth"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// local@domain.tld, nothing fancier.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordPolicy = "Password must contain at least 1 uppercase letter, 1 lowercase letter, 1 number, 1 special character, and must be at least 8 characters long"

// RegisterSpec is the request body of user registration.
type RegisterSpec struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	OrganizationId string      `json:"organizationId"`
	Password       string      `json:"password"`
	Role           domain.Role `json:"role"`
}

func (s RegisterSpec) Validate() error {
	if s.Name == "" || s.Email == "" || s.OrganizationId == "" || s.Password == "" || s.Role == "" {
		return kerr.NewBadRequest("Name, email, password, role, and organization ID are required")
	}
	if !s.Role.Valid() {
		return kerr.NewBadRequest("Role must be either admin or staff")
	}
	if len(s.Password) > auth.MaxPasswordLength {
		return kerr.NewBadRequest("Password must be less than 72")
	}
	if !auth.ValidPassword(s.Password) {
		return kerr.NewBadRequest(passwordPolicy)
	}
	if len(s.Name) < 3 {
		return kerr.NewBadRequest("Name must be at least 3 characters long")
	}
	if !emailShape.MatchString(s.Email) {
		return kerr.NewBadRequest("Invalid email format")
	}
	return nil
}

// LoginSpec is the request body of login.
type LoginSpec struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s LoginSpec) Validate() error {
	if s.Email == "" || s.Password == "" {
		return kerr.NewBadRequest("Email and password are required")
	}
	return nil
}

// UpdateSpec is the request body of user update. Passwords and roles are
// not updatable through this surface.
type UpdateSpec struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganizationId string `json:"organizationId"`
}

func (s UpdateSpec) Validate() error {
	if s.Name == "" || s.Email == "" || s.OrganizationId == "" {
		return kerr.NewBadRequest("Name, email, and organization ID are required")
	}
	if len(s.Name) < 3 {
		return kerr.NewBadRequest("Name must be at least 3 characters long")
	}
	return nil
}

// Detail serializes a user without its password digest.
type Detail struct {
	Id             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	OrganizationId string      `json:"organizationId"`
	Role           domain.Role `json:"role"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.Email == o.Email &&
		d.OrganizationId == o.OrganizationId &&
		d.Role == o.Role &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeDetail(u domain.User) Detail {
	return Detail{
		Id:             u.Id,
		Name:           u.Name,
		Email:          u.Email,
		OrganizationId: u.OrganizationId,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// Session is the login response payload.
type Session struct {
	Token string `json:"token"`
}
