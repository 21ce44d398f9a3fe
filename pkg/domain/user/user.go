// Package user coordinates user mutations: registration, login,
// self-service updates and the relationship lookups hanging off a user.
package user

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/auth"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type Service struct {
	users         userdb.Interface
	organizations orgdb.Interface
	credentials   *auth.Service
}

func New(users userdb.Interface, organizations orgdb.Interface, credentials *auth.Service) *Service {
	return &Service{
		users:         users,
		organizations: organizations,
		credentials:   credentials,
	}
}

type Registration struct {
	Name           string
	Email          string
	OrganizationId string
	Password       string
	Role           domain.Role
}

// Register creates a user. Preconditions, in order: no user holds the email
// already, and the organization exists. The email uniqueness constraint on
// the insert backstops concurrent registrations with the same address.
func (s *Service) Register(ctx context.Context, reg Registration) (domain.User, error) {
	_, err := s.users.GetByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return domain.User{}, kerr.NewBadRequest("User with the same email already exists")
	case !errors.Is(err, kerr.ErrMissing):
		return domain.User{}, err
	}

	if _, err := s.organizations.Get(ctx, reg.OrganizationId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.User{}, kerr.NewNotFound("Organization not found")
		}
		return domain.User{}, err
	}

	digest, err := s.credentials.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, err
	}

	id, err := domain.NewId()
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		Id:             id,
		Name:           reg.Name,
		Email:          reg.Email,
		OrganizationId: reg.OrganizationId,
		Password:       digest,
		Role:           reg.Role,
	})
	if errors.Is(err, kerr.ErrDuplicate) {
		return domain.User{}, kerr.NewBadRequest("User with the same email already exists")
	}
	return created, err
}

// Login verifies the credentials and issues a session token.
// The unknown-email answer differs from the wrong-password answer on
// purpose: it mirrors the lookup/verify split of the operation.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {
	found, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return "", kerr.NewNotFound("User not found")
		}
		return "", err
	}

	if !s.credentials.VerifyPassword(password, found.Password) {
		return "", kerr.NewBadRequest("Invalid email or password")
	}

	return s.credentials.IssueToken(found)
}

func (s *Service) Get(ctx context.Context, id string) (domain.User, error) {
	found, err := s.users.Get(ctx, id)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.User{}, kerr.NewNotFound("User not found")
	}
	return found, err
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Update rewrites name, email and organization. Preconditions, in order:
// the user exists, and the target organization exists.
func (s *Service) Update(ctx context.Context, id string, update userdb.Update) (domain.User, error) {
	if _, err := s.users.Get(ctx, id); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.User{}, kerr.NewNotFound("User not found")
		}
		return domain.User{}, err
	}

	if _, err := s.organizations.Get(ctx, update.OrganizationId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.User{}, kerr.NewNotFound("Organization not found")
		}
		return domain.User{}, err
	}

	updated, err := s.users.Update(ctx, id, update)
	switch {
	case errors.Is(err, kerr.ErrMissing):
		return domain.User{}, kerr.NewNotFound("User not found")
	case errors.Is(err, kerr.ErrDuplicate):
		return domain.User{}, kerr.NewBadRequest("User with the same email already exists")
	}
	return updated, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.users.Delete(ctx, id)
	return err
}

func (s *Service) Projects(ctx context.Context, id string) ([]domain.Project, error) {
	return s.users.Projects(ctx, id)
}

func (s *Service) Todos(ctx context.Context, id string) ([]domain.Todo, error) {
	return s.users.Todos(ctx, id)
}
