package organization

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
)

// Service coordinates organization mutations against the store.
type Service struct {
	organizations orgdb.Interface
}

func New(organizations orgdb.Interface) *Service {
	return &Service{organizations: organizations}
}

func (s *Service) Create(ctx context.Context, name string) (domain.Organization, error) {
	id, err := domain.NewId()
	if err != nil {
		return domain.Organization{}, err
	}
	return s.organizations.Create(ctx, domain.Organization{Id: id, Name: name})
}

func (s *Service) Get(ctx context.Context, id string) (domain.Organization, error) {
	org, err := s.organizations.Get(ctx, id)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Organization{}, kerr.NewNotFound("Organization not found")
	}
	return org, err
}

func (s *Service) List(ctx context.Context) ([]domain.Organization, error) {
	return s.organizations.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, name string) (domain.Organization, error) {
	org, err := s.organizations.Update(ctx, id, name)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Organization{}, kerr.NewNotFound("Organization not found")
	}
	return org, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	// users and projects of the organization go away with it, by cascade.
	_, err := s.organizations.Delete(ctx, id)
	return err
}

// Users lists the members of the organization. The organization must exist:
// an empty organization and a missing one are different answers.
func (s *Service) Users(ctx context.Context, id string) ([]domain.User, error) {
	if _, err := s.organizations.Get(ctx, id); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return nil, kerr.NewNotFound("Organization not found")
		}
		return nil, err
	}
	return s.organizations.Users(ctx, id)
}

// Projects lists the projects of the organization, which must exist.
func (s *Service) Projects(ctx context.Context, id string) ([]domain.Project, error) {
	if _, err := s.organizations.Get(ctx, id); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return nil, kerr.NewNotFound("Organization not found")
		}
		return nil, err
	}
	return s.organizations.Projects(ctx, id)
}
