package project

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
)

type Service struct {
	projects      projdb.Interface
	organizations orgdb.Interface
}

func New(projects projdb.Interface, organizations orgdb.Interface) *Service {
	return &Service{projects: projects, organizations: organizations}
}

// Create inserts a project. Preconditions, in order: the organization
// exists, and no project holds the name already. The name uniqueness
// constraint on the insert backstops concurrent creations.
func (s *Service) Create(ctx context.Context, update projdb.Update) (domain.Project, error) {
	if _, err := s.organizations.Get(ctx, update.OrganizationId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Project{}, kerr.NewBadRequest("Organization does not exists")
		}
		return domain.Project{}, err
	}

	_, err := s.projects.GetByName(ctx, update.Name)
	switch {
	case err == nil:
		return domain.Project{}, kerr.NewBadRequest("Project with same name already exists")
	case !errors.Is(err, kerr.ErrMissing):
		return domain.Project{}, err
	}

	id, err := domain.NewId()
	if err != nil {
		return domain.Project{}, err
	}

	created, err := s.projects.Create(ctx, domain.Project{
		Id:             id,
		Name:           update.Name,
		Description:    update.Description,
		OrganizationId: update.OrganizationId,
	})
	if errors.Is(err, kerr.ErrDuplicate) {
		return domain.Project{}, kerr.NewBadRequest("Project with same name already exists")
	}
	return created, err
}

func (s *Service) Get(ctx context.Context, id string) (domain.Project, error) {
	found, err := s.projects.Get(ctx, id)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Project{}, kerr.NewNotFound("Project not found")
	}
	return found, err
}

func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Update rewrites name, description and organization.
// The target organization must exist.
func (s *Service) Update(ctx context.Context, id string, update projdb.Update) (domain.Project, error) {
	if _, err := s.organizations.Get(ctx, update.OrganizationId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Project{}, kerr.NewBadRequest("Organization does not exists")
		}
		return domain.Project{}, err
	}

	updated, err := s.projects.Update(ctx, id, update)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Project{}, kerr.NewNotFound("Project not found")
	}
	return updated, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.projects.Delete(ctx, id)
	return err
}

func (s *Service) Users(ctx context.Context, id string) ([]domain.User, error) {
	return s.projects.Users(ctx, id)
}

func (s *Service) Todos(ctx context.Context, id string) ([]domain.Todo, error) {
	return s.projects.Todos(ctx, id)
}
