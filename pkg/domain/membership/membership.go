// Package membership coordinates joining users into projects.
package membership

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	memdb "github.com/opsboard/opsboard/pkg/domain/membership/db"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type Service struct {
	memberships memdb.Interface
	projects    projdb.Interface
	users       userdb.Interface
}

func New(memberships memdb.Interface, projects projdb.Interface, users userdb.Interface) *Service {
	return &Service{
		memberships: memberships,
		projects:    projects,
		users:       users,
	}
}

// Add joins the user into the project. Preconditions, in order: the project
// exists, then the user exists. Duplicate membership is decided by the
// insert itself against the (project_id, user_id) unique constraint, so two
// racing Adds for the same pair observe the same BadRequest, not a 500.
func (s *Service) Add(ctx context.Context, projectId string, userId string) (domain.Membership, error) {
	if _, err := s.projects.Get(ctx, projectId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Membership{}, kerr.NewNotFound("Project not found")
		}
		return domain.Membership{}, err
	}

	if _, err := s.users.Get(ctx, userId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Membership{}, kerr.NewNotFound("User not found")
		}
		return domain.Membership{}, err
	}

	id, err := domain.NewId()
	if err != nil {
		return domain.Membership{}, err
	}

	created, err := s.memberships.Create(ctx, domain.Membership{
		Id:        id,
		ProjectId: projectId,
		UserId:    userId,
	})
	if errors.Is(err, kerr.ErrDuplicate) {
		return domain.Membership{}, kerr.NewBadRequest("User is already a member of the project")
	}
	return created, err
}

func (s *Service) Remove(ctx context.Context, projectId string, userId string) error {
	_, err := s.memberships.Delete(ctx, projectId, userId)
	return err
}
