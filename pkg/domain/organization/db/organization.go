package db

import (
	"context"

	"github.com/opsboard/opsboard/pkg/domain"
)

type Interface interface {
	// Create inserts org and returns the persisted row.
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)

	// Get finds an organization by id.
	// Absence is kerr.Missing.
	Get(ctx context.Context, id string) (domain.Organization, error)

	List(ctx context.Context) ([]domain.Organization, error)

	// Update renames the organization. Absence is kerr.Missing.
	Update(ctx context.Context, id string, name string) (domain.Organization, error)

	// Delete removes the organization and, by cascade, its users, projects
	// and everything hanging off them. Returns the count of organization
	// rows removed.
	Delete(ctx context.Context, id string) (int64, error)

	// Users lists the users belonging to the organization.
	Users(ctx context.Context, organizationId string) ([]domain.User, error)

	// Projects lists the projects belonging to the organization.
	Projects(ctx context.Context, organizationId string) ([]domain.Project, error)
}
