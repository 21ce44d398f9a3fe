package db

import (
	"context"

	"github.com/opsboard/opsboard/pkg/domain"
)

type Update struct {
	Name           string
	Description    string
	OrganizationId string
}

type Interface interface {
	// Create inserts project and returns the persisted row.
	// A conflicting name is kerr.Duplicate.
	Create(ctx context.Context, project domain.Project) (domain.Project, error)

	// Get finds a project by id. Absence is kerr.Missing.
	Get(ctx context.Context, id string) (domain.Project, error)

	// GetByName finds a project by its unique name. Absence is kerr.Missing.
	GetByName(ctx context.Context, name string) (domain.Project, error)

	List(ctx context.Context) ([]domain.Project, error)

	// Update writes the partial row. Absence is kerr.Missing.
	Update(ctx context.Context, id string, update Update) (domain.Project, error)

	// Delete removes the project; memberships and todos cascade away.
	Delete(ctx context.Context, id string) (int64, error)

	// Users lists the members of the project.
	Users(ctx context.Context, projectId string) ([]domain.User, error)

	// Todos lists the todos of the project.
	Todos(ctx context.Context, projectId string) ([]domain.Todo, error)
}
