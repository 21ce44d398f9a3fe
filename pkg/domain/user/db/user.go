package db

import (
	"context"

	"github.com/opsboard/opsboard/pkg/domain"
)

// Update is the partial row written by user update.
// The password digest and role are never touched by it.
type Update struct {
	Name           string
	Email          string
	OrganizationId string
}

type Interface interface {
	// Create inserts user and returns the persisted row.
	// A conflicting email is kerr.Duplicate.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// Get finds a user by id. Absence is kerr.Missing.
	Get(ctx context.Context, id string) (domain.User, error)

	// GetByEmail finds a user by its unique email. Absence is kerr.Missing.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	List(ctx context.Context) ([]domain.User, error)

	// Update writes the partial row. Absence is kerr.Missing,
	// an email conflict is kerr.Duplicate.
	Update(ctx context.Context, id string, update Update) (domain.User, error)

	// Delete removes the user. Memberships and comments cascade away;
	// todos assigned to the user fall back to unassigned.
	Delete(ctx context.Context, id string) (int64, error)

	// Projects lists the projects the user is a member of.
	Projects(ctx context.Context, userId string) ([]domain.Project, error)

	// Todos lists the todos assigned to the user.
	Todos(ctx context.Context, userId string) ([]domain.Todo, error)
}
