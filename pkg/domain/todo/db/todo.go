package db

import (
	"context"
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
)

type Update struct {
	Title       string
	Description string
	DueDate     time.Time
	ProjectId   string
}

type Interface interface {
	// Create inserts todo and returns the persisted row.
	// Status defaults to pending when unset.
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)

	// Get finds a todo by id. Absence is kerr.Missing.
	Get(ctx context.Context, id string) (domain.Todo, error)

	List(ctx context.Context) ([]domain.Todo, error)

	// Update rewrites the editable fields. Absence is kerr.Missing.
	Update(ctx context.Context, id string, update Update) (domain.Todo, error)

	// SetStatus patches the status only. Absence is kerr.Missing.
	SetStatus(ctx context.Context, id string, status domain.TodoStatus) (domain.Todo, error)

	// Assign patches the assignee only. Absence is kerr.Missing.
	Assign(ctx context.Context, id string, userId string) (domain.Todo, error)

	// Delete removes the todo; its comments cascade away.
	Delete(ctx context.Context, id string) (int64, error)

	// Comments lists the comments of the todo.
	Comments(ctx context.Context, todoId string) ([]domain.Comment, error)
}
