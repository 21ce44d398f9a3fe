package todo

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type Service struct {
	todos tododb.Interface
	users userdb.Interface
}

func New(todos tododb.Interface, users userdb.Interface) *Service {
	return &Service{todos: todos, users: users}
}

func (s *Service) Create(ctx context.Context, update tododb.Update) (domain.Todo, error) {
	id, err := domain.NewId()
	if err != nil {
		return domain.Todo{}, err
	}

	return s.todos.Create(ctx, domain.Todo{
		Id:          id,
		Title:       update.Title,
		Description: update.Description,
		Status:      domain.Pending,
		DueDate:     update.DueDate,
		ProjectId:   update.ProjectId,
	})
}

func (s *Service) Get(ctx context.Context, id string) (domain.Todo, error) {
	found, err := s.todos.Get(ctx, id)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Todo{}, kerr.NewNotFound("Todo not found")
	}
	return found, err
}

func (s *Service) List(ctx context.Context) ([]domain.Todo, error) {
	return s.todos.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, update tododb.Update) (domain.Todo, error) {
	updated, err := s.todos.Update(ctx, id, update)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Todo{}, kerr.NewNotFound("Todo not found")
	}
	return updated, err
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.TodoStatus) (domain.Todo, error) {
	updated, err := s.todos.SetStatus(ctx, id, status)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Todo{}, kerr.NewNotFound("Todo not found")
	}
	return updated, err
}

// Assign hands the todo to a user, who must exist.
func (s *Service) Assign(ctx context.Context, id string, userId string) (domain.Todo, error) {
	if _, err := s.users.Get(ctx, userId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Todo{}, kerr.NewNotFound("User not found")
		}
		return domain.Todo{}, err
	}

	updated, err := s.todos.Assign(ctx, id, userId)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Todo{}, kerr.NewNotFound("Todo not found")
	}
	return updated, err
}

// Delete removes the todo, failing NotFound when there is nothing to remove.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.todos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return kerr.NewNotFound("Todo not found")
	}
	return nil
}

func (s *Service) Comments(ctx context.Context, id string) ([]domain.Comment, error) {
	return s.todos.Comments(ctx, id)
}
