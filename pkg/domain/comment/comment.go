package comment

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	comdb "github.com/opsboard/opsboard/pkg/domain/comment/db"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type Service struct {
	comments comdb.Interface
	todos    tododb.Interface
	users    userdb.Interface
}

func New(comments comdb.Interface, todos tododb.Interface, users userdb.Interface) *Service {
	return &Service{comments: comments, todos: todos, users: users}
}

// Create attaches a comment to a todo. Preconditions, in order: the author
// exists, then the todo exists.
func (s *Service) Create(ctx context.Context, content string, todoId string, userId string) (domain.Comment, error) {
	if _, err := s.users.Get(ctx, userId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Comment{}, kerr.NewNotFound("User not found")
		}
		return domain.Comment{}, err
	}

	if _, err := s.todos.Get(ctx, todoId); err != nil {
		if errors.Is(err, kerr.ErrMissing) {
			return domain.Comment{}, kerr.NewNotFound("Todo not found")
		}
		return domain.Comment{}, err
	}

	id, err := domain.NewId()
	if err != nil {
		return domain.Comment{}, err
	}

	return s.comments.Create(ctx, domain.Comment{
		Id:      id,
		Content: content,
		TodoId:  todoId,
		UserId:  userId,
	})
}

func (s *Service) Get(ctx context.Context, id string) (domain.Comment, error) {
	found, err := s.comments.Get(ctx, id)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Comment{}, kerr.NewNotFound("Comment not found")
	}
	return found, err
}

func (s *Service) List(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.List(ctx)
}

func (s *Service) UpdateContent(ctx context.Context, id string, content string) (domain.Comment, error) {
	updated, err := s.comments.UpdateContent(ctx, id, content)
	if errors.Is(err, kerr.ErrMissing) {
		return domain.Comment{}, kerr.NewNotFound("Comment not found")
	}
	return updated, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.comments.Delete(ctx, id)
	return err
}
