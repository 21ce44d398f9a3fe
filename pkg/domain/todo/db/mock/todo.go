// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
)

type TodoInterface struct {
	Impl struct {
		Create    func(context.Context, domain.Todo) (domain.Todo, error)
		Get       func(context.Context, string) (domain.Todo, error)
		List      func(context.Context) ([]domain.Todo, error)
		Update    func(context.Context, string, tododb.Update) (domain.Todo, error)
		SetStatus func(context.Context, string, domain.TodoStatus) (domain.Todo, error)
		Assign    func(context.Context, string, string) (domain.Todo, error)
		Delete    func(context.Context, string) (int64, error)
		Comments  func(context.Context, string) ([]domain.Comment, error)
	}
	Calls struct {
		Create []domain.Todo
	}
}

func NewTodoInterface() *TodoInterface {
	return &TodoInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *TodoInterface) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	m.Calls.Create = append(m.Calls.Create, todo)
	if m.Impl.Create == nil {
		return domain.Todo{}, errNotImplemented
	}
	return m.Impl.Create(ctx, todo)
}

func (m *TodoInterface) Get(ctx context.Context, id string) (domain.Todo, error) {
	if m.Impl.Get == nil {
		return domain.Todo{}, errNotImplemented
	}
	return m.Impl.Get(ctx, id)
}

func (m *TodoInterface) List(ctx context.Context) ([]domain.Todo, error) {
	if m.Impl.List == nil {
		return nil, errNotImplemented
	}
	return m.Impl.List(ctx)
}

func (m *TodoInterface) Update(ctx context.Context, id string, update tododb.Update) (domain.Todo, error) {
	if m.Impl.Update == nil {
		return domain.Todo{}, errNotImplemented
	}
	return m.Impl.Update(ctx, id, update)
}

func (m *TodoInterface) SetStatus(ctx context.Context, id string, status domain.TodoStatus) (domain.Todo, error) {
	if m.Impl.SetStatus == nil {
		return domain.Todo{}, errNotImplemented
	}
	return m.Impl.SetStatus(ctx, id, status)
}

func (m *TodoInterface) Assign(ctx context.Context, id string, userId string) (domain.Todo, error) {
	if m.Impl.Assign == nil {
		return domain.Todo{}, errNotImplemented
	}
	return m.Impl.Assign(ctx, id, userId)
}

func (m *TodoInterface) Delete(ctx context.Context, id string) (int64, error) {
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, id)
}

func (m *TodoInterface) Comments(ctx context.Context, todoId string) ([]domain.Comment, error) {
	if m.Impl.Comments == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Comments(ctx, todoId)
}
