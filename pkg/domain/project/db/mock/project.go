// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
)

type ProjectInterface struct {
	Impl struct {
		Create    func(context.Context, domain.Project) (domain.Project, error)
		Get       func(context.Context, string) (domain.Project, error)
		GetByName func(context.Context, string) (domain.Project, error)
		List      func(context.Context) ([]domain.Project, error)
		Update    func(context.Context, string, projdb.Update) (domain.Project, error)
		Delete    func(context.Context, string) (int64, error)
		Users     func(context.Context, string) ([]domain.User, error)
		Todos     func(context.Context, string) ([]domain.Todo, error)
	}
	Calls struct {
		Create []domain.Project
		Delete []string
	}
}

func NewProjectInterface() *ProjectInterface {
	return &ProjectInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *ProjectInterface) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	m.Calls.Create = append(m.Calls.Create, project)
	if m.Impl.Create == nil {
		return domain.Project{}, errNotImplemented
	}
	return m.Impl.Create(ctx, project)
}

func (m *ProjectInterface) Get(ctx context.Context, id string) (domain.Project, error) {
	if m.Impl.Get == nil {
		return domain.Project{}, errNotImplemented
	}
	return m.Impl.Get(ctx, id)
}

func (m *ProjectInterface) GetByName(ctx context.Context, name string) (domain.Project, error) {
	if m.Impl.GetByName == nil {
		return domain.Project{}, errNotImplemented
	}
	return m.Impl.GetByName(ctx, name)
}

func (m *ProjectInterface) List(ctx context.Context) ([]domain.Project, error) {
	if m.Impl.List == nil {
		return nil, errNotImplemented
	}
	return m.Impl.List(ctx)
}

func (m *ProjectInterface) Update(ctx context.Context, id string, update projdb.Update) (domain.Project, error) {
	if m.Impl.Update == nil {
		return domain.Project{}, errNotImplemented
	}
	return m.Impl.Update(ctx, id, update)
}

func (m *ProjectInterface) Delete(ctx context.Context, id string) (int64, error) {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, id)
}

func (m *ProjectInterface) Users(ctx context.Context, projectId string) ([]domain.User, error) {
	if m.Impl.Users == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Users(ctx, projectId)
}

func (m *ProjectInterface) Todos(ctx context.Context, projectId string) ([]domain.Todo, error) {
	if m.Impl.Todos == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Todos(ctx, projectId)
}
