// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type UserInterface struct {
	Impl struct {
		Create     func(context.Context, domain.User) (domain.User, error)
		Get        func(context.Context, string) (domain.User, error)
		GetByEmail func(context.Context, string) (domain.User, error)
		List       func(context.Context) ([]domain.User, error)
		Update     func(context.Context, string, userdb.Update) (domain.User, error)
		Delete     func(context.Context, string) (int64, error)
		Projects   func(context.Context, string) ([]domain.Project, error)
		Todos      func(context.Context, string) ([]domain.Todo, error)
	}
	Calls struct {
		Create []domain.User
		Delete []string
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *UserInterface) Create(ctx context.Context, user domain.User) (domain.User, error) {
	m.Calls.Create = append(m.Calls.Create, user)
	if m.Impl.Create == nil {
		return domain.User{}, errNotImplemented
	}
	return m.Impl.Create(ctx, user)
}

func (m *UserInterface) Get(ctx context.Context, id string) (domain.User, error) {
	if m.Impl.Get == nil {
		return domain.User{}, errNotImplemented
	}
	return m.Impl.Get(ctx, id)
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.Impl.GetByEmail == nil {
		return domain.User{}, errNotImplemented
	}
	return m.Impl.GetByEmail(ctx, email)
}

func (m *UserInterface) List(ctx context.Context) ([]domain.User, error) {
	if m.Impl.List == nil {
		return nil, errNotImplemented
	}
	return m.Impl.List(ctx)
}

func (m *UserInterface) Update(ctx context.Context, id string, update userdb.Update) (domain.User, error) {
	if m.Impl.Update == nil {
		return domain.User{}, errNotImplemented
	}
	return m.Impl.Update(ctx, id, update)
}

func (m *UserInterface) Delete(ctx context.Context, id string) (int64, error) {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, id)
}

func (m *UserInterface) Projects(ctx context.Context, userId string) ([]domain.Project, error) {
	if m.Impl.Projects == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Projects(ctx, userId)
}

func (m *UserInterface) Todos(ctx context.Context, userId string) ([]domain.Todo, error) {
	if m.Impl.Todos == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Todos(ctx, userId)
}
