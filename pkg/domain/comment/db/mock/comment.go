// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
)

type CommentInterface struct {
	Impl struct {
		Create        func(context.Context, domain.Comment) (domain.Comment, error)
		Get           func(context.Context, string) (domain.Comment, error)
		List          func(context.Context) ([]domain.Comment, error)
		UpdateContent func(context.Context, string, string) (domain.Comment, error)
		Delete        func(context.Context, string) (int64, error)
	}
	Calls struct {
		Create []domain.Comment
	}
}

func NewCommentInterface() *CommentInterface {
	return &CommentInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *CommentInterface) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	m.Calls.Create = append(m.Calls.Create, comment)
	if m.Impl.Create == nil {
		return domain.Comment{}, errNotImplemented
	}
	return m.Impl.Create(ctx, comment)
}

func (m *CommentInterface) Get(ctx context.Context, id string) (domain.Comment, error) {
	if m.Impl.Get == nil {
		return domain.Comment{}, errNotImplemented
	}
	return m.Impl.Get(ctx, id)
}

func (m *CommentInterface) List(ctx context.Context) ([]domain.Comment, error) {
	if m.Impl.List == nil {
		return nil, errNotImplemented
	}
	return m.Impl.List(ctx)
}

func (m *CommentInterface) UpdateContent(ctx context.Context, id string, content string) (domain.Comment, error) {
	if m.Impl.UpdateContent == nil {
		return domain.Comment{}, errNotImplemented
	}
	return m.Impl.UpdateContent(ctx, id, content)
}

func (m *CommentInterface) Delete(ctx context.Context, id string) (int64, error) {
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, id)
}
