// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
)

type OrganizationInterface struct {
	Impl struct {
		Create   func(context.Context, domain.Organization) (domain.Organization, error)
		Get      func(context.Context, string) (domain.Organization, error)
		List     func(context.Context) ([]domain.Organization, error)
		Update   func(context.Context, string, string) (domain.Organization, error)
		Delete   func(context.Context, string) (int64, error)
		Users    func(context.Context, string) ([]domain.User, error)
		Projects func(context.Context, string) ([]domain.Project, error)
	}
	Calls struct {
		Create []domain.Organization
		Delete []string
	}
}

func NewOrganizationInterface() *OrganizationInterface {
	return &OrganizationInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *OrganizationInterface) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	m.Calls.Create = append(m.Calls.Create, org)
	if m.Impl.Create == nil {
		return domain.Organization{}, errNotImplemented
	}
	return m.Impl.Create(ctx, org)
}

func (m *OrganizationInterface) Get(ctx context.Context, id string) (domain.Organization, error) {
	if m.Impl.Get == nil {
		return domain.Organization{}, errNotImplemented
	}
	return m.Impl.Get(ctx, id)
}

func (m *OrganizationInterface) List(ctx context.Context) ([]domain.Organization, error) {
	if m.Impl.List == nil {
		return nil, errNotImplemented
	}
	return m.Impl.List(ctx)
}

func (m *OrganizationInterface) Update(ctx context.Context, id string, name string) (domain.Organization, error) {
	if m.Impl.Update == nil {
		return domain.Organization{}, errNotImplemented
	}
	return m.Impl.Update(ctx, id, name)
}

func (m *OrganizationInterface) Delete(ctx context.Context, id string) (int64, error) {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, id)
}

func (m *OrganizationInterface) Users(ctx context.Context, organizationId string) ([]domain.User, error) {
	if m.Impl.Users == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Users(ctx, organizationId)
}

func (m *OrganizationInterface) Projects(ctx context.Context, organizationId string) ([]domain.Project, error) {
	if m.Impl.Projects == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Projects(ctx, organizationId)
}
