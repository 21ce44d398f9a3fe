// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/opsboard/opsboard/pkg/domain"
)

type MembershipInterface struct {
	Impl struct {
		Create func(context.Context, domain.Membership) (domain.Membership, error)
		Delete func(context.Context, string, string) (int64, error)
	}
	Calls struct {
		Create []domain.Membership
	}
}

func NewMembershipInterface() *MembershipInterface {
	return &MembershipInterface{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *MembershipInterface) Create(ctx context.Context, membership domain.Membership) (domain.Membership, error) {
	m.Calls.Create = append(m.Calls.Create, membership)
	if m.Impl.Create == nil {
		return domain.Membership{}, errNotImplemented
	}
	return m.Impl.Create(ctx, membership)
}

func (m *MembershipInterface) Delete(ctx context.Context, projectId string, userId string) (int64, error) {
	if m.Impl.Delete == nil {
		return 0, errNotImplemented
	}
	return m.Impl.Delete(ctx, projectId, userId)
}
