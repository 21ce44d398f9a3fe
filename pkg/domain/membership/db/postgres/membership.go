package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/domain"
	kscan "github.com/opsboard/opsboard/pkg/domain/internal/db/postgres"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	memdb "github.com/opsboard/opsboard/pkg/domain/membership/db"
)

type pgMembership struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) memdb.Interface {
	return &pgMembership{pool: pool}
}

func (m *pgMembership) Create(ctx context.Context, membership domain.Membership) (domain.Membership, error) {
	row := m.pool.QueryRow(
		ctx,
		`insert into "project_users" ("id","project_id","user_id")
		values ($1, $2, $3)
		returning `+kscan.MembershipColumns,
		membership.Id, membership.ProjectId, membership.UserId,
	)
	created, err := kscan.Membership(row)
	if err != nil {
		pgErr := new(pgconn.PgError)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.Membership{}, kerr.Duplicate{Table: "project_users", Constraint: pgErr.ConstraintName}
		}
		return domain.Membership{}, err
	}
	return created, nil
}

func (m *pgMembership) Delete(ctx context.Context, projectId string, userId string) (int64, error) {
	tag, err := m.pool.Exec(
		ctx,
		`delete from "project_users" where "project_id" = $1 and "user_id" = $2`,
		projectId, userId,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
