package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/domain"
	kscan "github.com/opsboard/opsboard/pkg/domain/internal/db/postgres"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
)

type pgOrganization struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) orgdb.Interface {
	return &pgOrganization{pool: pool}
}

func (o *pgOrganization) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	row := o.pool.QueryRow(
		ctx,
		`insert into "organizations" ("id","name") values ($1, $2)
		returning `+kscan.OrganizationColumns,
		org.Id, org.Name,
	)
	return kscan.Organization(row)
}

func (o *pgOrganization) Get(ctx context.Context, id string) (domain.Organization, error) {
	row := o.pool.QueryRow(
		ctx,
		`select `+kscan.OrganizationColumns+` from "organizations" where "id" = $1`,
		id,
	)
	org, err := kscan.Organization(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Organization{}, kerr.Missing{Table: "organizations", Identity: id}
	}
	return org, err
}

func (o *pgOrganization) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := o.pool.Query(
		ctx,
		`select `+kscan.OrganizationColumns+` from "organizations" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Organization)
}

func (o *pgOrganization) Update(ctx context.Context, id string, name string) (domain.Organization, error) {
	row := o.pool.QueryRow(
		ctx,
		`update "organizations" set "name" = $2, "updated_at" = now()
		where "id" = $1
		returning `+kscan.OrganizationColumns,
		id, name,
	)
	org, err := kscan.Organization(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Organization{}, kerr.Missing{Table: "organizations", Identity: id}
	}
	return org, err
}

func (o *pgOrganization) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := o.pool.Exec(ctx, `delete from "organizations" where "id" = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (o *pgOrganization) Users(ctx context.Context, organizationId string) ([]domain.User, error) {
	rows, err := o.pool.Query(
		ctx,
		`select `+kscan.UserColumns+` from "users"
		where "organization_id" = $1 order by "id"`,
		organizationId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.User)
}

func (o *pgOrganization) Projects(ctx context.Context, organizationId string) ([]domain.Project, error) {
	rows, err := o.pool.Query(
		ctx,
		`select `+kscan.ProjectColumns+` from "projects"
		where "organization_id" = $1 order by "id"`,
		organizationId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Project)
}
