package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/domain"
	kscan "github.com/opsboard/opsboard/pkg/domain/internal/db/postgres"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
)

type pgProject struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) projdb.Interface {
	return &pgProject{pool: pool}
}

func (p *pgProject) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	row := p.pool.QueryRow(
		ctx,
		`insert into "projects" ("id","name","description","organization_id")
		values ($1, $2, $3, $4)
		returning `+kscan.ProjectColumns,
		project.Id, project.Name, project.Description, project.OrganizationId,
	)
	created, err := kscan.Project(row)
	if err != nil {
		pgErr := new(pgconn.PgError)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.Project{}, kerr.Duplicate{Table: "projects", Constraint: pgErr.ConstraintName}
		}
		return domain.Project{}, err
	}
	return created, nil
}

func (p *pgProject) Get(ctx context.Context, id string) (domain.Project, error) {
	row := p.pool.QueryRow(
		ctx,
		`select `+kscan.ProjectColumns+` from "projects" where "id" = $1`,
		id,
	)
	project, err := kscan.Project(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, kerr.Missing{Table: "projects", Identity: id}
	}
	return project, err
}

func (p *pgProject) GetByName(ctx context.Context, name string) (domain.Project, error) {
	row := p.pool.QueryRow(
		ctx,
		`select `+kscan.ProjectColumns+` from "projects" where "name" = $1`,
		name,
	)
	project, err := kscan.Project(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, kerr.Missing{Table: "projects", Identity: name}
	}
	return project, err
}

func (p *pgProject) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+kscan.ProjectColumns+` from "projects" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Project)
}

func (p *pgProject) Update(ctx context.Context, id string, update projdb.Update) (domain.Project, error) {
	row := p.pool.QueryRow(
		ctx,
		`update "projects"
		set "name" = $2, "description" = $3, "organization_id" = $4, "updated_at" = now()
		where "id" = $1
		returning `+kscan.ProjectColumns,
		id, update.Name, update.Description, update.OrganizationId,
	)
	project, err := kscan.Project(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, kerr.Missing{Table: "projects", Identity: id}
	}
	return project, err
}

func (p *pgProject) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := p.pool.Exec(ctx, `delete from "projects" where "id" = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p *pgProject) Users(ctx context.Context, projectId string) ([]domain.User, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+kscan.UserColumns+` from "users"
		where "id" in (select "user_id" from "project_users" where "project_id" = $1)
		order by "id"`,
		projectId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.User)
}

func (p *pgProject) Todos(ctx context.Context, projectId string) ([]domain.Todo, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+kscan.TodoColumns+` from "todos"
		where "project_id" = $1 order by "id"`,
		projectId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Todo)
}
