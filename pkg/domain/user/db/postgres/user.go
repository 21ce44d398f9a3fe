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
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

type pgUser struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) userdb.Interface {
	return &pgUser{pool: pool}
}

// asDuplicate converts a unique-violation on users into kerr.Duplicate,
// leaving other errors as they are.
func asDuplicate(err error) error {
	pgErr := new(pgconn.PgError)
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return kerr.Duplicate{Table: "users", Constraint: pgErr.ConstraintName}
	}
	return err
}

func (u *pgUser) Create(ctx context.Context, user domain.User) (domain.User, error) {
	row := u.pool.QueryRow(
		ctx,
		`insert into "users" ("id","name","email","organization_id","password","role")
		values ($1, $2, $3, $4, $5, $6)
		returning `+kscan.UserColumns,
		user.Id, user.Name, user.Email, user.OrganizationId, user.Password, string(user.Role),
	)
	created, err := kscan.User(row)
	if err != nil {
		return domain.User{}, asDuplicate(err)
	}
	return created, nil
}

func (u *pgUser) Get(ctx context.Context, id string) (domain.User, error) {
	row := u.pool.QueryRow(
		ctx,
		`select `+kscan.UserColumns+` from "users" where "id" = $1`,
		id,
	)
	user, err := kscan.User(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, kerr.Missing{Table: "users", Identity: id}
	}
	return user, err
}

func (u *pgUser) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := u.pool.QueryRow(
		ctx,
		`select `+kscan.UserColumns+` from "users" where "email" = $1`,
		email,
	)
	user, err := kscan.User(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, kerr.Missing{Table: "users", Identity: email}
	}
	return user, err
}

func (u *pgUser) List(ctx context.Context) ([]domain.User, error) {
	rows, err := u.pool.Query(
		ctx,
		`select `+kscan.UserColumns+` from "users" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.User)
}

func (u *pgUser) Update(ctx context.Context, id string, update userdb.Update) (domain.User, error) {
	row := u.pool.QueryRow(
		ctx,
		`update "users"
		set "name" = $2, "email" = $3, "organization_id" = $4, "updated_at" = now()
		where "id" = $1
		returning `+kscan.UserColumns,
		id, update.Name, update.Email, update.OrganizationId,
	)
	user, err := kscan.User(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, kerr.Missing{Table: "users", Identity: id}
	}
	if err != nil {
		return domain.User{}, asDuplicate(err)
	}
	return user, nil
}

func (u *pgUser) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := u.pool.Exec(ctx, `delete from "users" where "id" = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (u *pgUser) Projects(ctx context.Context, userId string) ([]domain.Project, error) {
	rows, err := u.pool.Query(
		ctx,
		`select `+kscan.ProjectColumns+` from "projects"
		where "id" in (select "project_id" from "project_users" where "user_id" = $1)
		order by "id"`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Project)
}

func (u *pgUser) Todos(ctx context.Context, userId string) ([]domain.Todo, error) {
	rows, err := u.pool.Query(
		ctx,
		`select `+kscan.TodoColumns+` from "todos"
		where "assigned_user_id" = $1 order by "id"`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Todo)
}
