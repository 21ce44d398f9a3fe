package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/domain"
	kscan "github.com/opsboard/opsboard/pkg/domain/internal/db/postgres"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
)

type pgTodo struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) tododb.Interface {
	return &pgTodo{pool: pool}
}

func (t *pgTodo) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	status := todo.Status
	if status == "" {
		status = domain.Pending
	}
	row := t.pool.QueryRow(
		ctx,
		`insert into "todos" ("id","title","description","status","due_date","project_id")
		values ($1, $2, $3, $4, $5, $6)
		returning `+kscan.TodoColumns,
		todo.Id, todo.Title, todo.Description, string(status), todo.DueDate, todo.ProjectId,
	)
	return kscan.Todo(row)
}

func (t *pgTodo) Get(ctx context.Context, id string) (domain.Todo, error) {
	row := t.pool.QueryRow(
		ctx,
		`select `+kscan.TodoColumns+` from "todos" where "id" = $1`,
		id,
	)
	todo, err := kscan.Todo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Todo{}, kerr.Missing{Table: "todos", Identity: id}
	}
	return todo, err
}

func (t *pgTodo) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := t.pool.Query(
		ctx,
		`select `+kscan.TodoColumns+` from "todos" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Todo)
}

func (t *pgTodo) Update(ctx context.Context, id string, update tododb.Update) (domain.Todo, error) {
	row := t.pool.QueryRow(
		ctx,
		`update "todos"
		set "title" = $2, "description" = $3, "due_date" = $4, "project_id" = $5, "updated_at" = now()
		where "id" = $1
		returning `+kscan.TodoColumns,
		id, update.Title, update.Description, update.DueDate, update.ProjectId,
	)
	todo, err := kscan.Todo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Todo{}, kerr.Missing{Table: "todos", Identity: id}
	}
	return todo, err
}

func (t *pgTodo) SetStatus(ctx context.Context, id string, status domain.TodoStatus) (domain.Todo, error) {
	row := t.pool.QueryRow(
		ctx,
		`update "todos" set "status" = $2, "updated_at" = now()
		where "id" = $1
		returning `+kscan.TodoColumns,
		id, string(status),
	)
	todo, err := kscan.Todo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Todo{}, kerr.Missing{Table: "todos", Identity: id}
	}
	return todo, err
}

func (t *pgTodo) Assign(ctx context.Context, id string, userId string) (domain.Todo, error) {
	row := t.pool.QueryRow(
		ctx,
		`update "todos" set "assigned_user_id" = $2, "updated_at" = now()
		where "id" = $1
		returning `+kscan.TodoColumns,
		id, userId,
	)
	todo, err := kscan.Todo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Todo{}, kerr.Missing{Table: "todos", Identity: id}
	}
	return todo, err
}

func (t *pgTodo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := t.pool.Exec(ctx, `delete from "todos" where "id" = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t *pgTodo) Comments(ctx context.Context, todoId string) ([]domain.Comment, error) {
	rows, err := t.pool.Query(
		ctx,
		`select `+kscan.CommentColumns+` from "comments"
		where "todo_id" = $1 order by "id"`,
		todoId,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Comment)
}
