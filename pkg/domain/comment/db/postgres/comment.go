package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/domain"
	comdb "github.com/opsboard/opsboard/pkg/domain/comment/db"
	kscan "github.com/opsboard/opsboard/pkg/domain/internal/db/postgres"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

type pgComment struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) comdb.Interface {
	return &pgComment{pool: pool}
}

func (c *pgComment) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	row := c.pool.QueryRow(
		ctx,
		`insert into "comments" ("id","content","todo_id","user_id")
		values ($1, $2, $3, $4)
		returning `+kscan.CommentColumns,
		comment.Id, comment.Content, comment.TodoId, comment.UserId,
	)
	return kscan.Comment(row)
}

func (c *pgComment) Get(ctx context.Context, id string) (domain.Comment, error) {
	row := c.pool.QueryRow(
		ctx,
		`select `+kscan.CommentColumns+` from "comments" where "id" = $1`,
		id,
	)
	comment, err := kscan.Comment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, kerr.Missing{Table: "comments", Identity: id}
	}
	return comment, err
}

func (c *pgComment) List(ctx context.Context) ([]domain.Comment, error) {
	rows, err := c.pool.Query(
		ctx,
		`select `+kscan.CommentColumns+` from "comments" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	return kscan.List(rows, kscan.Comment)
}

func (c *pgComment) UpdateContent(ctx context.Context, id string, content string) (domain.Comment, error) {
	row := c.pool.QueryRow(
		ctx,
		`update "comments" set "content" = $2, "updated_at" = now()
		where "id" = $1
		returning `+kscan.CommentColumns,
		id, content,
	)
	comment, err := kscan.Comment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, kerr.Missing{Table: "comments", Identity: id}
	}
	return comment, err
}

func (c *pgComment) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := c.pool.Exec(ctx, `delete from "comments" where "id" = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
