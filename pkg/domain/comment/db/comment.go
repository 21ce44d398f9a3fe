package db

import (
	"context"

	"github.com/opsboard/opsboard/pkg/domain"
)

type Interface interface {
	// Create inserts comment and returns the persisted row.
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)

	// Get finds a comment by id. Absence is kerr.Missing.
	Get(ctx context.Context, id string) (domain.Comment, error)

	List(ctx context.Context) ([]domain.Comment, error)

	// UpdateContent rewrites the content. Absence is kerr.Missing.
	UpdateContent(ctx context.Context, id string, content string) (domain.Comment, error)

	// Delete removes the comment, returning the count of rows removed.
	Delete(ctx context.Context, id string) (int64, error)
}
