package db

import (
	"context"

	"github.com/opsboard/opsboard/pkg/domain"
)

type Interface interface {
	// Create inserts the membership as a single conditional write: the
	// unique constraint on (project_id, user_id) decides, so two racing
	// requests for the same pair cannot both succeed. A losing insert is
	// kerr.Duplicate.
	Create(ctx context.Context, membership domain.Membership) (domain.Membership, error)

	// Delete removes the membership of userId in projectId, returning the
	// count of rows removed.
	Delete(ctx context.Context, projectId string, userId string) (int64, error)
}
