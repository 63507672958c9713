package favourite

import "context"

type Repository interface {
	// ListByUser returns team names ordered by name.
	ListByUser(ctx context.Context, userID int64) ([]string, error)
	// Add is idempotent on (user, team).
	Add(ctx context.Context, team Team) error
	// Remove succeeds when the pair does not exist.
	Remove(ctx context.Context, team Team) error
}
