package db

import (
	"context"

	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

type Social interface {
	// Follow records that follower follows target. The edge is a single row,
	// so both directions of the relation become visible atomically; inserting
	// an edge that already exists is a no-op. Returns ErrNotFound when either
	// account is absent.
	Follow(ctx context.Context, follower, target string) error
	// Unfollow removes the edge if present; removing an absent edge is a no-op.
	Unfollow(ctx context.Context, follower, target string) error
	Followers(ctx context.Context, email string) ([]string, error)
	Following(ctx context.Context, email string) ([]string, error)
	// Suggestions returns up to limit accounts the given one does not follow
	// yet, excluding itself, in ascending account id order. Names of accounts
	// that hide them are already blanked out.
	Suggestions(ctx context.Context, email string, limit int64) ([]domain.Suggestion, error)
}
