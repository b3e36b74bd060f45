package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

var (
	ErrInvalidInput     = errors.New("invalid")
	ErrInvalidOperation = errors.New("not allowed")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Moderation decisions accepted by Moderate.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type Service interface {
	// CreateUser registers a new account with the default privacy flags and
	// an empty profile and follow graph.
	CreateUser(ctx context.Context, email, password string) error
	// AuthenticateUser verifies the given credentials. If authentication fails,
	// authenticated is false and err is nil; a non nil error indicates that an
	// internal, unexpected error has occured.
	AuthenticateUser(ctx context.Context, email, password string) (u domain.Account, authenticated bool, err error)
	ChangePassword(ctx context.Context, email, current, updated string) error

	// GetProfile returns the account's profile as seen by viewer: profile
	// fields the owner hides from third parties are blanked unless the viewer
	// is the owner.
	GetProfile(ctx context.Context, viewer, email string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error

	// Follow makes follower follow target. Idempotent; repeating the call is
	// a no-op. Self-follows fail with ErrInvalidOperation.
	Follow(ctx context.Context, follower, target string) error
	// Unfollow removes the follow edge; removing an absent edge is a no-op.
	Unfollow(ctx context.Context, follower, target string) error
	// Suggestions lists up to limit accounts the given one may want to follow,
	// excluding itself and everyone it already follows.
	Suggestions(ctx context.Context, email string, limit int64) ([]domain.Suggestion, error)

	// SubmitJoke creates a pending joke and returns its id.
	SubmitJoke(ctx context.Context, author, body string) (string, error)
	// ListJokes returns the author's pending and approved jokes, most recent
	// first. Rejected jokes are never shown back to their author.
	ListJokes(ctx context.Context, author string) ([]domain.Joke, error)
	// PendingJokes is the moderation queue. Callers must be authorized
	// beforehand; the service applies no policy of its own.
	PendingJokes(ctx context.Context) ([]domain.ModerationEntry, error)
	// Moderate applies an approve or reject decision to a joke. The transition
	// is unconditional: racing or repeated decisions are last-write-wins.
	Moderate(ctx context.Context, id, decision string) error
	// Trending returns up to limit approved jokes under the most-recent-N
	// policy, enriched with author names filtered by their privacy flags.
	Trending(ctx context.Context, limit int64) ([]domain.TrendingJoke, error)

	Notifications(ctx context.Context, email string) ([]domain.Notification, error)
}
