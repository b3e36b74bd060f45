package db

import (
	"context"

	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

type Jokes interface {
	// InsertJoke persists a new joke. Returns ErrNotFound when the author
	// account does not exist.
	InsertJoke(ctx context.Context, joke domain.Joke) error
	// JokesByAuthor returns the author's jokes restricted to the given
	// statuses, most recent first.
	JokesByAuthor(ctx context.Context, email string, statuses []domain.JokeStatus) ([]domain.Joke, error)
	// PendingJokes is the moderation queue, oldest first.
	PendingJokes(ctx context.Context) ([]domain.ModerationEntry, error)
	// SetJokeStatus applies a moderation decision unconditionally; racing
	// decisions on the same joke are last-write-wins. Returns ErrNotFound
	// when no joke has the given id.
	SetJokeStatus(ctx context.Context, id string, status domain.JokeStatus) error
	// Trending returns up to limit approved jokes, most recent first, each
	// carrying the author name the author allows third parties to see
	// (the email when the name is hidden or empty).
	Trending(ctx context.Context, limit int64) ([]domain.TrendingJoke, error)
}

type Notifications interface {
	// FanOutApproval writes one notification row per follower of the joke's
	// author. It only fans out jokes that are currently approved and reports
	// the number of rows written.
	FanOutApproval(ctx context.Context, jokeID string, created int64) (int64, error)
	NotificationsFor(ctx context.Context, email string) ([]domain.Notification, error)
}
