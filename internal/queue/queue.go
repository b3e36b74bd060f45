package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/jokedrop/internal/db"
)

//go:generate mockgen -destination=../mocks/notifier.go -package=mocks github.com/sidereusnuntius/jokedrop/internal/queue Notifier

// Notifier pushes moderation outcomes to interested accounts without making
// the moderation call wait for the fan-out.
type Notifier interface {
	// JokeApproved enqueues a task that writes one notification per follower
	// of the joke's author.
	JokeApproved(ctx context.Context, jokeID string) error
}

type notifierImpl struct {
	db     db.DB
	queues *backlite.Client
}

func New(ctx context.Context, db db.DB, blClient *backlite.Client) Notifier {
	q := &notifierImpl{
		db:     db,
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *notifierImpl) JokeApproved(ctx context.Context, jokeID string) error {
	log.Debug().Str("joke", jokeID).Msg("enqueing approval fan-out task")
	task := ApprovalJob{
		JokeID: jokeID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
