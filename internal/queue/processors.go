package queue

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

func (q *notifierImpl) register() {
	approvalQueue := backlite.NewQueue[ApprovalJob](q.fanOut())

	q.queues.Register(approvalQueue)
}

func (q *notifierImpl) fanOut() func(context.Context, ApprovalJob) error {
	return func(ctx context.Context, task ApprovalJob) error {
		// A joke rejected between enqueue and execution fans out to nobody;
		// FanOutApproval checks the current status, so last write wins here
		// just as it does for the moderation call itself.
		n, err := q.db.FanOutApproval(ctx, task.JokeID, time.Now().Unix())
		if err != nil {
			log.Error().Err(err).Str("joke", task.JokeID).Msg("fan-out failed")
			return err
		}

		log.Debug().Str("joke", task.JokeID).Int64("notified", n).Msg("approval fan-out")
		return nil
	}
}
