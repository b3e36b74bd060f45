package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	ApprovalQueue = "Approval"
)

type ApprovalJob struct {
	JokeID string
}

func (j ApprovalJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        ApprovalQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
