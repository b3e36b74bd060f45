package domain

type JokeStatus string

const (
	StatusPending  JokeStatus = "pending"
	StatusApproved JokeStatus = "approved"
	StatusRejected JokeStatus = "rejected"
)

type Joke struct {
	ID      string
	Author  string
	Body    string
	Status  JokeStatus
	Created int64
}

// ModerationEntry is a row of the pending queue shown to moderators.
type ModerationEntry struct {
	ID     string
	Author string
	Body   string
}

// TrendingJoke is an approved joke enriched with its author's display name.
// Author falls back to the account's email when the name is hidden or empty.
type TrendingJoke struct {
	Body   string
	Author string
}

// Notification tells a follower that someone they follow had a joke approved.
type Notification struct {
	ID      int64
	JokeID  string
	Author  string
	Created int64
}
