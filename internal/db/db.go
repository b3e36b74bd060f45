package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("")
)

// DB is the storage contract the service layer depends on. Any engine with
// per-statement atomicity and a transaction for the account lookups around
// the follow edge insert can satisfy it; the only implementation in this
// repository is sqlite (see the impl package).
type DB interface {
	Accounts
	Social
	Jokes
	Notifications
}
