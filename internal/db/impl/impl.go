package impl

import (
	"database/sql"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/jokedrop/internal/config"
	"github.com/sidereusnuntius/jokedrop/internal/db"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
	// locks serializes writers touching the same follow edge. The edge row
	// insert is atomic on its own; the lock covers the account lookups done
	// in the same unit of work.
	locks *mutexes.MutexMap
}

func New(config config.Configuration, d *sql.DB) db.DB {
	locks := mutexes.MutexMap{}
	return &dbImpl{
		Config: config,
		db:     d,
		locks:  &locks,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	switch err {
	case sql.ErrNoRows:
		return db.ErrNotFound
	default:
		if err != nil {
			log.Error().Err(err).Send()
		}
		return err
	}
}

func (d *dbImpl) WithTx(f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}
