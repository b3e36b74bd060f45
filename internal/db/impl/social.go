package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sidereusnuntius/jokedrop/internal/db"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

// pairKey gives racing follow/unfollow calls on the same two accounts the
// same lock regardless of direction.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

func (d *dbImpl) Follow(ctx context.Context, follower, target string) error {
	unlock := d.locks.Lock(pairKey(follower, target))
	defer unlock()

	return d.WithTx(func(tx *sql.Tx) error {
		followerId, err := accountId(ctx, tx, follower)
		if err != nil {
			return err
		}
		targetId, err := accountId(ctx, tx, target)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO follows(follower_id, target_id, created) VALUES (?,?,?)",
			followerId, targetId, time.Now().Unix())
		return err
	})
}

func (d *dbImpl) Unfollow(ctx context.Context, follower, target string) error {
	unlock := d.locks.Lock(pairKey(follower, target))
	defer unlock()

	return d.WithTx(func(tx *sql.Tx) error {
		followerId, err := accountId(ctx, tx, follower)
		if err != nil {
			return err
		}
		targetId, err := accountId(ctx, tx, target)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"DELETE FROM follows WHERE follower_id = ? AND target_id = ?",
			followerId, targetId)
		return err
	})
}

func accountId(ctx context.Context, tx *sql.Tx, email string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM accounts WHERE email = ?", email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: account %s", db.ErrNotFound, email)
	}
	return id, err
}

func (d *dbImpl) Followers(ctx context.Context, email string) ([]string, error) {
	return d.edgeList(ctx, `SELECT a.email FROM accounts a
		JOIN follows f ON f.follower_id = a.id
		JOIN accounts me ON me.id = f.target_id
		WHERE me.email = ?
		ORDER BY f.created, a.id`, email)
}

func (d *dbImpl) Following(ctx context.Context, email string) ([]string, error) {
	return d.edgeList(ctx, `SELECT a.email FROM accounts a
		JOIN follows f ON f.target_id = a.id
		JOIN accounts me ON me.id = f.follower_id
		WHERE me.email = ?
		ORDER BY f.created, a.id`, email)
}

func (d *dbImpl) edgeList(ctx context.Context, query, email string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var e string
		if err = rows.Scan(&e); err != nil {
			return nil, d.HandleError(err)
		}
		emails = append(emails, e)
	}
	return emails, d.HandleError(rows.Err())
}

func (d *dbImpl) Suggestions(ctx context.Context, email string, limit int64) ([]domain.Suggestion, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT
			a.email,
			CASE WHEN a.privacy_name THEN a.name ELSE '' END
		FROM accounts a
		WHERE a.email <> ?
		AND a.id NOT IN (
			SELECT f.target_id FROM follows f
			JOIN accounts me ON me.id = f.follower_id
			WHERE me.email = ?
		)
		ORDER BY a.id
		LIMIT ?`, email, email, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	suggestions := []domain.Suggestion{}
	for rows.Next() {
		var s domain.Suggestion
		if err = rows.Scan(&s.Email, &s.Name); err != nil {
			return nil, d.HandleError(err)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, d.HandleError(rows.Err())
}
