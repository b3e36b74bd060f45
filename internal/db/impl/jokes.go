package impl

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/jokedrop/internal/db"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

func (d *dbImpl) InsertJoke(ctx context.Context, joke domain.Joke) error {
	return d.WithTx(func(tx *sql.Tx) error {
		authorId, err := accountId(ctx, tx, joke.Author)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO jokes(id, author_id, body, status, created) VALUES (?,?,?,?,?)",
			joke.ID, authorId, joke.Body, joke.Status, joke.Created)
		return err
	})
}

func (d *dbImpl) JokesByAuthor(ctx context.Context, email string, statuses []domain.JokeStatus) ([]domain.Joke, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	args := []any{email}
	for _, s := range statuses {
		args = append(args, s)
	}

	rows, err := d.db.QueryContext(ctx, `SELECT j.id, a.email, j.body, j.status, j.created
		FROM jokes j
		JOIN accounts a ON a.id = j.author_id
		WHERE a.email = ? AND j.status IN (`+placeholders+`)
		ORDER BY j.created DESC, j.id`, args...)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	return scanJokes(rows, d.HandleError)
}

func scanJokes(rows *sql.Rows, handle func(error) error) ([]domain.Joke, error) {
	jokes := []domain.Joke{}
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.Author, &j.Body, &j.Status, &j.Created); err != nil {
			return nil, handle(err)
		}
		jokes = append(jokes, j)
	}
	return jokes, handle(rows.Err())
}

func (d *dbImpl) PendingJokes(ctx context.Context) ([]domain.ModerationEntry, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT j.id, a.email, j.body
		FROM jokes j
		JOIN accounts a ON a.id = j.author_id
		WHERE j.status = ?
		ORDER BY j.created, j.id`, domain.StatusPending)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	queue := []domain.ModerationEntry{}
	for rows.Next() {
		var e domain.ModerationEntry
		if err = rows.Scan(&e.ID, &e.Author, &e.Body); err != nil {
			return nil, d.HandleError(err)
		}
		queue = append(queue, e)
	}
	return queue, d.HandleError(rows.Err())
}

func (d *dbImpl) SetJokeStatus(ctx context.Context, id string, status domain.JokeStatus) error {
	result, err := d.db.ExecContext(ctx,
		"UPDATE jokes SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return d.HandleError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: joke %s", db.ErrNotFound, id)
	}
	return nil
}

// Trending applies the most-recent-N policy: approved jokes ordered by
// submission time, newest first. Deterministic for a fixed store snapshot,
// unlike the random sampling some deployments asked for.
func (d *dbImpl) Trending(ctx context.Context, limit int64) ([]domain.TrendingJoke, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT
			j.body,
			CASE WHEN a.privacy_name AND a.name <> '' THEN a.name ELSE a.email END
		FROM jokes j
		JOIN accounts a ON a.id = j.author_id
		WHERE j.status = ?
		ORDER BY j.created DESC, j.id
		LIMIT ?`, domain.StatusApproved, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	trending := []domain.TrendingJoke{}
	for rows.Next() {
		var t domain.TrendingJoke
		if err = rows.Scan(&t.Body, &t.Author); err != nil {
			return nil, d.HandleError(err)
		}
		trending = append(trending, t)
	}
	return trending, d.HandleError(rows.Err())
}

func (d *dbImpl) FanOutApproval(ctx context.Context, jokeID string, created int64) (int64, error) {
	result, err := d.db.ExecContext(ctx, `INSERT INTO notifications(account_id, joke_id, author_email, created)
		SELECT f.follower_id, j.id, a.email, ?
		FROM jokes j
		JOIN accounts a ON a.id = j.author_id
		JOIN follows f ON f.target_id = j.author_id
		WHERE j.id = ? AND j.status = ?`,
		created, jokeID, domain.StatusApproved)
	if err != nil {
		return 0, d.HandleError(err)
	}

	n, err := result.RowsAffected()
	return n, d.HandleError(err)
}

func (d *dbImpl) NotificationsFor(ctx context.Context, email string) ([]domain.Notification, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT n.id, n.joke_id, n.author_email, n.created
		FROM notifications n
		JOIN accounts a ON a.id = n.account_id
		WHERE a.email = ?
		ORDER BY n.created DESC, n.id DESC`, email)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.JokeID, &n.Author, &n.Created); err != nil {
			return nil, d.HandleError(err)
		}
		notifications = append(notifications, n)
	}
	return notifications, d.HandleError(rows.Err())
}
