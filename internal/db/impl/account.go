package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sidereusnuntius/jokedrop/internal/db"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

func (d *dbImpl) CreateAccount(ctx context.Context, email, password string) error {
	privacy := domain.DefaultPrivacy()
	_, err := d.db.ExecContext(ctx, `INSERT INTO accounts(
			email,
			password,
			privacy_name,
			privacy_location,
			privacy_dob,
			created
		) VALUES (?,?,?,?,?,?)`,
		email, password, privacy.Name, privacy.Location, privacy.DOB, time.Now().Unix())

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: account %s already exists", db.ErrConflict, email)
	}
	return d.HandleError(err)
}

func (d *dbImpl) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := d.db.QueryRowContext(ctx, `SELECT
			id, email, password, name, location, dob, profile_picture,
			privacy_name, privacy_location, privacy_dob, moderator, created
		FROM accounts WHERE email = ?`, email)

	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.Password, &a.Name, &a.Location, &a.DOB,
		&a.ProfilePicture, &a.Privacy.Name, &a.Privacy.Location,
		&a.Privacy.DOB, &a.Moderator, &a.Created,
	)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: account %s", d.HandleError(err), email)
	}
	return a, nil
}

func (d *dbImpl) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error {
	result, err := d.db.ExecContext(ctx, `UPDATE accounts SET
			name = ?,
			location = ?,
			dob = ?,
			profile_picture = ?,
			privacy_name = ?,
			privacy_location = ?,
			privacy_dob = ?
		WHERE email = ?`,
		update.Name, update.Location, update.DOB, update.ProfilePicture,
		update.Privacy.Name, update.Privacy.Location, update.Privacy.DOB,
		email)
	if err != nil {
		return d.HandleError(err)
	}
	return d.ensureUpdated(result, email)
}

func (d *dbImpl) UpdatePassword(ctx context.Context, email, password string) error {
	result, err := d.db.ExecContext(ctx,
		"UPDATE accounts SET password = ? WHERE email = ?", password, email)
	if err != nil {
		return d.HandleError(err)
	}
	return d.ensureUpdated(result, email)
}

func (d *dbImpl) ensureUpdated(result sql.Result, email string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: account %s", db.ErrNotFound, email)
	}
	return nil
}
