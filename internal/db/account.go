package db

import (
	"context"

	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

type Accounts interface {
	// CreateAccount persists a new account with default profile fields and
	// privacy flags. The password must already be hashed. Returns ErrConflict
	// when the email is taken.
	CreateAccount(ctx context.Context, email, password string) error
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	// UpdateProfile overwrites all mutable profile fields and privacy flags.
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error
	UpdatePassword(ctx context.Context, email, password string) error
}
