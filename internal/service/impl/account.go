package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/jokedrop/internal/db"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
	"github.com/sidereusnuntius/jokedrop/internal/service"
	"github.com/sidereusnuntius/jokedrop/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *AppService) CreateUser(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	err := validate.SignUpForm(email, password)
	if err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}

	return s.DB.CreateAccount(ctx, email, string(hash))
}

// AuthenticateUser confirms the user's identity and, if their credentials are correct, returns data to be put
// in the login session, such as the account's email and moderator flag.
func (s *AppService) AuthenticateUser(ctx context.Context, email, password string) (u domain.Account, authenticated bool, err error) {
	email = strings.TrimSpace(email)

	if err = validate.Email(email); err != nil {
		err = fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		return
	}

	u, err = s.DB.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// An unknown email is a failed login, not an error the caller
			// can distinguish from a bad password.
			err = nil
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	authenticated = err == nil
	err = nil
	return
}

func (s *AppService) ChangePassword(ctx context.Context, email, current, updated string) error {
	if err := validate.Password(updated); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	u, err := s.DB.GetAccountByEmail(ctx, email)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)) != nil {
		return fmt.Errorf("%w: incorrect current password", service.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(updated), BcryptCost)
	if err != nil {
		return err
	}

	return s.DB.UpdatePassword(ctx, email, string(hash))
}

func (s *AppService) GetProfile(ctx context.Context, viewer, email string) (domain.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Profile{}, fmt.Errorf("%w: empty email", service.ErrInvalidInput)
	}

	u, err := s.DB.GetAccountByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}

	followers, err := s.DB.Followers(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}
	following, err := s.DB.Following(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{
		Email:          u.Email,
		Name:           u.Name,
		Location:       u.Location,
		DOB:            u.DOB,
		ProfilePicture: u.ProfilePicture,
		Privacy:        u.Privacy,
		Followers:      followers,
		Following:      following,
	}

	if viewer != email {
		if !u.Privacy.Name {
			p.Name = ""
		}
		if !u.Privacy.Location {
			p.Location = ""
		}
		if !u.Privacy.DOB {
			p.DOB = ""
		}
	}
	return p, nil
}

func (s *AppService) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error {
	return s.DB.UpdateProfile(ctx, email, update)
}
