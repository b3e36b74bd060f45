package validate

import (
	"errors"
	"fmt"
	"net/mail"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxJokeLen     = 2048
)

func SignUpForm(email, password string) error {
	return errors.Join(Email(email), Password(password))
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func JokeBody(body string) error {
	if l := len(body); l == 0 {
		return errors.New("empty joke")
	} else if l > MaxJokeLen {
		return fmt.Errorf("joke too long; max %d characters", MaxJokeLen)
	}
	return nil
}
