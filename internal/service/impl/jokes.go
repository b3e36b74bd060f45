package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
	"github.com/sidereusnuntius/jokedrop/internal/service"
	"github.com/sidereusnuntius/jokedrop/internal/validate"
)

func (s *AppService) SubmitJoke(ctx context.Context, author, body string) (string, error) {
	author = strings.TrimSpace(author)
	body = strings.TrimSpace(body)
	if author == "" {
		return "", fmt.Errorf("%w: empty author", service.ErrInvalidInput)
	}
	if err := validate.JokeBody(body); err != nil {
		return "", fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	joke := domain.Joke{
		ID:      uuid.NewString(),
		Author:  author,
		Body:    body,
		Status:  domain.StatusPending,
		Created: time.Now().Unix(),
	}

	if err := s.DB.InsertJoke(ctx, joke); err != nil {
		return "", err
	}
	return joke.ID, nil
}

func (s *AppService) ListJokes(ctx context.Context, author string) ([]domain.Joke, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, fmt.Errorf("%w: empty author", service.ErrInvalidInput)
	}

	return s.DB.JokesByAuthor(ctx, author, []domain.JokeStatus{
		domain.StatusPending,
		domain.StatusApproved,
	})
}

func (s *AppService) PendingJokes(ctx context.Context) ([]domain.ModerationEntry, error) {
	return s.DB.PendingJokes(ctx)
}

func (s *AppService) Moderate(ctx context.Context, id, decision string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty joke id", service.ErrInvalidInput)
	}

	var status domain.JokeStatus
	switch decision {
	case service.DecisionApprove:
		status = domain.StatusApproved
	case service.DecisionReject:
		status = domain.StatusRejected
	default:
		return fmt.Errorf("%w: unknown decision %q", service.ErrInvalidInput, decision)
	}

	if err := s.DB.SetJokeStatus(ctx, id, status); err != nil {
		return err
	}

	if status == domain.StatusApproved && s.notifier != nil {
		// The decision already stands; a failed enqueue costs followers a
		// notification, not the moderator a retry.
		if err := s.notifier.JokeApproved(ctx, id); err != nil {
			log.Error().Err(err).Str("joke", id).Msg("failed to enqueue approval fan-out")
		}
	}
	return nil
}

func (s *AppService) Trending(ctx context.Context, limit int64) ([]domain.TrendingJoke, error) {
	if limit <= 0 {
		limit = s.Config.TrendingSize
	}

	return s.DB.Trending(ctx, limit)
}

func (s *AppService) Notifications(ctx context.Context, email string) ([]domain.Notification, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: empty account identity", service.ErrInvalidInput)
	}

	return s.DB.NotificationsFor(ctx, email)
}
