package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/jokedrop/internal/domain"
	"github.com/sidereusnuntius/jokedrop/internal/service"
)

func (s *AppService) Follow(ctx context.Context, follower, target string) error {
	follower = strings.TrimSpace(follower)
	target = strings.TrimSpace(target)
	if follower == "" || target == "" {
		return fmt.Errorf("%w: empty account identity", service.ErrInvalidInput)
	}
	if follower == target {
		return fmt.Errorf("%w: an account cannot follow itself", service.ErrInvalidOperation)
	}

	return s.DB.Follow(ctx, follower, target)
}

func (s *AppService) Unfollow(ctx context.Context, follower, target string) error {
	follower = strings.TrimSpace(follower)
	target = strings.TrimSpace(target)
	if follower == "" || target == "" {
		return fmt.Errorf("%w: empty account identity", service.ErrInvalidInput)
	}
	if follower == target {
		// Self edges never exist, so there is nothing to remove.
		return nil
	}

	return s.DB.Unfollow(ctx, follower, target)
}

func (s *AppService) Suggestions(ctx context.Context, email string, limit int64) ([]domain.Suggestion, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: empty account identity", service.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.Config.SuggestionLimit
	}

	return s.DB.Suggestions(ctx, email, limit)
}
