package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// UpdateSettings updates the authenticated user's display name and timezone.
// Omitted fields keep their current value.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateSettings get user: %w", err)
	}

	name := current.Name
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	timezone := current.Timezone
	if input.Timezone != nil {
		timezone = *input.Timezone
	}

	updated, err := s.users.UpdateProfile(ctx, userID, name, timezone)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone", timezone),
	)

	return updated, nil
}
