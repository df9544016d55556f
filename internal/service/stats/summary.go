package stats

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// ProjectSummary pairs a project with its all-time tracked total.
type ProjectSummary struct {
	Project *domain.Project
	TotalMs int64
}

// Summary is the dashboard aggregate: every non-deleted project with its
// total, plus the time tracked today.
type Summary struct {
	Projects []ProjectSummary
	TodayMs  int64
}

// Summary builds the dashboard aggregate for the authenticated user.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	// One grouped query for every project, not a query per project.
	totals, err := s.records.TotalsByProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project totals: %w", err)
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, project := range projects {
		summaries = append(summaries, ProjectSummary{Project: project, TotalMs: totals[project.ID]})
	}

	midnight, err := s.localMidnight(ctx, userID)
	if err != nil {
		return nil, err
	}
	today, err := s.records.TotalSince(ctx, userID, midnight)
	if err != nil {
		return nil, fmt.Errorf("today total: %w", err)
	}

	return &Summary{Projects: summaries, TodayMs: today}, nil
}
