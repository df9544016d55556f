package task

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// builder is the shared statement builder with PostgreSQL placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListQuery translates a domain.TaskFilter into a SELECT statement.
// Nil filter fields are ignored; the base predicate always restricts to the
// owner's non-deleted tasks.
func buildListQuery(userID uuid.UUID, filter domain.TaskFilter) (string, []any, error) {
	q := builder.
		Select("id", "user_id", "project_id", "activity_id", "name", "created_at", "deleted", "done").
		From("tasks").
		Where(squirrel.Eq{"user_id": userID, "deleted": false}).
		OrderBy("created_at DESC")

	if filter.ProjectID != nil {
		q = q.Where(squirrel.Eq{"project_id": *filter.ProjectID})
	}
	if filter.ActivityID != nil {
		q = q.Where(squirrel.Eq{"activity_id": *filter.ActivityID})
	}
	if filter.Done != nil {
		q = q.Where(squirrel.Eq{"done": *filter.Done})
	}
	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + *filter.Search + "%"})
	}

	return q.ToSql()
}
