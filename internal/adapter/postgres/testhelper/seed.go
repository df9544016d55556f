package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default values. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		Timezone:     "UTC",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a project for the user. Returns a filled domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Project " + suffix,
		Color:     "#3366FF",
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, user_id, name, color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		project.ID, project.UserID, project.Name, project.Color, project.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedActivity creates an activity for the user. Returns a filled domain.Activity.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Activity {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	activity := domain.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Activity " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO activities (id, user_id, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		activity.ID, activity.UserID, activity.Name, activity.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert activity: %v", err)
	}

	return activity
}

// SeedTask creates a task with a fresh project and activity for the user.
// Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Task {
	t.Helper()

	project := SeedProject(t, pool, userID)
	activity := SeedActivity(t, pool, userID)
	return SeedTaskIn(t, pool, userID, project.ID, activity.ID)
}

// SeedTaskIn creates a task under an existing project and activity.
func SeedTaskIn(t *testing.T, pool *pgxpool.Pool, userID, projectID, activityID uuid.UUID) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:         uuid.New(),
		UserID:     userID,
		ProjectID:  projectID,
		ActivityID: activityID,
		Name:       "Task " + suffix,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, user_id, project_id, activity_id, name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.ProjectID, task.ActivityID, task.Name, task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTaskIn insert task: %v", err)
	}

	return task
}

// SeedClosedRecord creates a finished record for the task that started
// startedAgo before now and ran for duration.
func SeedClosedRecord(t *testing.T, pool *pgxpool.Pool, userID, taskID uuid.UUID, startedAgo, duration time.Duration) domain.Record {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	startedAt := now.Add(-startedAgo)
	endedAt := startedAt.Add(duration)
	return seedRecord(t, pool, userID, taskID, startedAt, &endedAt)
}

// SeedOpenRecord creates an open (still running) record for the task that
// started startedAgo before now.
func SeedOpenRecord(t *testing.T, pool *pgxpool.Pool, userID, taskID uuid.UUID, startedAgo time.Duration) domain.Record {
	t.Helper()

	startedAt := time.Now().UTC().Truncate(time.Microsecond).Add(-startedAgo)
	return seedRecord(t, pool, userID, taskID, startedAt, nil)
}

func seedRecord(t *testing.T, pool *pgxpool.Pool, userID, taskID uuid.UUID, startedAt time.Time, endedAt *time.Time) domain.Record {
	t.Helper()
	ctx := context.Background()

	record := domain.Record{
		ID:        uuid.New(),
		UserID:    userID,
		TaskID:    taskID,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO records (id, user_id, task_id, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.UserID, record.TaskID, record.StartedAt, record.EndedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedRecord insert record: %v", err)
	}

	return record
}
