//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/activity"
	auditrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/audit"
	projectrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/record"
	taskrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	authsvc "github.com/heartmarshall/timetrack-backend/internal/service/auth"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
	"github.com/heartmarshall/timetrack-backend/internal/service/stats"
	"github.com/heartmarshall/timetrack-backend/internal/service/tracker"
	"github.com/heartmarshall/timetrack-backend/internal/transport/loader"
	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetrack-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps an httptest.Server running the full REST stack over a
// real migrated database.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.DiscardHandler)

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	activities := activityrepo.New(pool)
	tasks := taskrepo.New(pool)
	records := recordrepo.New(pool)
	audit := auditrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:       "e2e-test-secret-key-0123456789abcdef",
		JWTIssuer:       "timetrack-e2e",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		BcryptCost:      4,
	}
	trackerCfg := config.TrackerConfig{
		MaxRecordsPageSize:     500,
		DefaultRecordsPageSize: 50,
	}

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, authCfg)
	catalogService := catalog.NewService(logger, projects, activities, tasks, records, audit, txManager)
	trackerService := tracker.NewService(logger, tasks, records, audit, txManager, trackerCfg)
	statsService := stats.NewService(logger, users, projects, tasks, records)

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Tracker: rest.NewTrackerHandler(trackerService, logger),
		Stats:   rest.NewStatsHandler(statsService, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Auth(authService),
		loader.Middleware(&loader.Repos{Record: records}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			// Listing endpoints return arrays; wrap them for uniform access.
			var arr []any
			require.NoError(t, json.Unmarshal(raw, &arr), "body: %s", raw)
			decoded = map[string]any{"items": arr}
		}
	}
	return resp, decoded
}

// registerUser registers a fresh user and returns its access token.
func (ts *testServer) registerUser(t *testing.T) string {
	t.Helper()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	resp, body := ts.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    "e2e-" + suffix + "@example.com",
		"username": "e2e_" + suffix,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register body: %v", body)
	return body["accessToken"].(string)
}

// createTask creates a project, an activity and a task; returns their IDs.
func (ts *testServer) createTask(t *testing.T, token, name string) (taskID, projectID, activityID string) {
	t.Helper()

	resp, project := ts.do(t, http.MethodPost, "/projects", token, map[string]any{
		"name": name + " project", "color": "#33AA55",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "project body: %v", project)

	resp, activity := ts.do(t, http.MethodPost, "/activities", token, map[string]any{
		"name": name + " activity",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "activity body: %v", activity)

	resp, task := ts.do(t, http.MethodPost, "/tasks", token, map[string]any{
		"name":       name,
		"projectId":  project["id"],
		"activityId": activity["id"],
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "task body: %v", task)

	return task["id"].(string), project["id"].(string), activity["id"].(string)
}
