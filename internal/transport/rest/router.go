package rest

import "net/http"

// Handlers aggregates every REST handler mounted by the router.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Tracker *TrackerHandler
	Stats   *StatsHandler
	Health  *HealthHandler
}

// NewRouter builds the API route table. Authentication, CORS, logging and
// the per-request loaders are applied by the caller as middleware around
// the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /me", h.Auth.Me)
	mux.HandleFunc("PATCH /me/settings", h.Auth.UpdateSettings)

	// Projects
	mux.HandleFunc("POST /projects", h.Catalog.CreateProject)
	mux.HandleFunc("GET /projects", h.Catalog.ListProjects)
	mux.HandleFunc("GET /projects/{id}", h.Catalog.GetProject)
	mux.HandleFunc("PUT /projects/{id}", h.Catalog.UpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", h.Catalog.DeleteProject)

	// Activities
	mux.HandleFunc("POST /activities", h.Catalog.CreateActivity)
	mux.HandleFunc("GET /activities", h.Catalog.ListActivities)
	mux.HandleFunc("GET /activities/{id}", h.Catalog.GetActivity)
	mux.HandleFunc("PUT /activities/{id}", h.Catalog.UpdateActivity)
	mux.HandleFunc("DELETE /activities/{id}", h.Catalog.DeleteActivity)

	// Tasks
	mux.HandleFunc("POST /tasks", h.Catalog.CreateTask)
	mux.HandleFunc("GET /tasks", h.Catalog.ListTasks)
	mux.HandleFunc("GET /tasks/{id}", h.Catalog.GetTask)
	mux.HandleFunc("PUT /tasks/{id}", h.Catalog.UpdateTask)
	mux.HandleFunc("PATCH /tasks/{id}/done", h.Catalog.MarkTaskDone)
	mux.HandleFunc("DELETE /tasks/{id}", h.Catalog.DeleteTask)

	// Tracking
	mux.HandleFunc("POST /tracker/start", h.Tracker.Start)
	mux.HandleFunc("POST /tracker/stop", h.Tracker.Stop)
	mux.HandleFunc("GET /tracker/active", h.Tracker.Active)
	mux.HandleFunc("POST /records", h.Tracker.CreateRecord)
	mux.HandleFunc("GET /records", h.Tracker.ListRecords)
	mux.HandleFunc("DELETE /records/{id}", h.Tracker.DeleteRecord)

	// Stats
	mux.HandleFunc("GET /stats/tasks/{id}/total", h.Stats.TaskTotal)
	mux.HandleFunc("GET /stats/projects/{id}/total", h.Stats.ProjectTotal)
	mux.HandleFunc("GET /stats/today", h.Stats.TodayTotal)
	mux.HandleFunc("GET /stats/summary", h.Stats.Summary)

	return mux
}
