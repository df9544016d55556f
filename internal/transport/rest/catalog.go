package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
	"github.com/heartmarshall/timetrack-backend/internal/transport/loader"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	CreateProject(ctx context.Context, input catalog.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, input catalog.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error

	CreateActivity(ctx context.Context, input catalog.CreateActivityInput) (*domain.Activity, error)
	GetActivity(ctx context.Context, activityID uuid.UUID) (*domain.Activity, error)
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	UpdateActivity(ctx context.Context, input catalog.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error

	CreateTask(ctx context.Context, input catalog.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, input catalog.UpdateTaskInput) (*domain.Task, error)
	MarkTaskDone(ctx context.Context, taskID uuid.UUID, done bool) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// CatalogHandler serves project, activity and task REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type projectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

type activityRequest struct {
	Name string `json:"name"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type taskRequest struct {
	Name       string `json:"name"`
	ProjectID  string `json:"projectId"`
	ActivityID string `json:"activityId"`
}

type taskDoneRequest struct {
	Done bool `json:"done"`
}

type taskResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ProjectID  string    `json:"projectId"`
	ActivityID string    `json:"activityId"`
	Done       bool      `json:"done"`
	TotalMs    int64     `json:"totalMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// CreateProject handles POST /projects.
func (h *CatalogHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.svc.CreateProject(r.Context(), catalog.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(project))
}

// ListProjects handles GET /projects.
func (h *CatalogHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProject handles GET /projects/{id}.
func (h *CatalogHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(project))
}

// UpdateProject handles PUT /projects/{id}.
func (h *CatalogHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.svc.UpdateProject(r.Context(), catalog.UpdateProjectInput{
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(project))
}

// DeleteProject handles DELETE /projects/{id}.
func (h *CatalogHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

// CreateActivity handles POST /activities.
func (h *CatalogHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.svc.CreateActivity(r.Context(), catalog.CreateActivityInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(activity))
}

// ListActivities handles GET /activities.
func (h *CatalogHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, toActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetActivity handles GET /activities/{id}.
func (h *CatalogHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.svc.GetActivity(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

// UpdateActivity handles PUT /activities/{id}.
func (h *CatalogHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.svc.UpdateActivity(r.Context(), catalog.UpdateActivityInput{
		ActivityID: id,
		Name:       req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

// DeleteActivity handles DELETE /activities/{id}.
func (h *CatalogHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteActivity(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

// CreateTask handles POST /tasks.
func (h *CatalogHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.svc.CreateTask(r.Context(), catalog.CreateTaskInput{
		Name:       input.Name,
		ProjectID:  input.ProjectID,
		ActivityID: input.ActivityID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskWithTotal(r.Context(), task))
}

// ListTasks handles GET /tasks with optional project_id, activity_id,
// done and q query filters. Per-task totals are resolved through the
// batching loader, one SUM query for the whole page.
func (h *CatalogHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseTaskFilter(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := tasksWithTotals(r.Context(), tasks)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTask handles GET /tasks/{id}.
func (h *CatalogHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskWithTotal(r.Context(), task))
}

// UpdateTask handles PUT /tasks/{id}.
func (h *CatalogHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), catalog.UpdateTaskInput{
		TaskID:     id,
		Name:       input.Name,
		ProjectID:  input.ProjectID,
		ActivityID: input.ActivityID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskWithTotal(r.Context(), task))
}

// MarkTaskDone handles PATCH /tasks/{id}/done.
func (h *CatalogHandler) MarkTaskDone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req taskDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.MarkTaskDone(r.Context(), id, req.Done)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskWithTotal(r.Context(), task))
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *CatalogHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type taskInput struct {
	Name       string
	ProjectID  uuid.UUID
	ActivityID uuid.UUID
}

func (h *CatalogHandler) decodeTaskInput(w http.ResponseWriter, r *http.Request) (taskInput, bool) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return taskInput{}, false
	}

	var in taskInput
	in.Name = req.Name
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid projectId")
			return taskInput{}, false
		}
		in.ProjectID = id
	}
	if req.ActivityID != "" {
		id, err := uuid.Parse(req.ActivityID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid activityId")
			return taskInput{}, false
		}
		in.ActivityID = id
	}
	return in, true
}

func parseTaskFilter(w http.ResponseWriter, r *http.Request) (domain.TaskFilter, bool) {
	var filter domain.TaskFilter
	q := r.URL.Query()

	if v := q.Get("project_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project_id")
			return filter, false
		}
		filter.ProjectID = &id
	}
	if v := q.Get("activity_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid activity_id")
			return filter, false
		}
		filter.ActivityID = &id
	}
	if v := q.Get("done"); v != "" {
		done, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid done")
			return filter, false
		}
		filter.Done = &done
	}
	if v := q.Get("q"); v != "" {
		filter.Search = &v
	}
	return filter, true
}

// pathUUID parses the named path segment as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
	}
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// taskWithTotal resolves a single task total through the loader.
// A loader failure degrades to zero rather than failing the mutation response.
func taskWithTotal(ctx context.Context, task *domain.Task) taskResponse {
	total, err := loader.FromContext(ctx).TaskTotalMs.Load(ctx, task.ID)()
	if err != nil {
		total = 0
	}
	return toTaskResponse(task, total)
}

// tasksWithTotals resolves totals for a whole listing in one batched query.
func tasksWithTotals(ctx context.Context, tasks []*domain.Task) ([]taskResponse, error) {
	loaders := loader.FromContext(ctx)

	thunks := make([]func() (int64, error), len(tasks))
	for i, task := range tasks {
		thunks[i] = loaders.TaskTotalMs.Load(ctx, task.ID)
	}

	resp := make([]taskResponse, 0, len(tasks))
	for i, task := range tasks {
		total, err := thunks[i]()
		if err != nil {
			return nil, err
		}
		resp = append(resp, toTaskResponse(task, total))
	}
	return resp, nil
}

func toTaskResponse(task *domain.Task, totalMs int64) taskResponse {
	return taskResponse{
		ID:         task.ID.String(),
		Name:       task.Name,
		ProjectID:  task.ProjectID.String(),
		ActivityID: task.ActivityID.String(),
		Done:       task.Done,
		TotalMs:    totalMs,
		CreatedAt:  task.CreatedAt,
	}
}
