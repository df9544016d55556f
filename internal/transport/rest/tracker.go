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
	"github.com/heartmarshall/timetrack-backend/internal/service/tracker"
)

// trackerService defines the minimal interface needed by TrackerHandler.
type trackerService interface {
	Start(ctx context.Context, input tracker.StartInput) (*domain.Record, error)
	Stop(ctx context.Context, input tracker.StopInput) (*domain.Record, error)
	ActiveTask(ctx context.Context) (*tracker.ActiveTracking, error)
	CreateManual(ctx context.Context, input tracker.CreateManualInput) (*domain.Record, error)
	Records(ctx context.Context, input tracker.RecordsInput) (*tracker.RecordPage, error)
	DeleteRecord(ctx context.Context, input tracker.DeleteRecordInput) error
}

// TrackerHandler serves start/stop tracking and record history endpoints.
type TrackerHandler struct {
	svc trackerService
	log *slog.Logger
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(svc trackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{svc: svc, log: logger.With("handler", "tracker")}
}

type trackRequest struct {
	TaskID string `json:"taskId"`
}

type manualRecordRequest struct {
	TaskID    string `json:"taskId"`
	StartedMs *int64 `json:"startedMs"`
	EndedMs   *int64 `json:"endedMs"`
}

type recordResponse struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"taskId"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

type activeResponse struct {
	Task   *taskResponse   `json:"task"`
	Record *recordResponse `json:"record,omitempty"`
}

type recordPageResponse struct {
	Records []recordResponse `json:"records"`
	Total   int              `json:"total"`
}

// Start handles POST /tracker/start.
func (h *TrackerHandler) Start(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.decodeTrackRequest(w, r)
	if !ok {
		return
	}

	record, err := h.svc.Start(r.Context(), tracker.StartInput{TaskID: taskID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(record))
}

// Stop handles POST /tracker/stop. Stopping a task that is not running
// returns 200 with a null record.
func (h *TrackerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.decodeTrackRequest(w, r)
	if !ok {
		return
	}

	record, err := h.svc.Stop(r.Context(), tracker.StopInput{TaskID: taskID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if record == nil {
		writeJSON(w, http.StatusOK, map[string]any{"record": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": toRecordResponse(record)})
}

// Active handles GET /tracker/active. Returns the currently tracked task
// or a null task when nothing is running.
func (h *TrackerHandler) Active(w http.ResponseWriter, r *http.Request) {
	active, err := h.svc.ActiveTask(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if active == nil {
		writeJSON(w, http.StatusOK, activeResponse{})
		return
	}

	task := taskWithTotal(r.Context(), active.Task)
	record := toRecordResponse(active.Record)
	writeJSON(w, http.StatusOK, activeResponse{Task: &task, Record: &record})
}

// CreateRecord handles POST /records (manual entry).
func (h *TrackerHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req manualRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var taskID uuid.UUID
	if req.TaskID != "" {
		id, err := uuid.Parse(req.TaskID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid taskId")
			return
		}
		taskID = id
	}

	record, err := h.svc.CreateManual(r.Context(), tracker.CreateManualInput{
		TaskID:    taskID,
		StartedMs: req.StartedMs,
		EndedMs:   req.EndedMs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(record))
}

// ListRecords handles GET /records with optional task_id, limit and
// offset query parameters.
func (h *TrackerHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	input, ok := parseRecordsInput(w, r)
	if !ok {
		return
	}

	page, err := h.svc.Records(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	records := make([]recordResponse, 0, len(page.Records))
	for _, rec := range page.Records {
		records = append(records, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, recordPageResponse{Records: records, Total: page.Total})
}

// DeleteRecord handles DELETE /records/{id}.
func (h *TrackerHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), tracker.DeleteRecordInput{RecordID: id}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackerHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func (h *TrackerHandler) decodeTrackRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return uuid.Nil, false
	}
	if req.TaskID == "" {
		writeError(w, http.StatusBadRequest, "taskId is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.TaskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid taskId")
		return uuid.Nil, false
	}
	return id, true
}

func parseRecordsInput(w http.ResponseWriter, r *http.Request) (tracker.RecordsInput, bool) {
	var input tracker.RecordsInput
	q := r.URL.Query()

	if v := q.Get("task_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task_id")
			return input, false
		}
		input.TaskID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return input, false
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return input, false
		}
		input.Offset = n
	}
	return input, true
}

func toRecordResponse(rec *domain.Record) recordResponse {
	return recordResponse{
		ID:        rec.ID.String(),
		TaskID:    rec.TaskID.String(),
		StartedAt: rec.StartedAt,
		EndedAt:   rec.EndedAt,
	}
}
