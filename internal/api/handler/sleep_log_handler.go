package handler

import (
	"io"
	"net/http"

	"github.com/dreamwell/sleep-coach/internal/api/validation"
	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/dreamwell/sleep-coach/internal/service"
	"github.com/dreamwell/sleep-coach/pkg/respond"
	"github.com/go-chi/chi/v5"
)

type SleepLogHandler struct {
	service service.SleepLogService
}

func NewSleepLogHandler(service service.SleepLogService) *SleepLogHandler {
	return &SleepLogHandler{service: service}
}

// Submit handles POST /log/{userId}
// @Summary Submit a sleep log
// @Description Validate and append one daily sleep log to the user's history. The entry date is assigned server-side (current UTC day).
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param userId path string true "User identifier" example(u1)
// @Param request body domain.SleepLogEntry true "Sleep log submission"
// @Success 201 {object} domain.SubmitSleepLogResponse "Entry appended"
// @Failure 400 {object} respond.ErrorBody "Malformed body or validation failure"
// @Failure 500 {object} respond.ErrorBody "Server error"
// @Router /log/{userId} [post]
func (h *SleepLogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}

	entry, err := validation.BuildSleepLog(body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Append(r.Context(), userID, *entry); err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to store log entry.")
		return
	}

	respond.JSON(w, http.StatusCreated, domain.SubmitSleepLogResponse{
		Message:  "Log entry added.",
		LogEntry: *entry,
	})
}

// List handles GET /sleep-logs/{userId}
// @Summary List sleep logs
// @Description Return the user's full log history in submission order.
// @Tags sleep-logs
// @Produce json
// @Param userId path string true "User identifier" example(u1)
// @Success 200 {object} domain.SleepLogListResponse "Log history"
// @Failure 404 {object} respond.MessageBody "No logs for this user"
// @Router /sleep-logs/{userId} [get]
func (h *SleepLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	logs, err := h.service.List(r.Context(), userID)
	if err != nil {
		respond.Message(w, http.StatusNotFound, "No logs found")
		return
	}

	respond.JSON(w, http.StatusOK, domain.SleepLogListResponse{Logs: logs})
}
