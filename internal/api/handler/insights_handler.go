package handler

import (
	"errors"
	"net/http"

	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/dreamwell/sleep-coach/internal/service"
	"github.com/dreamwell/sleep-coach/pkg/respond"
	"github.com/go-chi/chi/v5"
)

// InsightsHandler handles AI insight endpoints.
type InsightsHandler struct {
	service service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Analyze handles POST /analyze/{userId}
// @Summary Generate an AI insight
// @Description Run the two-stage analysis pipeline over the user's log history and store the resulting insight, replacing any previous one.
// @Tags insights
// @Produce json
// @Param userId path string true "User identifier" example(u1)
// @Success 200 {object} domain.Insight "Generated insight"
// @Failure 400 {object} respond.ErrorBody "Fewer than 3 logs"
// @Failure 502 {object} respond.ErrorBody "Chat model unavailable or failed"
// @Failure 500 {object} respond.ErrorBody "Server error"
// @Router /analyze/{userId} [post]
func (h *InsightsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	insight, err := h.service.Analyze(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			respond.Error(w, http.StatusBadRequest, "Insufficient data for analysis. Please log at least 3 days of sleep.")
			return
		}
		if errors.Is(err, domain.ErrAIProvider) {
			respond.ErrorCode(w, http.StatusBadGateway, "Failed to generate AI insight.", "ai_provider_error")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to analyze sleep patterns.")
		return
	}

	respond.JSON(w, http.StatusOK, insight)
}

// Latest handles GET /latest-insight/{userId}
// @Summary Get the latest insight
// @Description Return the most recently generated insight for the user.
// @Tags insights
// @Produce json
// @Param userId path string true "User identifier" example(u1)
// @Success 200 {object} domain.Insight "Stored insight"
// @Failure 404 {object} respond.MessageBody "No insight generated yet"
// @Router /latest-insight/{userId} [get]
func (h *InsightsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	insight, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		respond.Message(w, http.StatusNotFound, "No AI insight found for this user. Please generate one first.")
		return
	}

	respond.JSON(w, http.StatusOK, insight)
}
