package answer

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/storycave669-rgb/Project-DEVI/internal/feedback"
	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// minQuestionLen is the minimum trimmed question length accepted.
const minQuestionLen = 3

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Handler holds the question-answer HTTP handlers.
type Handler struct {
	service  *Service
	feedback *feedback.Dispatcher
}

func NewHandler(service *Service, dispatcher *feedback.Dispatcher) *Handler {
	return &Handler{service: service, feedback: dispatcher}
}

// Ask handles POST /api/ask: validates the question, runs the pipeline, and
// returns the assembled answer. Provider failures never surface here; the
// only client error is an invalid question.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.WithField("panic", rec).Error("ask: unexpected failure")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
	}()

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if len(question) < minQuestionLen {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question must be at least 3 characters"})
		return
	}

	mode := ParseMode(req.Mode, question)
	resp := h.service.Answer(r.Context(), question, mode)

	logger.Log.WithFields(logrus.Fields{
		"mode":    resp.Mode,
		"sources": len(resp.Sources),
	}).Info("answered question")

	h.feedback.Dispatch(feedback.Event{
		Mode:     resp.Mode,
		Question: question,
		Answer:   resp.Answer,
		Sources:  resp.Sources,
	})

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /api/feedback: forwards a user rating to the
// webhook in the background and always acknowledges immediately.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.feedback.Dispatch(feedback.Event{
		Mode:     req.Mode,
		Question: req.Question,
		Answer:   req.Answer,
		Sources:  req.Sources,
		Rating:   req.Rating,
	})

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
