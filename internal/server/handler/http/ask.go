package http

import (
	"encoding/json"
	"net/http"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/service"
)

// AskHandler serves the tutoring endpoint.
type AskHandler struct {
	Tutor *service.TutorService
}

type askRequest struct {
	Question string               `json:"question"`
	Subject  string               `json:"subject"`
	History  []models.ChatMessage `json:"history"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /api/ask. The request carries the full conversation
// history; nothing is kept between requests.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Subject == "" {
		req.Subject = "general"
	}
	writeJSON(w, http.StatusOK, askResponse{Answer: h.Tutor.Answer(req.Question, req.Subject, req.History)})
}
