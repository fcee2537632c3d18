package api

import (
	"context"

	"github.com/edenai/tutorchat/internal/models"
)

type askRequest struct {
	Question string               `json:"question"`
	Subject  string               `json:"subject"`
	History  []models.ChatMessage `json:"history"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask submits a question to the tutor. history carries the full prior
// conversation so a stateless backend can reconstruct context; the client
// assumes no server-side session state.
func (c *Client) Ask(ctx context.Context, question, subject string, history []models.ChatMessage) (string, error) {
	if history == nil {
		history = []models.ChatMessage{}
	}
	var out askResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(askRequest{Question: question, Subject: subject, History: history}).
		SetResult(&out).
		Post("/api/ask")
	if err != nil {
		return "", &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return "", dataErr(resp)
	}
	return out.Answer, nil
}
