package api

import (
	"context"
	"fmt"
	"io"

	"github.com/edenai/tutorchat/internal/models"
)

// UploadResult is the backend's acknowledgement of a document upload.
type UploadResult struct {
	OK           bool   `json:"ok"`
	ID           int64  `json:"id"`
	OriginalName string `json:"original_name"`
}

// ListKnowledgeDocs fetches the active knowledge documents.
func (c *Client) ListKnowledgeDocs(ctx context.Context) ([]models.KnowledgeDoc, error) {
	var out []models.KnowledgeDoc
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/admin/knowledge")
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return out, nil
}

// UploadKnowledgeDoc sends one document as multipart form data under the
// "file" field.
func (c *Client) UploadKnowledgeDoc(ctx context.Context, filename string, content io.Reader) (*UploadResult, error) {
	var out UploadResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, content).
		SetResult(&out).
		Post("/admin/knowledge/upload")
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return &out, nil
}

// DeleteKnowledgeDoc removes a document by id.
func (c *Client) DeleteKnowledgeDoc(ctx context.Context, docID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/admin/knowledge/%d", docID))
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return dataErr(resp)
	}
	return nil
}

// ReloadKnowledge asks the backend to rebuild its knowledge index. Callers
// treat this as best effort: on failure the previous document listing is
// kept as is.
func (c *Client) ReloadKnowledge(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/admin/knowledge/reload")
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return dataErr(resp)
	}
	return nil
}
