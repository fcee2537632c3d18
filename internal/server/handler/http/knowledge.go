package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/service"
)

// KnowledgeHandler serves the admin knowledge-document routes.
type KnowledgeHandler struct {
	Knowledge *service.KnowledgeService
}

// List handles GET /admin/knowledge.
func (h *KnowledgeHandler) List(w http.ResponseWriter, _ *http.Request) {
	records := h.Knowledge.List()
	out := make([]models.KnowledgeDoc, len(records))
	for i := range records {
		out[i] = records[i].WireView()
	}
	writeJSON(w, http.StatusOK, out)
}

// Upload handles POST /admin/knowledge/upload with a multipart "file"
// field.
func (h *KnowledgeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	doc, err := h.Knowledge.Upload(hdr.Filename, hdr.Header.Get("Content-Type"), data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"id":            doc.ID,
		"original_name": doc.OriginalName,
	})
}

// Delete handles DELETE /admin/knowledge/{id}.
func (h *KnowledgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	if err := h.Knowledge.Delete(id); err != nil {
		if errors.Is(err, repository.ErrDocNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Reload handles POST /admin/knowledge/reload.
func (h *KnowledgeHandler) Reload(w http.ResponseWriter, _ *http.Request) {
	h.Knowledge.Reload()
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
