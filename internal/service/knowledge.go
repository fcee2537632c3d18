package service

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/edenai/tutorchat/internal/repository"
)

var (
	// ErrUnsupportedType is returned for uploads that are not plain text
	// or markdown.
	ErrUnsupportedType = errors.New("unsupported file type (allowed: .txt, .md, .markdown)")
	// ErrEmptyFile rejects empty uploads.
	ErrEmptyFile = errors.New("empty files cannot be uploaded")
	// ErrFileTooLarge rejects uploads over the 2 MB limit.
	ErrFileTooLarge = errors.New("file too large (limit 2 MB)")
)

// maxDocSize is the upload size limit.
const maxDocSize = 2 * 1024 * 1024

var allowedExt = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// KnowledgeService manages knowledge documents and the word index the
// tutor searches. The index is derived state: it is rebuilt after every
// mutation and can be rebuilt on demand through Reload.
type KnowledgeService struct {
	docs *repository.KnowledgeRepository

	mu    sync.RWMutex
	index map[string][]int64
}

// NewKnowledgeService builds the service and its initial index.
func NewKnowledgeService(docs *repository.KnowledgeRepository) *KnowledgeService {
	s := &KnowledgeService{docs: docs}
	s.Reload()
	return s
}

// Upload validates and stores one document, then rebuilds the index.
func (s *KnowledgeService) Upload(filename, contentType string, data []byte) (*repository.KnowledgeRecord, error) {
	name := safeFilename(filename)
	if !allowedExt[strings.ToLower(filepath.Ext(name))] {
		return nil, ErrUnsupportedType
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > maxDocSize {
		return nil, ErrFileTooLarge
	}
	if contentType == "" {
		contentType = "text/plain"
	}

	doc := s.docs.Add(repository.KnowledgeRecord{
		OriginalName: name,
		StoredName:   uuid.NewString(),
		Size:         int64(len(data)),
		ContentType:  contentType,
		Content:      string(data),
	})
	s.Reload()
	return doc, nil
}

// List returns the stored documents, newest first.
func (s *KnowledgeService) List() []repository.KnowledgeRecord {
	return s.docs.List()
}

// Delete removes a document and rebuilds the index.
func (s *KnowledgeService) Delete(id int64) error {
	if err := s.docs.Delete(id); err != nil {
		return err
	}
	s.Reload()
	return nil
}

// Count returns the number of stored documents.
func (s *KnowledgeService) Count() int {
	return s.docs.Count()
}

// Reload rebuilds the word index from the stored documents.
func (s *KnowledgeService) Reload() {
	index := make(map[string][]int64)
	for _, d := range s.docs.List() {
		seen := map[string]bool{}
		for _, w := range tokenize(d.OriginalName + " " + d.Content) {
			if !seen[w] {
				index[w] = append(index[w], d.ID)
				seen[w] = true
			}
		}
	}
	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
}

// Search returns the documents matching any word of the query, in index
// order.
func (s *KnowledgeService) Search(query string) []repository.KnowledgeRecord {
	s.mu.RLock()
	ids := map[int64]bool{}
	for _, w := range tokenize(query) {
		for _, id := range s.index[w] {
			ids[id] = true
		}
	}
	s.mu.RUnlock()

	var out []repository.KnowledgeRecord
	for _, d := range s.docs.List() {
		if ids[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// tokenize lowercases and splits on non-letters/digits, dropping words too
// short to be meaningful.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := words[:0]
	for _, w := range words {
		if len(w) >= 3 {
			out = append(out, w)
		}
	}
	return out
}

// safeFilename strips path separators and traversal sequences.
func safeFilename(name string) string {
	name = strings.NewReplacer("\\", "_", "/", "_", "..", "_").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "upload.txt"
	}
	return name
}
