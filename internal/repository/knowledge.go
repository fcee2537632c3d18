package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/edenai/tutorchat/internal/models"
)

// ErrDocNotFound is returned for lookups of unknown documents.
var ErrDocNotFound = errors.New("knowledge document not found")

// KnowledgeRecord is a stored knowledge document, content included.
type KnowledgeRecord struct {
	ID           int64
	OriginalName string
	StoredName   string
	Size         int64
	ContentType  string
	Content      string
	CreatedAt    time.Time
}

// WireView converts the record to its listing representation. Content is
// never sent over the wire.
func (d *KnowledgeRecord) WireView() models.KnowledgeDoc {
	return models.KnowledgeDoc{
		ID:           d.ID,
		OriginalName: d.OriginalName,
		StoredName:   d.StoredName,
		Size:         d.Size,
		ContentType:  d.ContentType,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// KnowledgeRepository keeps knowledge documents in memory.
type KnowledgeRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*KnowledgeRecord
}

// NewKnowledgeRepository returns an empty repository.
func NewKnowledgeRepository() *KnowledgeRepository {
	return &KnowledgeRepository{byID: make(map[int64]*KnowledgeRecord)}
}

// Add stores a document and assigns its id.
func (r *KnowledgeRepository) Add(doc KnowledgeRecord) *KnowledgeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	doc.ID = r.nextID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	r.byID[doc.ID] = &doc
	stored := doc
	return &stored
}

// List returns all documents, newest first.
func (r *KnowledgeRepository) List() []KnowledgeRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]KnowledgeRecord, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes a document by id.
func (r *KnowledgeRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrDocNotFound
	}
	delete(r.byID, id)
	return nil
}

// Count returns the number of stored documents.
func (r *KnowledgeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
