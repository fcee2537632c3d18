package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/edenai/tutorchat/internal/repository"
)

func newKnowledgeService() *KnowledgeService {
	return NewKnowledgeService(repository.NewKnowledgeRepository())
}

func TestUpload_Validation(t *testing.T) {
	svc := newKnowledgeService()

	tests := []struct {
		name     string
		filename string
		data     string
		wantErr  error
	}{
		{"binary extension", "notes.pdf", "content", ErrUnsupportedType},
		{"empty file", "notes.txt", "", ErrEmptyFile},
		{"too large", "notes.txt", strings.Repeat("x", maxDocSize+1), ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(tt.filename, "text/plain", []byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Upload = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpload_StoresAndIndexes(t *testing.T) {
	svc := newKnowledgeService()

	doc, err := svc.Upload("variables.md", "text/markdown", []byte("A variable is a named storage location."))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if doc.ID == 0 {
		t.Error("document id not assigned")
	}
	if doc.StoredName == "" {
		t.Error("stored name not assigned")
	}

	hits := svc.Search("what is a variable?")
	if len(hits) != 1 || hits[0].ID != doc.ID {
		t.Errorf("Search hits = %+v; want the uploaded doc", hits)
	}
}

func TestUpload_SanitizesFilename(t *testing.T) {
	svc := newKnowledgeService()
	doc, err := svc.Upload("../../etc/passwd.txt", "text/plain", []byte("x"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if strings.Contains(doc.OriginalName, "..") || strings.Contains(doc.OriginalName, "/") {
		t.Errorf("unsafe stored filename %q", doc.OriginalName)
	}
}

func TestDelete_RemovesFromIndex(t *testing.T) {
	svc := newKnowledgeService()
	doc, err := svc.Upload("loops.txt", "text/plain", []byte("for loops repeat statements"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if err := svc.Delete(doc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if hits := svc.Search("loops"); len(hits) != 0 {
		t.Errorf("Search after delete = %+v; want none", hits)
	}
	if err := svc.Delete(doc.ID); !errors.Is(err, repository.ErrDocNotFound) {
		t.Errorf("second Delete = %v; want ErrDocNotFound", err)
	}
}

func TestSearch_ShortWordsIgnored(t *testing.T) {
	svc := newKnowledgeService()
	if _, err := svc.Upload("go.md", "text/markdown", []byte("go is a language")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if hits := svc.Search("go"); len(hits) != 0 {
		t.Errorf("two-letter words should not match, got %d hits", len(hits))
	}
	if hits := svc.Search("language"); len(hits) != 1 {
		t.Errorf("Search(language) = %d hits; want 1", len(hits))
	}
}

func TestTutorAnswer(t *testing.T) {
	knowledge := newKnowledgeService()
	if _, err := knowledge.Upload("variables.md", "text/markdown", []byte("A variable is a named storage location.")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	tutor := NewTutorService(knowledge)

	answer := tutor.Answer("what is a variable?", "programming", nil)
	if !strings.Contains(answer, "variables.md") {
		t.Errorf("answer should cite the matching document, got %q", answer)
	}

	answer = tutor.Answer("unrelated astronomy question", "programming", nil)
	if !strings.Contains(answer, "no knowledge documents") {
		t.Errorf("answer without matches should say so, got %q", answer)
	}
}
