package service

import (
	"fmt"
	"strings"

	"github.com/edenai/tutorchat/internal/models"
)

// TutorService produces answers for the dev server. There is no language
// model behind it: answers are deterministic text grounded in whatever
// knowledge documents match the question, which is enough to exercise the
// client end to end.
type TutorService struct {
	knowledge *KnowledgeService
}

// NewTutorService builds the service.
func NewTutorService(knowledge *KnowledgeService) *TutorService {
	return &TutorService{knowledge: knowledge}
}

// Answer composes a reply to the question. history is the full prior
// conversation; only its length is used here, but accepting it keeps the
// dev server faithful to the stateless contract.
func (s *TutorService) Answer(question, subject string, history []models.ChatMessage) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return "Ask me something about " + subject + "."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Regarding %q: ", subject, question)

	if docs := s.knowledge.Search(question); len(docs) > 0 {
		names := make([]string, 0, len(docs))
		for _, d := range docs {
			names = append(names, d.OriginalName)
		}
		fmt.Fprintf(&b, "the knowledge base covers this in %s. ", strings.Join(names, ", "))
		snippet := docs[0].Content
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		fmt.Fprintf(&b, "Excerpt: %s", snippet)
	} else {
		b.WriteString("I have no knowledge documents on this yet, so here is a general pointer: break the problem into smaller steps and try each one.")
	}

	if len(history) > 0 {
		fmt.Fprintf(&b, " (conversation so far: %d messages)", len(history))
	}
	return b.String()
}
