package summarizer

import (
	"context"
	"errors"

	"career-backend/internal/recommend"
)

// Generator abstracts the text-generation backend.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service implements recommend.Summarizer over a Generator.
type Service struct {
	Gen Generator
}

// NewService constructs a Service.
func NewService(gen Generator) *Service {
	return &Service{Gen: gen}
}

// Summarize builds the guidance prompt from the payload and sends it to the
// generation backend.
func (s *Service) Summarize(ctx context.Context, payload recommend.Payload) (string, error) {
	if s == nil || s.Gen == nil {
		return "", errors.New("summarizer not configured")
	}
	return s.Gen.GenerateContent(ctx, BuildPrompt(payload))
}
