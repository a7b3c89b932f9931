package intent

import (
	"context"

	"portfolio-chat/pkg/llmprovider"
	"portfolio-chat/pkg/log"
)

// Classifier assigns a Category to a user message.
type Classifier interface {
	Classify(ctx context.Context, message string) (Category, error)
}

// LLMClassifier classifies messages with one structured LLM call.
type LLMClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates an LLMClassifier.
func New(llm llmprovider.Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm: llm,
		l:   l,
	}
}
