package embedding

import (
	"context"
	"errors"
	"fmt"

	"portfolio-chat/config"
	"portfolio-chat/pkg/ollama"
	"portfolio-chat/pkg/voyage"
)

const (
	ProviderVoyage = "voyage"
	ProviderOllama = "ollama"
)

var ErrUnknownProvider = errors.New("unknown embedding provider")

// Embedder turns texts into vectors, preserving input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Purpose tells hosted providers whether texts are queries or documents.
type Purpose string

const (
	PurposeQuery    Purpose = "query"
	PurposeDocument Purpose = "document"
)

// New builds the embedder selected by cfg.Embedding.Provider.
func New(cfg *config.Config, purpose Purpose) (Embedder, error) {
	switch cfg.Embedding.Provider {
	case ProviderVoyage, "":
		client, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			return nil, err
		}
		inputType := voyage.InputTypeDocument
		if purpose == PurposeQuery {
			inputType = voyage.InputTypeQuery
		}
		return client.WithModel(cfg.Voyage.Model).WithInputType(inputType), nil

	case ProviderOllama:
		client, err := ollama.New(cfg.Ollama.Host, cfg.Ollama.Model)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Embedding.Provider)
	}
}

// EmbedBatched embeds texts in chunks of batchSize.
func EmbedBatched(ctx context.Context, e Embedder, texts []string, batchSize int) ([][]float32, error) {
	if batchSize <= 0 {
		batchSize = len(texts)
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		vectors, err := e.Embed(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		out = append(out, vectors...)
	}
	return out, nil
}
