package qdrant

import (
	"context"
	"errors"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/pkg/log"
	pkgqdrant "portfolio-chat/pkg/qdrant"
)

// Payload keys written at ingest time. page_content is the key used by
// collections built with LangChain.
const (
	PayloadContent     = "content"
	PayloadPageContent = "page_content"
	PayloadSource      = "source"
	PayloadMetadata    = "metadata"
)

// Embedder turns query text into vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Searcher runs a vector search against one collection. *pkgqdrant.Client satisfies it.
type Searcher interface {
	SearchPoints(ctx context.Context, collection string, req pkgqdrant.SearchRequest) ([]pkgqdrant.ScoredPoint, error)
}

type implRepository struct {
	embedder   Embedder
	searcher   Searcher
	collection string
	l          log.Logger
}

var _ repository.PassageRepository = (*implRepository)(nil)

// New creates a Qdrant-backed passage retriever.
func New(embedder Embedder, searcher Searcher, collection string, l log.Logger) (repository.PassageRepository, error) {
	if embedder == nil {
		return nil, errors.New("qdrant repository: embedder is required")
	}
	if searcher == nil {
		return nil, errors.New("qdrant repository: searcher is required")
	}
	if collection == "" {
		return nil, errors.New("qdrant repository: collection is required")
	}
	return &implRepository{
		embedder:   embedder,
		searcher:   searcher,
		collection: collection,
		l:          l,
	}, nil
}
