package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/textsplitter"

	"portfolio-chat/internal/embedding"
	"portfolio-chat/pkg/log"
	"portfolio-chat/pkg/qdrant"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200

	payloadContent = "content"
	payloadSource  = "source"
)

var markdownSeparators = []string{"\n## ", "\n### ", "\n\n", "\n", " ", ""}

// vectorStore is the part of the Qdrant client the pipeline writes through.
type vectorStore interface {
	EnsureCollection(ctx context.Context, name string, vectorSize int, recreate bool) error
	UpsertPoints(ctx context.Context, collection string, points []qdrant.Point) error
}

type chunk struct {
	source string
	text   string
}

type ingestStats struct {
	files  int
	chunks int
}

type pipeline struct {
	embedder   embedding.Embedder
	store      vectorStore
	collection string
	vectorSize int // 0 takes the size of the first embedding
	batchSize  int
	l          log.Logger
}

func (p *pipeline) run(ctx context.Context, dir string, recreate bool) (ingestStats, error) {
	docs, err := loadMarkdown(ctx, dir, p.l)
	if err != nil {
		return ingestStats{}, err
	}
	if len(docs) == 0 {
		return ingestStats{}, fmt.Errorf("no Markdown files found in %s", dir)
	}

	chunks, err := splitDocuments(docs)
	if err != nil {
		return ingestStats{}, err
	}
	if len(chunks) == 0 {
		return ingestStats{}, errors.New("documents produced no chunks")
	}
	p.l.Infof(ctx, "Created %d chunks from %d files", len(chunks), len(docs))

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.text
	}
	vectors, err := embedding.EmbedBatched(ctx, p.embedder, texts, p.batchSize)
	if err != nil {
		return ingestStats{}, err
	}
	if len(vectors) != len(chunks) || len(vectors[0]) == 0 {
		return ingestStats{}, fmt.Errorf("got %d embeddings for %d chunks", len(vectors), len(chunks))
	}

	dim := len(vectors[0])
	if p.vectorSize > 0 && p.vectorSize != dim {
		return ingestStats{}, fmt.Errorf("embedding size %d does not match qdrant.vector_size %d", dim, p.vectorSize)
	}

	if err := p.store.EnsureCollection(ctx, p.collection, dim, recreate); err != nil {
		return ingestStats{}, err
	}

	points := make([]qdrant.Point, len(chunks))
	for i, c := range chunks {
		points[i] = qdrant.Point{
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]any{
				payloadContent: c.text,
				payloadSource:  c.source,
			},
		}
	}

	step := p.batchSize
	if step <= 0 {
		step = len(points)
	}
	for start := 0; start < len(points); start += step {
		end := min(start+step, len(points))
		if err := p.store.UpsertPoints(ctx, p.collection, points[start:end]); err != nil {
			return ingestStats{}, fmt.Errorf("upsert batch %d-%d: %w", start, end, err)
		}
		p.l.Infof(ctx, "Processed batch %d", start/step+1)
	}

	return ingestStats{files: len(docs), chunks: len(chunks)}, nil
}

type document struct {
	name    string
	content string
}

// loadMarkdown reads *.md files at the top level of dir in name order.
// Unreadable files are logged and skipped.
func loadMarkdown(ctx context.Context, dir string, l log.Logger) ([]document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var docs []document
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			l.Errorf(ctx, "Error loading %s: %v", e.Name(), err)
			continue
		}
		docs = append(docs, document{name: e.Name(), content: string(raw)})
		l.Infof(ctx, "Successfully loaded %s", e.Name())
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].name < docs[j].name })
	return docs, nil
}

func splitDocuments(docs []document) ([]chunk, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators(markdownSeparators),
	)

	var chunks []chunk
	for _, d := range docs {
		parts, err := splitter.SplitText(d.content)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", d.name, err)
		}
		for _, part := range parts {
			if strings.TrimSpace(part) == "" {
				continue
			}
			chunks = append(chunks, chunk{source: d.name, text: part})
		}
	}
	return chunks, nil
}
