package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-chat/pkg/log"
	"portfolio-chat/pkg/qdrant"
)

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i])), 1, 0}
	}
	return out, nil
}

type fakeStore struct {
	ensured    bool
	vectorSize int
	recreate   bool
	batches    [][]qdrant.Point
	upsertErr  error
}

func (f *fakeStore) EnsureCollection(ctx context.Context, name string, vectorSize int, recreate bool) error {
	f.ensured = true
	f.vectorSize = vectorSize
	f.recreate = recreate
	return nil
}

func (f *fakeStore) UpsertPoints(ctx context.Context, collection string, points []qdrant.Point) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.batches = append(f.batches, points)
	return nil
}

func writeDocs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte("# About\n\nI build Go services."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.md"), []byte(strings.Repeat("Project notes. ", 200)), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0o700))
	return dir
}

func TestLoadMarkdown(t *testing.T) {
	docs, err := loadMarkdown(context.Background(), writeDocs(t), log.NewNop())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "about.md", docs[0].name)
	assert.Equal(t, "projects.md", docs[1].name)

	_, err = loadMarkdown(context.Background(), filepath.Join(t.TempDir(), "missing"), log.NewNop())
	assert.Error(t, err)
}

func TestSplitDocuments(t *testing.T) {
	chunks, err := splitDocuments([]document{
		{name: "short.md", content: "hello world"},
		{name: "long.md", content: strings.Repeat("word ", 600)},
	})
	require.NoError(t, err)

	require.Greater(t, len(chunks), 2)
	assert.Equal(t, "short.md", chunks[0].source)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.text), chunkSize)
	}
}

func TestPipelineRun(t *testing.T) {
	emb := &fakeEmbedder{}
	store := &fakeStore{}
	p := &pipeline{embedder: emb, store: store, collection: "chatbot_portfolio", batchSize: 2, l: log.NewNop()}

	stats, err := p.run(context.Background(), writeDocs(t), true)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.files)
	assert.True(t, store.ensured)
	assert.True(t, store.recreate)
	assert.Equal(t, 3, store.vectorSize)

	total := 0
	for _, b := range store.batches {
		assert.LessOrEqual(t, len(b), 2)
		for _, pt := range b {
			assert.NotEmpty(t, pt.ID)
			assert.NotEmpty(t, pt.Payload[payloadContent])
			assert.Contains(t, []any{"about.md", "projects.md"}, pt.Payload[payloadSource])
		}
		total += len(b)
	}
	assert.Equal(t, stats.chunks, total)
}

func TestPipelineErrors(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		p := &pipeline{embedder: &fakeEmbedder{}, store: &fakeStore{}, collection: "c", l: log.NewNop()}
		_, err := p.run(context.Background(), t.TempDir(), false)
		assert.Error(t, err)
	})

	t.Run("vector size mismatch", func(t *testing.T) {
		store := &fakeStore{}
		p := &pipeline{embedder: &fakeEmbedder{}, store: store, collection: "c", vectorSize: 1024, l: log.NewNop()}
		_, err := p.run(context.Background(), writeDocs(t), false)
		assert.Error(t, err)
		assert.False(t, store.ensured)
	})

	t.Run("upsert fails", func(t *testing.T) {
		store := &fakeStore{upsertErr: errors.New("unavailable")}
		p := &pipeline{embedder: &fakeEmbedder{}, store: store, collection: "c", l: log.NewNop()}
		_, err := p.run(context.Background(), writeDocs(t), false)
		assert.Error(t, err)
	})
}
