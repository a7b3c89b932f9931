package qdrant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/pkg/log"
	pkgqdrant "portfolio-chat/pkg/qdrant"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	inputs [][]string
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.inputs = append(f.inputs, texts)
	if f.err != nil {
		return nil, f.err
	}
	return [][]float32{f.vector}, nil
}

type fakeSearcher struct {
	points     []pkgqdrant.ScoredPoint
	err        error
	collection string
	req        pkgqdrant.SearchRequest
}

func (f *fakeSearcher) SearchPoints(ctx context.Context, collection string, req pkgqdrant.SearchRequest) ([]pkgqdrant.ScoredPoint, error) {
	f.collection = collection
	f.req = req
	return f.points, f.err
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("maps payload and sorts by score", func(t *testing.T) {
		emb := &fakeEmbedder{vector: []float32{0.1, 0.2}}
		search := &fakeSearcher{points: []pkgqdrant.ScoredPoint{
			{ID: "a", Score: 0.5, Payload: map[string]any{"content": "Go developer", "source": "about.md"}},
			{ID: "b", Score: 0.9, Payload: map[string]any{"page_content": "Built a RAG bot", "metadata": map[string]any{"source": "projects.md"}}},
			{ID: "c", Score: 0.7, Payload: map[string]any{"content": "Kubernetes"}},
		}}
		repo, err := New(emb, search, "chatbot_portfolio", log.NewNop())
		require.NoError(t, err)

		passages, err := repo.Retrieve(ctx, "What skills do you have?", 3)
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"What skills do you have?"}}, emb.inputs)
		assert.Equal(t, "chatbot_portfolio", search.collection)
		assert.Equal(t, 3, search.req.Limit)
		assert.Equal(t, []float32{0.1, 0.2}, search.req.Vector)

		require.Len(t, passages, 3)
		assert.Equal(t, "b", passages[0].ID)
		assert.Equal(t, "Built a RAG bot", passages[0].Content)
		assert.Equal(t, "projects.md", passages[0].Source)
		assert.Equal(t, "c", passages[1].ID)
		assert.Equal(t, "a", passages[2].ID)
		assert.Equal(t, "about.md", passages[2].Source)
	})

	t.Run("skips points without text", func(t *testing.T) {
		search := &fakeSearcher{points: []pkgqdrant.ScoredPoint{
			{ID: "a", Score: 0.5, Payload: map[string]any{"source": "x"}},
			{ID: "b", Score: 0.4, Payload: map[string]any{"content": "kept"}},
		}}
		repo, err := New(&fakeEmbedder{vector: []float32{1}}, search, "c", log.NewNop())
		require.NoError(t, err)

		passages, err := repo.Retrieve(ctx, "q", 3)
		require.NoError(t, err)
		require.Len(t, passages, 1)
		assert.Equal(t, "kept", passages[0].Content)
	})

	t.Run("embed failure", func(t *testing.T) {
		repo, err := New(&fakeEmbedder{err: errors.New("quota")}, &fakeSearcher{}, "c", log.NewNop())
		require.NoError(t, err)

		_, err = repo.Retrieve(ctx, "q", 3)
		assert.ErrorIs(t, err, repository.ErrFailedToRetrieve)
	})

	t.Run("search failure", func(t *testing.T) {
		repo, err := New(&fakeEmbedder{vector: []float32{1}}, &fakeSearcher{err: errors.New("unavailable")}, "c", log.NewNop())
		require.NoError(t, err)

		_, err = repo.Retrieve(ctx, "q", 3)
		assert.ErrorIs(t, err, repository.ErrFailedToRetrieve)
	})

	t.Run("non-positive k", func(t *testing.T) {
		emb := &fakeEmbedder{vector: []float32{1}}
		repo, err := New(emb, &fakeSearcher{}, "c", log.NewNop())
		require.NoError(t, err)

		passages, err := repo.Retrieve(ctx, "q", 0)
		require.NoError(t, err)
		assert.Empty(t, passages)
		assert.Empty(t, emb.inputs)
	})
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, &fakeSearcher{}, "c", log.NewNop())
	assert.Error(t, err)
	_, err = New(&fakeEmbedder{}, nil, "c", log.NewNop())
	assert.Error(t, err)
	_, err = New(&fakeEmbedder{}, &fakeSearcher{}, "", log.NewNop())
	assert.Error(t, err)
}
