package qdrant

import (
	"context"
	"fmt"
	"sort"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/model"
	pkgqdrant "portfolio-chat/pkg/qdrant"
)

const logPrefixRetrieve = "internal.chat.repository.qdrant.Retrieve"

func (r *implRepository) Retrieve(ctx context.Context, query string, k int) ([]model.Passage, error) {
	if k <= 0 {
		return []model.Passage{}, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		r.l.Errorf(ctx, "%s: embed query: %v", logPrefixRetrieve, err)
		return nil, fmt.Errorf("%w: embed query: %v", repository.ErrFailedToRetrieve, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: empty query embedding", repository.ErrFailedToRetrieve)
	}

	points, err := r.searcher.SearchPoints(ctx, r.collection, pkgqdrant.SearchRequest{
		Vector: vectors[0],
		Limit:  k,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: search %s: %v", logPrefixRetrieve, r.collection, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRetrieve, err)
	}

	passages := make([]model.Passage, 0, len(points))
	for _, p := range points {
		passage, ok := toPassage(p)
		if !ok {
			r.l.Warnf(ctx, "%s: point %s has no text payload, skipping", logPrefixRetrieve, p.ID)
			continue
		}
		passages = append(passages, passage)
	}

	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Score > passages[j].Score
	})
	if len(passages) > k {
		passages = passages[:k]
	}

	r.l.Debugf(ctx, "%s: %d passages for k=%d", logPrefixRetrieve, len(passages), k)
	return passages, nil
}

func toPassage(p pkgqdrant.ScoredPoint) (model.Passage, bool) {
	content := payloadString(p.Payload, PayloadContent)
	if content == "" {
		content = payloadString(p.Payload, PayloadPageContent)
	}
	if content == "" {
		return model.Passage{}, false
	}

	source := payloadString(p.Payload, PayloadSource)
	if source == "" {
		if meta, ok := p.Payload[PayloadMetadata].(map[string]any); ok {
			source = payloadString(meta, PayloadSource)
		}
	}

	return model.Passage{
		ID:      p.ID,
		Content: content,
		Source:  source,
		Score:   p.Score,
	}, true
}

func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
