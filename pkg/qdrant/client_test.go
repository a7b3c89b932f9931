package qdrant

import (
	"testing"

	qc "github.com/qdrant/go-client/qdrant"
)

func TestConvertScoredPoint(t *testing.T) {
	t.Run("uuid id and payload", func(t *testing.T) {
		p := &qc.ScoredPoint{
			Id:    qc.NewID("6f1c2b9e-0000-4000-8000-000000000001"),
			Score: 0.75,
			Payload: qc.NewValueMap(map[string]any{
				"content": "Built a Go RAG service",
				"source":  "projects.md",
				"chunk":   3,
				"tags":    []any{"go", "rag"},
			}),
		}

		got := convertScoredPoint(p)
		if got.ID != "6f1c2b9e-0000-4000-8000-000000000001" {
			t.Errorf("unexpected id %q", got.ID)
		}
		if got.Score != 0.75 {
			t.Errorf("unexpected score %v", got.Score)
		}
		if got.Payload["content"] != "Built a Go RAG service" {
			t.Errorf("unexpected content %v", got.Payload["content"])
		}
		if got.Payload["chunk"] != int64(3) {
			t.Errorf("expected int64 chunk, got %#v", got.Payload["chunk"])
		}
		tags, ok := got.Payload["tags"].([]any)
		if !ok || len(tags) != 2 || tags[0] != "go" {
			t.Errorf("unexpected tags %#v", got.Payload["tags"])
		}
	})

	t.Run("numeric id", func(t *testing.T) {
		got := convertScoredPoint(&qc.ScoredPoint{Id: qc.NewIDNum(42)})
		if got.ID != "42" {
			t.Errorf("expected id 42, got %q", got.ID)
		}
		if got.Payload == nil {
			t.Errorf("payload map should be non-nil")
		}
	})
}

func TestExtractValueNested(t *testing.T) {
	v := qc.NewValueMap(map[string]any{
		"meta": map[string]any{"lang": "en", "draft": false},
	})["meta"]

	got, ok := extractValue(v).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %#v", extractValue(v))
	}
	if got["lang"] != "en" || got["draft"] != false {
		t.Errorf("unexpected nested value %#v", got)
	}
	if extractValue(nil) != nil {
		t.Errorf("nil value should extract to nil")
	}
}

func TestNewRequiresHost(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for empty host")
	}
}
