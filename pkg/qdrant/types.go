package qdrant

// Config holds Qdrant gRPC connection settings.
type Config struct {
	Host   string
	Port   int
	APIKey string
	UseTLS bool
}

// SearchRequest is a nearest-neighbour query.
type SearchRequest struct {
	Vector         []float32
	Limit          int
	ScoreThreshold float32 // 0 disables the threshold
}

// ScoredPoint is a search hit with its decoded payload.
type ScoredPoint struct {
	ID      string
	Score   float64
	Payload map[string]any
}

// Point is a vector to upsert.
type Point struct {
	ID      string // UUID
	Vector  []float32
	Payload map[string]any
}
