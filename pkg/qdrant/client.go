package qdrant

import (
	"context"
	"fmt"
	"strconv"

	qc "github.com/qdrant/go-client/qdrant"
)

const DefaultPort = 6334

// Client wraps the Qdrant gRPC client with the calls this service needs.
type Client struct {
	client *qc.Client
}

// New creates a new Qdrant client.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("qdrant: host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	client, err := qc.NewClient(&qc.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to create client: %w", err)
	}

	return &Client{client: client}, nil
}

// SearchPoints returns the closest points to req.Vector, best first.
func (c *Client) SearchPoints(ctx context.Context, collection string, req SearchRequest) ([]ScoredPoint, error) {
	limit := uint64(req.Limit)
	query := &qc.QueryPoints{
		CollectionName: collection,
		Query:          qc.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qc.NewWithPayload(true),
	}
	if req.ScoreThreshold > 0 {
		threshold := req.ScoreThreshold
		query.ScoreThreshold = &threshold
	}

	points, err := c.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results := make([]ScoredPoint, 0, len(points))
	for _, p := range points {
		results = append(results, convertScoredPoint(p))
	}
	return results, nil
}

// EnsureCollection creates the collection when missing. With recreate set an
// existing collection is dropped first.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize int, recreate bool) error {
	exists, err := c.client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("qdrant: collection lookup failed: %w", err)
	}

	if exists && recreate {
		if err := c.client.DeleteCollection(ctx, name); err != nil {
			return fmt.Errorf("qdrant: delete collection failed: %w", err)
		}
		exists = false
	}
	if exists {
		return nil
	}

	err = c.client.CreateCollection(ctx, &qc.CreateCollection{
		CollectionName: name,
		VectorsConfig: qc.NewVectorsConfig(&qc.VectorParams{
			Size:     uint64(vectorSize),
			Distance: qc.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("qdrant: create collection failed: %w", err)
	}
	return nil
}

// UpsertPoints writes points and waits for the operation to be applied.
func (c *Client) UpsertPoints(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	structs := make([]*qc.PointStruct, 0, len(points))
	for _, p := range points {
		payload, err := qc.TryValueMap(p.Payload)
		if err != nil {
			return fmt.Errorf("qdrant: invalid payload for point %s: %w", p.ID, err)
		}
		structs = append(structs, &qc.PointStruct{
			Id:      qc.NewID(p.ID),
			Vectors: qc.NewVectors(p.Vector...),
			Payload: payload,
		})
	}

	wait := true
	if _, err := c.client.Upsert(ctx, &qc.UpsertPoints{
		CollectionName: collection,
		Wait:           &wait,
		Points:         structs,
	}); err != nil {
		return fmt.Errorf("qdrant: upsert failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func convertScoredPoint(p *qc.ScoredPoint) ScoredPoint {
	out := ScoredPoint{
		Score:   float64(p.GetScore()),
		Payload: make(map[string]any, len(p.GetPayload())),
	}

	if id := p.GetId(); id != nil {
		if u := id.GetUuid(); u != "" {
			out.ID = u
		} else {
			out.ID = strconv.FormatUint(id.GetNum(), 10)
		}
	}

	for k, v := range p.GetPayload() {
		out.Payload[k] = extractValue(v)
	}
	return out
}

// extractValue converts a Qdrant Value into plain Go values.
func extractValue(v *qc.Value) any {
	if v == nil {
		return nil
	}

	switch val := v.Kind.(type) {
	case *qc.Value_StringValue:
		return val.StringValue
	case *qc.Value_IntegerValue:
		return val.IntegerValue
	case *qc.Value_DoubleValue:
		return val.DoubleValue
	case *qc.Value_BoolValue:
		return val.BoolValue
	case *qc.Value_ListValue:
		items := make([]any, 0, len(val.ListValue.GetValues()))
		for _, it := range val.ListValue.GetValues() {
			items = append(items, extractValue(it))
		}
		return items
	case *qc.Value_StructValue:
		fields := make(map[string]any, len(val.StructValue.GetFields()))
		for k, it := range val.StructValue.GetFields() {
			fields[k] = extractValue(it)
		}
		return fields
	default:
		return nil
	}
}
