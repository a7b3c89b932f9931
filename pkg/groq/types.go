package groq

import (
	"encoding/json"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrAPIKeyRequired = errors.New("groq: APIKey is required")
	ErrRateLimited    = errors.New("groq: rate limited")
	ErrEmptyChoices   = errors.New("groq: response has no choices")
)

// Config holds client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type groqImpl struct {
	client *openai.Client
	model  string
}

// Request is a chat completion request.
type Request struct {
	Messages []Message
	// Temperature is always sent; 0 selects greedy decoding.
	Temperature float64
	MaxTokens   int
	// JSONSchema asks the model for a JSON object matching the schema.
	JSONSchema *JSONSchema
}

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// JSONSchema describes a structured output contract.
type JSONSchema struct {
	Name   string
	Schema json.Marshaler
	Strict bool
}

// Response is the first choice of a chat completion.
type Response struct {
	Content      string
	FinishReason string
	Model        string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
