package groq

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

func newGroqImpl(cfg Config) *groqImpl {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = cfg.HTTPClient

	return &groqImpl{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// GenerateContent sends a chat completion request and returns the first choice.
func (g *groqImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := g.client.CreateChatCompletion(ctx, g.transformRequest(req))
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("groq: chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyChoices
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Model:        resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}

func (g *groqImpl) transformRequest(req *Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	out := openai.ChatCompletionRequest{
		Model:               g.model,
		Messages:            messages,
		Temperature:         wireTemperature(req.Temperature),
		MaxCompletionTokens: req.MaxTokens,
	}

	if req.JSONSchema != nil {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.JSONSchema.Name,
				Schema: req.JSONSchema.Schema,
				Strict: req.JSONSchema.Strict,
			},
		}
	}

	return out
}

// wireTemperature keeps an explicit 0 on the wire. go-openai drops a zero
// temperature (omitempty) and the API then samples at its default of 1.
func wireTemperature(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
