package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"portfolio-chat/pkg/gemini"
	"portfolio-chat/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.ResponseSchema != nil {
		geminiReq.ResponseSchema = convertToGeminiSchema(req.ResponseSchema.Definition)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	if role == RoleAssistant {
		role = gemini.RoleModel
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// convertToGeminiSchema rewrites a JSON schema into Gemini's OpenAPI subset
// (upper-case type names, no additionalProperties).
func convertToGeminiSchema(def jsonschema.Definition) map[string]any {
	out := map[string]any{"type": strings.ToUpper(string(def.Type))}
	if def.Description != "" {
		out["description"] = def.Description
	}
	if len(def.Enum) > 0 {
		out["enum"] = def.Enum
	}
	if len(def.Properties) > 0 {
		props := make(map[string]any, len(def.Properties))
		for name, p := range def.Properties {
			props[name] = convertToGeminiSchema(p)
		}
		out["properties"] = props
	}
	if len(def.Required) > 0 {
		out["required"] = def.Required
	}
	if def.Items != nil {
		out["items"] = convertToGeminiSchema(*def.Items)
	}
	return out
}

// OpenAIAdapter adapts pkg/groq, which speaks the OpenAI chat completions
// protocol, to the Provider interface. The same adapter serves Groq, OpenAI,
// DeepSeek and Qwen endpoints.
type OpenAIAdapter struct {
	name   string
	client groq.IGroq
}

// NewOpenAIAdapter creates a new adapter reported under name.
func NewOpenAIAdapter(name string, client groq.IGroq) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.ResponseSchema != nil {
		groqReq.JSONSchema = &groq.JSONSchema{
			Name:   req.ResponseSchema.Name,
			Schema: &req.ResponseSchema.Definition,
		}
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		if errors.Is(err, groq.ErrRateLimited) {
			return nil, &ProviderError{Provider: a.name, Err: fmt.Errorf("%w: %v", ErrProviderRateLimited, err)}
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(req *Request) []groq.Message {
	messages := make([]groq.Message, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil {
		messages = append(messages, groq.Message{
			Role:    groq.RoleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		switch role {
		case RoleAssistant, "model":
			role = groq.RoleAssistant
		case RoleSystem:
			role = groq.RoleSystem
		default:
			role = groq.RoleUser
		}
		messages = append(messages, groq.Message{Role: role, Content: joinParts(msg.Parts)})
	}

	return messages
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
