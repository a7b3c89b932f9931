package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"portfolio-chat/pkg/llmprovider"
)

// flagsSchema is the structured output contract for Flags.
var flagsSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"Greeting":          {Type: jsonschema.Boolean, Description: "Greeting or small talk opener"},
		"PortfolioQuestion": {Type: jsonschema.Boolean, Description: "Question about skills, experience or projects"},
		"Unknown":           {Type: jsonschema.Boolean, Description: "Unrelated or inappropriate message"},
		"Contact":           {Type: jsonschema.Boolean, Description: "Request for contact details"},
	},
	Required:             []string{"Greeting", "PortfolioQuestion", "Unknown", "Contact"},
	AdditionalProperties: false,
}

// Classify asks the LLM for Flags and reduces them to a Category.
// LLM errors, empty output and undecodable JSON are returned as errors.
func (c *LLMClassifier) Classify(ctx context.Context, message string) (Category, error) {
	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: PromptClassifierSystem}},
		},
		Messages: []llmprovider.Message{
			llmprovider.TextMessage(llmprovider.RoleUser, fmt.Sprintf(PromptClassifierUser, message)),
		},
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
		ResponseSchema: &llmprovider.ResponseSchema{
			Name:       ClassifierSchemaName,
			Definition: flagsSchema,
		},
	})
	if err != nil {
		return Unknown, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	text := stripCodeFence(resp.Text())
	if text == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return Unknown, ErrEmptyResponse
	}

	var flags Flags
	if err := json.Unmarshal([]byte(text), &flags); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return Unknown, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	category := flags.Category()
	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, category)
	return category, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
