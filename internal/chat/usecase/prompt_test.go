package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-chat/internal/model"
)

func TestRenderPrompt(t *testing.T) {
	history := []model.Turn{
		{Role: model.RoleHuman, Content: "Hi"},
		{Role: model.RoleAI, Content: "Hello!"},
	}
	passages := []model.Passage{{Content: "first"}, {Content: "second"}}

	prompt := renderPrompt(history, passages, "What about {context}?")

	assert.Contains(t, prompt, "Chat History:\nHuman: Hi\nAI: Hello!\n")
	assert.Contains(t, prompt, "(Retrieved via RAG):\nfirst\n\nsecond\n")
	assert.Contains(t, prompt, "User Question:\nWhat about {context}?\n")
	assert.False(t, strings.Contains(prompt, "{history}"))
}

func TestRenderContact(t *testing.T) {
	assert.Equal(t, "Contact details are not available right now.", renderContact(Profile{}))

	got := renderContact(Profile{Name: "Sam", Phone: "+1 555", LinkedIn: "linkedin.com/in/sam"})
	assert.Equal(t, "You can reach Sam here:\nPhone: +1 555\nLinkedIn: linkedin.com/in/sam", got)
}

func TestRenderGreeting(t *testing.T) {
	assert.Contains(t, renderGreeting(Profile{}), "portfolio assistant")
	assert.Contains(t, renderGreeting(Profile{Name: "Sam"}), "Sam's portfolio assistant")
}
