package usecase

import (
	"context"
	"strings"

	"portfolio-chat/internal/chat"
	"portfolio-chat/pkg/llmprovider"
)

const (
	ragTemperature = 0.3
	ragMaxTokens   = 400

	logPrefixAnswer = "internal.chat.usecase.answerFromPortfolio"
)

// answerFromPortfolio retrieves passages for the raw message, reads the
// recent history (which already holds the current human turn) and asks the
// LLM for an answer grounded in both.
func (uc *implUseCase) answerFromPortfolio(ctx context.Context, sessionID, message string) (string, error) {
	passages, err := uc.passages.Retrieve(ctx, message, uc.topK)
	if err != nil {
		return "", chat.Fail(chat.StageRetrieve, err)
	}

	history := uc.history.RecentTurns(ctx, sessionID, uc.historyWindow)
	prompt := renderPrompt(history, passages, message)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature: ragTemperature,
		MaxTokens:   ragMaxTokens,
	})
	if err != nil {
		return "", chat.Fail(chat.StageGenerate, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", chat.Fail(chat.StageGenerate, chat.ErrEmptyAnswer)
	}

	uc.l.Debugf(ctx, "%s: session %s: %d passages, %d history turns", logPrefixAnswer, sessionID, len(passages), len(history))
	return answer, nil
}
