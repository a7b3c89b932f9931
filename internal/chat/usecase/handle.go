package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/intent"
	"portfolio-chat/internal/model"
)

const logPrefixHandle = "internal.chat.usecase.Handle"

// Handle runs safety check, human turn append, classification, dispatch and
// AI turn append. Any failure after the safety check becomes ApologyMessage
// and leaves the AI turn unwritten.
func (uc *implUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
	if err := uc.validate(input); err != nil {
		return chat.HandleOutput{}, err
	}

	start := uc.now()
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.newSessionID()
	}

	if uc.safety.ContainsViolation(input.Message) {
		uc.l.Infof(ctx, "%s: session %s: message blocked by safety filter", logPrefixHandle, sessionID)
		uc.metrics.ObserveChat(intent.Unknown.String(), string(chat.OutcomeRefused), uc.now().Sub(start))
		return chat.HandleOutput{
			Message:   chat.RefusalMessage,
			SessionID: sessionID,
			Category:  intent.Unknown,
			Outcome:   chat.OutcomeRefused,
		}, nil
	}

	out := chat.HandleOutput{SessionID: sessionID, Outcome: chat.OutcomeAnswered}

	category, reply, err := uc.respond(ctx, sessionID, input.Message)
	out.Category = category
	if err != nil {
		stage := chat.Stage("unknown")
		var f *chat.Failure
		if errors.As(err, &f) {
			stage = f.Stage
		}
		uc.l.Errorf(ctx, "%s: session %s: %v", logPrefixHandle, sessionID, err)
		uc.metrics.IncChatFailure(string(stage))

		out.Message = chat.ApologyMessage
		out.Outcome = chat.OutcomeFailed
	} else {
		out.Message = reply
	}

	uc.metrics.ObserveChat(out.Category.String(), string(out.Outcome), uc.now().Sub(start))
	return out, nil
}

// respond is the generation path. Errors are *chat.Failure.
func (uc *implUseCase) respond(ctx context.Context, sessionID, message string) (intent.Category, string, error) {
	if err := uc.history.AppendTurn(ctx, sessionID, model.Turn{Role: model.RoleHuman, Content: message}); err != nil {
		return intent.Unknown, "", chat.Fail(chat.StageStore, err)
	}

	category, err := uc.classifier.Classify(ctx, message)
	if err != nil {
		return intent.Unknown, "", chat.Fail(chat.StageClassify, err)
	}

	reply, err := uc.strategyFor(category)(ctx, sessionID, message)
	if err != nil {
		return category, "", err
	}

	if err := uc.history.AppendTurn(ctx, sessionID, model.Turn{Role: model.RoleAI, Content: reply}); err != nil {
		return category, "", chat.Fail(chat.StageStore, err)
	}

	return category, reply, nil
}

func (uc *implUseCase) validate(input chat.HandleInput) error {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(input.Message) > uc.maxMsgLen {
		return chat.ErrMessageTooLong
	}
	if input.SessionID != "" && !validSessionID(input.SessionID) {
		return chat.ErrInvalidSessionID
	}
	return nil
}

func validSessionID(id string) bool {
	if len(id) > chat.MaxSessionIDLength {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}
