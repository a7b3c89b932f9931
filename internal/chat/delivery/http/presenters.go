package http

import "portfolio-chat/internal/chat"

// --- Request DTOs ---

// chatReq uses pointers to tell a missing field from a wrongly typed one.
type chatReq struct {
	Message   *string `json:"message" swaggertype:"string" example:"What projects have you built?"`
	SessionID *string `json:"session_id,omitempty" swaggertype:"string" example:"3f2b7c1e-8a4d-4f7e-9c1a-2b5d6e7f8a9b"`
}

func (r chatReq) validate() error {
	if r.Message == nil {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.HandleInput {
	input := chat.HandleInput{Message: *r.Message}
	if r.SessionID != nil {
		input.SessionID = *r.SessionID
	}
	return input
}

// --- Response DTOs ---

type chatResp struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (h *handler) newChatResp(out chat.HandleOutput) chatResp {
	return chatResp{
		Message:   out.Message,
		SessionID: out.SessionID,
	}
}

type healthResp struct {
	Message string `json:"message"`
}
