package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-chat/pkg/response"
)

const (
	readyMessage    = "Chatbot is ready"
	notReadyMessage = "Chatbot is not ready"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Answers a visitor message about the portfolio. Omit session_id to start a new session; reuse the returned one to keep context.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     429  {object} response.ErrorResp "Too Many Requests"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Failure     503  {object} response.ErrorResp "Chat service unavailable"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	if h.uc == nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: chat backend not available")
		response.Error(c, errServiceUnavailable)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Handle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.l.Infof(ctx, "chat.delivery.http.Chat: processed message for session %s (%s, %s)", output.SessionID, output.Category, output.Outcome)
	response.JSON(c, http.StatusOK, h.newChatResp(output))
}

// Health godoc
// @Summary     Chatbot readiness
// @Description Reports whether the chat backend finished initialising.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} healthResp "Chatbot is ready"
// @Failure     503 {object} healthResp "Chatbot is not ready"
// @Router      /api/v1/chat/health [GET]
func (h *handler) Health(c *gin.Context) {
	if h.uc == nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.Health: chat backend is not initialized")
		response.JSON(c, http.StatusServiceUnavailable, healthResp{Message: notReadyMessage})
		return
	}
	response.JSON(c, http.StatusOK, healthResp{Message: readyMessage})
}

// Ready reports whether the chat backend is wired.
func (h *handler) Ready() bool {
	return h.uc != nil
}
