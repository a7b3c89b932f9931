package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "portfolio-chat/internal/chat/delivery/http"
)

// setupChatDomain registers /api/v1/chat. The routes exist even without a
// use case so clients get 503 instead of 404.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.mw.RateLimit())

	if srv.chatUC == nil {
		srv.l.Warnf(ctx, "Chat backend not available, /api/v1/chat will answer 503")
	} else {
		srv.l.Infof(ctx, "Chat domain registered")
	}
	return nil
}
