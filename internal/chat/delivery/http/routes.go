package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Per-route middleware (rate limiting) is passed in by the server.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, chatMiddleware ...gin.HandlerFunc) {
	chatHandlers := append([]gin.HandlerFunc{}, chatMiddleware...)
	chatHandlers = append(chatHandlers, h.Chat)

	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("", chatHandlers...)
		chatGroup.GET("/health", h.Health)
	}
}
