package httpserver

import (
	"github.com/gin-gonic/gin"

	"portfolio-chat/pkg/response"
)

// recovery turns panics into a logged 500.
func (srv HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "internal.httpserver.recovery: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.Abort(c, response.ErrInternalServerError)
	})
}
