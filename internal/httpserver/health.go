package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-chat/pkg/response"
)

const (
	ServiceName    = "portfolio-chat"
	ServiceVersion = "1.0.0"
)

// probeResp is the body of the system probes.
type probeResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Chat    bool   `json:"chat_backend"`
}

func (srv HTTPServer) probe(status string) probeResp {
	return probeResp{
		Status:  status,
		Service: ServiceName,
		Version: ServiceVersion,
		Chat:    srv.chatUC != nil,
	}
}

// healthCheck
// @Summary Health Check
// @Description Check if the API process is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck reports ready only once the chat backend is wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve chat traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Chat backend not initialised"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.chatUC == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "chat backend not initialised",
			Data:      srv.probe("not_ready"),
		})
		return
	}
	response.OK(c, srv.probe("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
