package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends data as-is with the given status.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error sends {"error": message} with the status of err.
// Errors that are not an HTTPError become a generic 500.
func Error(c *gin.Context, err error) {
	httpErr := AsHTTPError(err)
	c.JSON(httpErr.Status, ErrorResp{Error: httpErr.Message})
}

// Abort is Error for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	httpErr := AsHTTPError(err)
	c.AbortWithStatusJSON(httpErr.Status, ErrorResp{Error: httpErr.Message})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Error(c, ErrInternalServerError)
}
