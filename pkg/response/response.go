package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "completion-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. A *pkgErrors.HTTPError chooses its own status
// code; any other error is reported as a 400 validation error. Empty data is
// left out of the body.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		code := httpErr.StatusCode
		if code == http.StatusInternalServerError {
			code = InternalServerErrorCode
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: code,
			Message:   httpErr.Message,
			Data:      errorData(data),
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      errorData(data),
	})
}

func errorData(data map[string]interface{}) any {
	if len(data) == 0 {
		return nil
	}
	return data
}
