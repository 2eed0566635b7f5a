package apperrors

import (
	"github.com/gin-gonic/gin"

	"jobdeck_gateway/internal/logger"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response with the proper status.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
