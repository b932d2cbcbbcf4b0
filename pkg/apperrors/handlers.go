package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// debug controls whether internal error detail is included in responses.
// Set once at startup from the server environment.
var debug bool

func SetDebug(enabled bool) {
	debug = enabled
}

// HandleError translates any error into the uniform response envelope
// {success:false, message, code, details?}. Non-AppError values become 500s
// with their cause hidden unless debug mode is on.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	body := gin.H{
		"success": false,
		"message": appErr.Message,
		"code":    appErr.Code,
	}
	if appErr.Details != nil {
		body["errors"] = appErr.Details
	}
	if debug && appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}

	c.JSON(appErr.HTTPCode, body)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
