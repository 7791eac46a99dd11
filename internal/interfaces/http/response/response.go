package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

// Envelope is the uniform JSON shape of every API response
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error sends an error envelope. Anything that is not an AppError is treated
// as an internal error and its detail is not exposed to the client.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, Envelope{
		Status:  "error",
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}

// AbortError sends an error envelope and stops the handler chain
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
