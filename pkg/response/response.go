package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// ErrorBody is the common error contract: every response carries success,
// failures carry a message. Raw internal error text is logged, never echoed.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// JSON sends a success payload. Payload types carry their own success flag.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Success: false, Message: appErr.Message, Code: appErr.Code})
}
