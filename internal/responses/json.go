package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/validation"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Count   *int              `json:"count,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  validation.Errors `json:"errors,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List answers a collection read with its element count alongside.
func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

// FailValidation reports every collected field error so the caller can
// display all problems at once.
func FailValidation(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Errors:  errs,
	})
}
