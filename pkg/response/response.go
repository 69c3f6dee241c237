package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes a failure envelope. The message travels in both the message
// and error fields so clients reading either see the same text.
func Error[T any](ctx *gin.Context, status int, message string, details interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	errField := details
	if errField == nil {
		errField = message
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     errField,
	}
	ctx.JSON(status, resp)
	return resp
}
