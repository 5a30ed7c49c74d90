package errprocess

import (
	"errors"
	"fmt"
	"net/http"

	"videotube_service/pkg/logger"
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// APIError definition api error, statusCode 會由 error boundary 轉成回應狀態碼
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Error implement error interface
func (e *APIError) Error() string {
	return e.Message
}

// New create a APIError
func New(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Newf create a APIError with format
func Newf(statusCode int, format string, args ...interface{}) *APIError {
	return New(statusCode, fmt.Sprintf(format, args...))
}

// BadRequest create a 400 APIError
func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, message)
}

// NotFound create a 404 APIError
// 不存在與無權限刻意共用同一個訊息，避免洩漏他人資源是否存在
func NotFound(message string) *APIError {
	return New(http.StatusNotFound, message)
}

// Internal create a 500 APIError
func Internal(message string) *APIError {
	return New(http.StatusInternalServerError, message)
}

// AsAPIError get APIError from error chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
