package response

import (
	"net/http"

	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIResponse 統一成功回應格式
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
}

// APIErrorBody 統一錯誤回應格式
type APIErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

// New create a success envelope, data 不做任何轉換
func New(statusCode int, data interface{}) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Success:    true,
		Data:       data,
	}
}

// OK write 200 envelope
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(http.StatusOK).JSON(New(http.StatusOK, data))
}

// Created write 201 envelope
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(http.StatusCreated).JSON(New(http.StatusCreated, data))
}

// Fail write error envelope
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(APIErrorBody{
		StatusCode: statusCode,
		Success:    false,
		Message:    message,
	})
}

// ErrorHandler fiber 的 error boundary
// handler 回傳的 error 都會收斂到這裡，轉成統一錯誤回應
func ErrorHandler(c *fiber.Ctx, err error) error {
	if apiErr, ok := errprocess.AsAPIError(err); ok {
		return Fail(c, apiErr.StatusCode, apiErr.Message)
	}

	// fiber 自身的錯誤（404 route、body limit 等）
	if fiberErr, ok := err.(*fiber.Error); ok {
		return Fail(c, fiberErr.Code, fiberErr.Message)
	}

	logger.Log.Error("unhandled request error",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err),
	)
	return Fail(c, http.StatusInternalServerError, err.Error())
}
