package handlers

import (
	"videotube_service/internal/app"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MemberHandler 處理會員相關的 HTTP 請求
type MemberHandler struct {
	MemberUseCase app.MemberUseCase
}

// NewMemberHandler create a MemberHandler
func NewMemberHandler(memberUseCase app.MemberUseCase) *MemberHandler {
	return &MemberHandler{
		MemberUseCase: memberUseCase,
	}
}

// Register 註冊新會員
// @Summary 註冊新會員
// @Tags Members
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /member/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return errprocess.BadRequest("email and password are required")
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email))

	member, err := h.MemberUseCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Created(c, fiber.Map{
		"memberId": member.MemberID,
		"email":    member.Email,
	})
}

// Login 會員登入
// @Summary 會員登入
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	logger.Log.Debug("Login", zap.String("email", req.Email))

	token, err := h.MemberUseCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.OK(c, fiber.Map{"token": token})
}

// Logout 會員登出
// @Summary 會員登出
// @Tags Members
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIErrorBody
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	token, ok := c.Locals(middlewares.TokenRaw).(string)
	if !ok || token == "" {
		return errprocess.New(fiber.StatusUnauthorized, "missing token")
	}

	if err := h.MemberUseCase.Logout(c.Context(), token); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"message": "logout success"})
}
