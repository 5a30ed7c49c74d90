package handlers

import (
	"videotube_service/internal/app"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CommentHandler 處理留言相關的 HTTP 請求
type CommentHandler struct {
	CommentUseCase app.CommentUseCase
}

// NewCommentHandler create a CommentHandler
func NewCommentHandler(commentUseCase app.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		CommentUseCase: commentUseCase,
	}
}

// ListComments 影片留言列表
// @Summary 影片留言列表
// @Tags Comments
// @Produce json
// @Param videoID path string true "影片 id"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID}/comments [get]
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	comments, pageInfo, err := h.CommentUseCase.ListComments(c.Context(), videoID, parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"comments": comments,
		"pageInfo": pageInfo,
	})
}

// AddComment 新增留言
// @Summary 新增留言
// @Tags Comments
// @Accept json
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID}/comments [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	type request struct {
		Text string `json:"text"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	comment, err := h.CommentUseCase.AddComment(c.Context(), videoID, middlewares.CallerID(c), req.Text)
	if err != nil {
		return err
	}
	return response.Created(c, comment)
}

// UpdateComment 更新留言
// @Summary 更新留言
// @Tags Comments
// @Accept json
// @Produce json
// @Param commentID path string true "留言 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /comments/{commentID} [patch]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	commentID, err := parseObjectID(c, "commentID")
	if err != nil {
		return err
	}

	type request struct {
		Text string `json:"text"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	comment, err := h.CommentUseCase.UpdateComment(c.Context(), commentID, middlewares.CallerID(c), req.Text)
	if err != nil {
		return err
	}
	return response.OK(c, comment)
}

// DeleteComment 刪除留言
// @Summary 刪除留言
// @Tags Comments
// @Produce json
// @Param commentID path string true "留言 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /comments/{commentID} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseObjectID(c, "commentID")
	if err != nil {
		return err
	}

	if err := h.CommentUseCase.DeleteComment(c.Context(), commentID, middlewares.CallerID(c)); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"deleted": true})
}
