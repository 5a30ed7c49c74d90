package handlers

import (
	"videotube_service/internal/app"
	"videotube_service/internal/domain"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler 處理按讚相關的 HTTP 請求
type LikeHandler struct {
	LikeUseCase app.LikeUseCase
}

// NewLikeHandler create a LikeHandler
func NewLikeHandler(likeUseCase app.LikeUseCase) *LikeHandler {
	return &LikeHandler{
		LikeUseCase: likeUseCase,
	}
}

// ToggleVideoLike 對影片按讚或收回
// @Summary 對影片按讚或收回
// @Tags Likes
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /likes/video/{videoID} [post]
func (h *LikeHandler) ToggleVideoLike(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	state, err := h.LikeUseCase.ToggleVideoLike(c.Context(), middlewares.CallerID(c), videoID)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"state": state,
		"liked": state == domain.ToggleAdded,
	})
}

// ToggleCommentLike 對留言按讚或收回
// @Summary 對留言按讚或收回
// @Tags Likes
// @Produce json
// @Param commentID path string true "留言 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /likes/comment/{commentID} [post]
func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	commentID, err := parseObjectID(c, "commentID")
	if err != nil {
		return err
	}

	state, err := h.LikeUseCase.ToggleCommentLike(c.Context(), middlewares.CallerID(c), commentID)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"state": state,
		"liked": state == domain.ToggleAdded,
	})
}

// ToggleTweetLike 對貼文按讚或收回
// @Summary 對貼文按讚或收回
// @Tags Likes
// @Produce json
// @Param tweetID path string true "貼文 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /likes/tweet/{tweetID} [post]
func (h *LikeHandler) ToggleTweetLike(c *fiber.Ctx) error {
	tweetID, err := parseObjectID(c, "tweetID")
	if err != nil {
		return err
	}

	state, err := h.LikeUseCase.ToggleTweetLike(c.Context(), middlewares.CallerID(c), tweetID)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"state": state,
		"liked": state == domain.ToggleAdded,
	})
}

// ListLikedVideos 按過讚的影片列表
// @Summary 按過讚的影片列表
// @Tags Likes
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *fiber.Ctx) error {
	videos, pageInfo, err := h.LikeUseCase.ListLikedVideos(c.Context(), middlewares.CallerID(c), parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"videos":   videos,
		"pageInfo": pageInfo,
	})
}
