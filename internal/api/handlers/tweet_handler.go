package handlers

import (
	"videotube_service/internal/app"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TweetHandler 處理貼文相關的 HTTP 請求
type TweetHandler struct {
	TweetUseCase app.TweetUseCase
}

// NewTweetHandler create a TweetHandler
func NewTweetHandler(tweetUseCase app.TweetUseCase) *TweetHandler {
	return &TweetHandler{
		TweetUseCase: tweetUseCase,
	}
}

// CreateTweet 建立貼文
// @Summary 建立貼文
// @Tags Tweets
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /tweets [post]
func (h *TweetHandler) CreateTweet(c *fiber.Ctx) error {
	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	tweet, err := h.TweetUseCase.CreateTweet(c.Context(), middlewares.CallerID(c), req.Content)
	if err != nil {
		return err
	}
	return response.Created(c, tweet)
}

// ListMemberTweets 會員的貼文列表
// @Summary 會員的貼文列表
// @Tags Tweets
// @Produce json
// @Param userID path string true "會員 id"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /tweets/member/{userID} [get]
func (h *TweetHandler) ListMemberTweets(c *fiber.Ctx) error {
	userID := c.Params("userID")
	if _, err := uuid.Parse(userID); err != nil {
		return errprocess.BadRequest("invalid userID")
	}

	tweets, pageInfo, err := h.TweetUseCase.ListTweets(c.Context(), userID, parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"tweets":   tweets,
		"pageInfo": pageInfo,
	})
}

// UpdateTweet 更新貼文
// @Summary 更新貼文
// @Tags Tweets
// @Accept json
// @Produce json
// @Param tweetID path string true "貼文 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /tweets/{tweetID} [patch]
func (h *TweetHandler) UpdateTweet(c *fiber.Ctx) error {
	tweetID, err := parseObjectID(c, "tweetID")
	if err != nil {
		return err
	}

	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	tweet, err := h.TweetUseCase.UpdateTweet(c.Context(), tweetID, middlewares.CallerID(c), req.Content)
	if err != nil {
		return err
	}
	return response.OK(c, tweet)
}

// DeleteTweet 刪除貼文
// @Summary 刪除貼文
// @Tags Tweets
// @Produce json
// @Param tweetID path string true "貼文 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /tweets/{tweetID} [delete]
func (h *TweetHandler) DeleteTweet(c *fiber.Ctx) error {
	tweetID, err := parseObjectID(c, "tweetID")
	if err != nil {
		return err
	}

	if err := h.TweetUseCase.DeleteTweet(c.Context(), tweetID, middlewares.CallerID(c)); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"deleted": true})
}
