package handlers

import (
	"videotube_service/internal/app"
	"videotube_service/internal/domain"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubscriptionHandler 處理訂閱相關的 HTTP 請求
type SubscriptionHandler struct {
	SubscriptionUseCase app.SubscriptionUseCase
}

// NewSubscriptionHandler create a SubscriptionHandler
func NewSubscriptionHandler(subscriptionUseCase app.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		SubscriptionUseCase: subscriptionUseCase,
	}
}

// channelParam 頻道 id 是會員的 uuid，先驗格式再查庫
func channelParam(c *fiber.Ctx) (string, error) {
	channelID := c.Params("channelID")
	if _, err := uuid.Parse(channelID); err != nil {
		return "", errprocess.BadRequest("invalid channelID")
	}
	return channelID, nil
}

// ToggleSubscription 訂閱或取消訂閱頻道
// @Summary 訂閱或取消訂閱頻道
// @Tags Subscriptions
// @Produce json
// @Param channelID path string true "頻道 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /subscriptions/{channelID} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *fiber.Ctx) error {
	channelID, err := channelParam(c)
	if err != nil {
		return err
	}

	state, err := h.SubscriptionUseCase.ToggleSubscription(c.Context(), middlewares.CallerID(c), channelID)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"state":      state,
		"subscribed": state == domain.ToggleAdded,
	})
}

// ListSubscribers 頻道的訂閱者清單
// @Summary 頻道的訂閱者清單
// @Tags Subscriptions
// @Produce json
// @Param channelID path string true "頻道 id"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /subscriptions/{channelID}/subscribers [get]
func (h *SubscriptionHandler) ListSubscribers(c *fiber.Ctx) error {
	channelID, err := channelParam(c)
	if err != nil {
		return err
	}

	subs, pageInfo, err := h.SubscriptionUseCase.ListSubscribers(c.Context(), channelID, parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"subscribers": subs,
		"pageInfo":    pageInfo,
	})
}

// ListSubscribedChannels 呼叫者訂閱中的頻道清單
// @Summary 訂閱中的頻道清單
// @Tags Subscriptions
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *fiber.Ctx) error {
	subs, pageInfo, err := h.SubscriptionUseCase.ListSubscribedChannels(c.Context(), middlewares.CallerID(c), parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"channels": subs,
		"pageInfo": pageInfo,
	})
}
