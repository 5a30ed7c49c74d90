package handlers

import (
	"videotube_service/internal/app"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DashboardHandler 處理頻道儀表板相關的 HTTP 請求
type DashboardHandler struct {
	DashboardUseCase app.DashboardUseCase
}

// NewDashboardHandler create a DashboardHandler
func NewDashboardHandler(dashboardUseCase app.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		DashboardUseCase: dashboardUseCase,
	}
}

// GetChannelStats 頻道統計
// @Summary 頻道統計
// @Tags Dashboard
// @Produce json
// @Param channelID path string true "頻道 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /dashboard/{channelID}/stats [get]
func (h *DashboardHandler) GetChannelStats(c *fiber.Ctx) error {
	channelID := c.Params("channelID")
	if _, err := uuid.Parse(channelID); err != nil {
		return errprocess.BadRequest("invalid channelID")
	}

	stats, err := h.DashboardUseCase.GetChannelStats(c.Context(), channelID)
	if err != nil {
		return err
	}
	return response.OK(c, stats)
}

// ListChannelVideos 頻道的影片列表
// @Summary 頻道的影片列表
// @Tags Dashboard
// @Produce json
// @Param channelID path string true "頻道 id"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /dashboard/{channelID}/videos [get]
func (h *DashboardHandler) ListChannelVideos(c *fiber.Ctx) error {
	channelID := c.Params("channelID")
	if _, err := uuid.Parse(channelID); err != nil {
		return errprocess.BadRequest("invalid channelID")
	}

	videos, pageInfo, err := h.DashboardUseCase.ListChannelVideos(c.Context(), channelID, middlewares.CallerID(c), parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"videos":   videos,
		"pageInfo": pageInfo,
	})
}
