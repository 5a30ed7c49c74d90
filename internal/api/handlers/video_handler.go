package handlers

import (
	"videotube_service/internal/app"
	"videotube_service/internal/domain"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/middlewares"
	"videotube_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler 處理影片相關的 HTTP 請求
type VideoHandler struct {
	VideoUseCase app.VideoUseCase
}

// NewVideoHandler create a VideoHandler
func NewVideoHandler(videoUseCase app.VideoUseCase) *VideoHandler {
	return &VideoHandler{
		VideoUseCase: videoUseCase,
	}
}

// ListVideos 影片列表
// @Summary 影片列表
// @Tags Videos
// @Produce json
// @Param query query string false "標題關鍵字"
// @Param userId query string false "作者"
// @Param sortBy query string false "排序欄位"
// @Param sortType query string false "asc 或 desc"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	query := domain.VideoQuery{
		Keyword:  c.Query("query"),
		AuthorID: c.Query("userId"),
		SortBy:   c.Query("sortBy"),
		SortAsc:  c.Query("sortType") == "asc",
		Page:     parsePageQuery(c),
	}

	videos, pageInfo, err := h.VideoUseCase.ListVideos(c.Context(), query)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"videos":   videos,
		"pageInfo": pageInfo,
	})
}

// GetVideo 取得單一影片
// @Summary 取得單一影片
// @Tags Videos
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	video, err := h.VideoUseCase.GetVideo(c.Context(), videoID, middlewares.CallerID(c))
	if err != nil {
		return err
	}
	return response.OK(c, video)
}

// UploadVideo 上傳影片
// @Summary 上傳影片
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "標題"
// @Param description formData string false "描述"
// @Param file formData file true "影片檔"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /videos [post]
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errprocess.BadRequest("video file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errprocess.BadRequest("cannot open uploaded file")
	}
	defer file.Close()

	video, err := h.VideoUseCase.Upload(c.Context(), domain.UploadVideoReq{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		AuthorID:    middlewares.CallerID(c),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		File:        file,
	})
	if err != nil {
		return err
	}
	return response.Created(c, video)
}

// UpdateVideo 更新影片
// @Summary 更新影片資訊
// @Tags Videos
// @Accept json
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID} [patch]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	var req domain.VideoUpdate
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	video, err := h.VideoUseCase.UpdateVideo(c.Context(), videoID, middlewares.CallerID(c), req)
	if err != nil {
		return err
	}
	return response.OK(c, video)
}

// DeleteVideo 刪除影片
// @Summary 刪除影片
// @Tags Videos
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	if err := h.VideoUseCase.DeleteVideo(c.Context(), videoID, middlewares.CallerID(c)); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"deleted": true})
}

// TogglePublish 翻轉發布狀態
// @Summary 翻轉發布狀態
// @Tags Videos
// @Produce json
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /videos/{videoID}/publish [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	video, err := h.VideoUseCase.TogglePublish(c.Context(), videoID, middlewares.CallerID(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"isPublished": video.IsPublished})
}
