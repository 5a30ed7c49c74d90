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

// PlaylistHandler 處理播放清單相關的 HTTP 請求
type PlaylistHandler struct {
	PlaylistUseCase app.PlaylistUseCase
}

// NewPlaylistHandler create a PlaylistHandler
func NewPlaylistHandler(playlistUseCase app.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{
		PlaylistUseCase: playlistUseCase,
	}
}

// CreatePlaylist 建立播放清單
// @Summary 建立播放清單
// @Tags Playlists
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Router /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *fiber.Ctx) error {
	type request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	playlist, err := h.PlaylistUseCase.CreatePlaylist(c.Context(), middlewares.CallerID(c), req.Name, req.Description)
	if err != nil {
		return err
	}
	return response.Created(c, playlist)
}

// GetPlaylist 取得播放清單
// @Summary 取得播放清單
// @Tags Playlists
// @Produce json
// @Param playlistID path string true "清單 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /playlists/{playlistID} [get]
func (h *PlaylistHandler) GetPlaylist(c *fiber.Ctx) error {
	playlistID, err := parseObjectID(c, "playlistID")
	if err != nil {
		return err
	}

	playlist, err := h.PlaylistUseCase.GetPlaylist(c.Context(), playlistID)
	if err != nil {
		return err
	}
	return response.OK(c, playlist)
}

// ListMemberPlaylists 會員的播放清單
// @Summary 會員的播放清單
// @Tags Playlists
// @Produce json
// @Param userID path string true "會員 id"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.APIResponse
// @Router /playlists/member/{userID} [get]
func (h *PlaylistHandler) ListMemberPlaylists(c *fiber.Ctx) error {
	userID := c.Params("userID")
	if _, err := uuid.Parse(userID); err != nil {
		return errprocess.BadRequest("invalid userID")
	}

	playlists, pageInfo, err := h.PlaylistUseCase.ListPlaylists(c.Context(), userID, parsePageQuery(c))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"playlists": playlists,
		"pageInfo":  pageInfo,
	})
}

// UpdatePlaylist 更新播放清單
// @Summary 更新播放清單
// @Tags Playlists
// @Accept json
// @Produce json
// @Param playlistID path string true "清單 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /playlists/{playlistID} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *fiber.Ctx) error {
	playlistID, err := parseObjectID(c, "playlistID")
	if err != nil {
		return err
	}

	var req domain.PlaylistUpdate
	if err := c.BodyParser(&req); err != nil {
		return errprocess.BadRequest("invalid request body")
	}

	playlist, err := h.PlaylistUseCase.UpdatePlaylist(c.Context(), playlistID, middlewares.CallerID(c), req)
	if err != nil {
		return err
	}
	return response.OK(c, playlist)
}

// DeletePlaylist 刪除播放清單
// @Summary 刪除播放清單
// @Tags Playlists
// @Produce json
// @Param playlistID path string true "清單 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /playlists/{playlistID} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *fiber.Ctx) error {
	playlistID, err := parseObjectID(c, "playlistID")
	if err != nil {
		return err
	}

	if err := h.PlaylistUseCase.DeletePlaylist(c.Context(), playlistID, middlewares.CallerID(c)); err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"deleted": true})
}

// AddVideo 把影片加進清單
// @Summary 把影片加進清單
// @Tags Playlists
// @Produce json
// @Param playlistID path string true "清單 id"
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIErrorBody
// @Failure 404 {object} response.APIErrorBody
// @Router /playlists/{playlistID}/videos/{videoID} [post]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	playlistID, err := parseObjectID(c, "playlistID")
	if err != nil {
		return err
	}
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	playlist, err := h.PlaylistUseCase.AddVideo(c.Context(), playlistID, middlewares.CallerID(c), videoID)
	if err != nil {
		return err
	}
	return response.OK(c, playlist)
}

// RemoveVideo 自清單移除影片
// @Summary 自清單移除影片
// @Tags Playlists
// @Produce json
// @Param playlistID path string true "清單 id"
// @Param videoID path string true "影片 id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIErrorBody
// @Router /playlists/{playlistID}/videos/{videoID} [delete]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	playlistID, err := parseObjectID(c, "playlistID")
	if err != nil {
		return err
	}
	videoID, err := parseObjectID(c, "videoID")
	if err != nil {
		return err
	}

	playlist, err := h.PlaylistUseCase.RemoveVideo(c.Context(), playlistID, middlewares.CallerID(c), videoID)
	if err != nil {
		return err
	}
	return response.OK(c, playlist)
}
