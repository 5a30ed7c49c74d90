package app

import (
	"context"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PlaylistUseCase 這裡封裝了對外提供的應用服務
type PlaylistUseCase interface {
	CreatePlaylist(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID primitive.ObjectID) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context, ownerID string, page domain.PageQuery) ([]domain.Playlist, domain.PageInfo, error)
	UpdatePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID string, upd domain.PlaylistUpdate) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID string) error
	AddVideo(ctx context.Context, playlistID primitive.ObjectID, callerID string, videoID primitive.ObjectID) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID primitive.ObjectID, callerID string, videoID primitive.ObjectID) (*domain.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	maxPageSize  int
}

// NewPlaylistUseCase 建立一個新的 PlaylistUseCase
func NewPlaylistUseCase(playlistRepo repository.PlaylistRepository,
	videoRepo repository.VideoRepository,
	maxPageSize int,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		maxPageSize:  maxPageSize,
	}
}

// CreatePlaylist
func (p *playlistUseCase) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error) {
	if name == "" {
		return nil, errprocess.BadRequest("playlist name is required")
	}

	playlist := domain.Playlist{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		VideoIDs:    []primitive.ObjectID{},
	}
	if err := p.playlistRepo.Create(ctx, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylist 播放清單本身公開可讀
func (p *playlistUseCase) GetPlaylist(ctx context.Context, playlistID primitive.ObjectID) (*domain.Playlist, error) {
	playlist, err := p.playlistRepo.FindByID(ctx, playlistID)
	if err == repository.ErrNotFound {
		return nil, errprocess.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// ListPlaylists 依擁有者列出播放清單
func (p *playlistUseCase) ListPlaylists(ctx context.Context, ownerID string, page domain.PageQuery) ([]domain.Playlist, domain.PageInfo, error) {
	page = page.Normalize(p.maxPageSize)
	playlists, total, err := p.playlistRepo.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return playlists, domain.NewPageInfo(page, total), nil
}

// UpdatePlaylist 只有擁有者能更新，非擁有者一律回 not found
func (p *playlistUseCase) UpdatePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID string, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	if upd.Name == nil && upd.Description == nil {
		return nil, errprocess.BadRequest("nothing to update")
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, errprocess.BadRequest("playlist name cannot be empty")
	}

	playlist, err := p.playlistRepo.UpdateOwned(ctx, playlistID, callerID, upd)
	if err == repository.ErrNotFound {
		logger.Log.Debug("update playlist miss", zap.String("playlist_id", playlistID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist 只有擁有者能刪除
func (p *playlistUseCase) DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID string) error {
	err := p.playlistRepo.DeleteOwned(ctx, playlistID, callerID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("delete playlist miss", zap.String("playlist_id", playlistID.Hex()), zap.String("caller_id", callerID))
		return errprocess.NotFound("playlist not found")
	}
	return err
}

// AddVideo 把影片加進清單，重複加入回 400
func (p *playlistUseCase) AddVideo(ctx context.Context, playlistID primitive.ObjectID, callerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	exists, err := p.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errprocess.NotFound("video not found")
	}

	playlist, err := p.playlistRepo.AddVideoOwned(ctx, playlistID, callerID, videoID)
	if err == repository.ErrNotFound {
		// 更新條件排除已含該影片的清單，這裡分辨是重複加入還是清單不存在
		current, findErr := p.playlistRepo.FindByID(ctx, playlistID)
		if findErr == nil && current.OwnerID == callerID && current.HasVideo(videoID) {
			return nil, errprocess.BadRequest("video already in playlist")
		}
		logger.Log.Debug("add video to playlist miss", zap.String("playlist_id", playlistID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// RemoveVideo 自清單移除影片
func (p *playlistUseCase) RemoveVideo(ctx context.Context, playlistID primitive.ObjectID, callerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	playlist, err := p.playlistRepo.RemoveVideoOwned(ctx, playlistID, callerID, videoID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("remove video from playlist miss", zap.String("playlist_id", playlistID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}
