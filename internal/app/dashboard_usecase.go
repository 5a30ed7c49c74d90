package app

import (
	"context"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"go.uber.org/zap"
)

// DashboardUseCase 這裡封裝了對外提供的應用服務
type DashboardUseCase interface {
	GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	ListChannelVideos(ctx context.Context, channelID, callerID string, page domain.PageQuery) ([]domain.Video, domain.PageInfo, error)
}

type dashboardUseCase struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	maxPageSize      int
}

// NewDashboardUseCase 建立一個新的 DashboardUseCase
func NewDashboardUseCase(videoRepo repository.VideoRepository,
	subscriptionRepo repository.SubscriptionRepository,
	likeRepo repository.LikeRepository,
	maxPageSize int,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		likeRepo:         likeRepo,
		maxPageSize:      maxPageSize,
	}
}

// GetChannelStats 聚合頻道的影片數、總觀看數、訂閱數與總讚數
func (d *dashboardUseCase) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	totalVideos, err := d.videoRepo.CountByAuthor(ctx, channelID)
	if err != nil {
		return nil, err
	}

	totalViews, err := d.videoRepo.SumViewsByAuthor(ctx, channelID)
	if err != nil {
		return nil, err
	}

	totalSubscribers, err := d.subscriptionRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}

	totalLikes, err := d.likeRepo.CountVideoLikesByAuthor(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return &domain.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// ListChannelVideos 頻道自己的影片清單，含未發布，僅限擁有者
func (d *dashboardUseCase) ListChannelVideos(ctx context.Context, channelID, callerID string, page domain.PageQuery) ([]domain.Video, domain.PageInfo, error) {
	// 清單含未發布影片，非擁有者一律 collapsed 404
	if channelID != callerID {
		logger.Log.Debug("channel videos denied",
			zap.String("channel_id", channelID),
			zap.String("caller_id", callerID),
		)
		return nil, domain.PageInfo{}, errprocess.NotFound("channel not found")
	}

	page = page.Normalize(d.maxPageSize)

	query := domain.VideoQuery{
		AuthorID: channelID,
		Page:     page,
	}
	videos, total, err := d.videoRepo.FindPage(ctx, &query)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return videos, domain.NewPageInfo(page, total), nil
}
