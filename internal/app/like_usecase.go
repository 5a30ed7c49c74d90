package app

import (
	"context"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	errprocess "videotube_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeUseCase 這裡封裝了對外提供的應用服務
type LikeUseCase interface {
	ToggleVideoLike(ctx context.Context, memberID string, videoID primitive.ObjectID) (domain.ToggleState, error)
	ToggleCommentLike(ctx context.Context, memberID string, commentID primitive.ObjectID) (domain.ToggleState, error)
	ToggleTweetLike(ctx context.Context, memberID string, tweetID primitive.ObjectID) (domain.ToggleState, error)
	ListLikedVideos(ctx context.Context, memberID string, page domain.PageQuery) ([]domain.Video, domain.PageInfo, error)
}

type likeUseCase struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	maxPageSize int
}

// NewLikeUseCase 建立一個新的 LikeUseCase
func NewLikeUseCase(likeRepo repository.LikeRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
	maxPageSize int,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		maxPageSize: maxPageSize,
	}
}

// ToggleVideoLike 對影片按讚或收回
func (l *likeUseCase) ToggleVideoLike(ctx context.Context, memberID string, videoID primitive.ObjectID) (domain.ToggleState, error) {
	exists, err := l.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errprocess.NotFound("video not found")
	}
	return l.likeRepo.Toggle(ctx, memberID, domain.LikeTargetVideo, videoID)
}

// ToggleCommentLike 對留言按讚或收回
func (l *likeUseCase) ToggleCommentLike(ctx context.Context, memberID string, commentID primitive.ObjectID) (domain.ToggleState, error) {
	exists, err := l.commentRepo.Exists(ctx, commentID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errprocess.NotFound("comment not found")
	}
	return l.likeRepo.Toggle(ctx, memberID, domain.LikeTargetComment, commentID)
}

// ToggleTweetLike 對貼文按讚或收回
func (l *likeUseCase) ToggleTweetLike(ctx context.Context, memberID string, tweetID primitive.ObjectID) (domain.ToggleState, error) {
	exists, err := l.tweetRepo.Exists(ctx, tweetID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errprocess.NotFound("tweet not found")
	}
	return l.likeRepo.Toggle(ctx, memberID, domain.LikeTargetTweet, tweetID)
}

// ListLikedVideos 使用者按過讚的影片清單
func (l *likeUseCase) ListLikedVideos(ctx context.Context, memberID string, page domain.PageQuery) ([]domain.Video, domain.PageInfo, error) {
	page = page.Normalize(l.maxPageSize)

	ids, total, err := l.likeRepo.FindLikedVideoIDs(ctx, memberID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	videos, err := l.videoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	// 保持按讚時間的排序
	byID := make(map[primitive.ObjectID]domain.Video, len(videos))
	for _, video := range videos {
		byID[video.ID] = video
	}
	ordered := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byID[id]; ok {
			ordered = append(ordered, video)
		}
	}

	return ordered, domain.NewPageInfo(page, total), nil
}
