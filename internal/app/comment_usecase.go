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

// CommentUseCase 這裡封裝了對外提供的應用服務
type CommentUseCase interface {
	AddComment(ctx context.Context, videoID primitive.ObjectID, authorID, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, videoID primitive.ObjectID, page domain.PageQuery) ([]domain.Comment, domain.PageInfo, error)
	UpdateComment(ctx context.Context, commentID primitive.ObjectID, callerID, text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID primitive.ObjectID, callerID string) error
}

type commentUseCase struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	likeRepo    repository.LikeRepository
	maxPageSize int
}

// NewCommentUseCase 建立一個新的 CommentUseCase
func NewCommentUseCase(commentRepo repository.CommentRepository,
	videoRepo repository.VideoRepository,
	likeRepo repository.LikeRepository,
	maxPageSize int,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		maxPageSize: maxPageSize,
	}
}

// AddComment 在存在的影片下新增留言
func (c *commentUseCase) AddComment(ctx context.Context, videoID primitive.ObjectID, authorID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, errprocess.BadRequest("comment text is required")
	}

	exists, err := c.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errprocess.NotFound("video not found")
	}

	comment := domain.Comment{
		VideoID:  videoID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := c.commentRepo.Create(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments list comments of a video
func (c *commentUseCase) ListComments(ctx context.Context, videoID primitive.ObjectID, page domain.PageQuery) ([]domain.Comment, domain.PageInfo, error) {
	exists, err := c.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if !exists {
		return nil, domain.PageInfo{}, errprocess.NotFound("video not found")
	}

	page = page.Normalize(c.maxPageSize)
	comments, total, err := c.commentRepo.FindPageByVideo(ctx, videoID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return comments, domain.NewPageInfo(page, total), nil
}

// UpdateComment 只有作者能更新，非作者一律回 not found
func (c *commentUseCase) UpdateComment(ctx context.Context, commentID primitive.ObjectID, callerID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, errprocess.BadRequest("comment text is required")
	}

	comment, err := c.commentRepo.UpdateOwned(ctx, commentID, callerID, text)
	if err == repository.ErrNotFound {
		logger.Log.Debug("update comment miss", zap.String("comment_id", commentID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("comment not found")
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment 刪除留言並清掉它的按讚
func (c *commentUseCase) DeleteComment(ctx context.Context, commentID primitive.ObjectID, callerID string) error {
	_, err := c.commentRepo.DeleteOwned(ctx, commentID, callerID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("delete comment miss", zap.String("comment_id", commentID.Hex()), zap.String("caller_id", callerID))
		return errprocess.NotFound("comment not found")
	}
	if err != nil {
		return err
	}

	if err := c.likeRepo.DeleteByTarget(ctx, domain.LikeTargetComment, commentID); err != nil {
		logger.Log.Error("cascade delete comment likes err", zap.String("comment_id", commentID.Hex()), zap.String("err", err.Error()))
	}
	return nil
}
