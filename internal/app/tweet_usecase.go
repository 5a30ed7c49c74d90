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

// TweetUseCase 這裡封裝了對外提供的應用服務
type TweetUseCase interface {
	CreateTweet(ctx context.Context, authorID, content string) (*domain.Tweet, error)
	ListTweets(ctx context.Context, authorID string, page domain.PageQuery) ([]domain.Tweet, domain.PageInfo, error)
	UpdateTweet(ctx context.Context, tweetID primitive.ObjectID, callerID, content string) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID primitive.ObjectID, callerID string) error
}

type tweetUseCase struct {
	tweetRepo   repository.TweetRepository
	likeRepo    repository.LikeRepository
	maxPageSize int
}

// NewTweetUseCase 建立一個新的 TweetUseCase
func NewTweetUseCase(tweetRepo repository.TweetRepository,
	likeRepo repository.LikeRepository,
	maxPageSize int,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo:   tweetRepo,
		likeRepo:    likeRepo,
		maxPageSize: maxPageSize,
	}
}

// CreateTweet
func (t *tweetUseCase) CreateTweet(ctx context.Context, authorID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, errprocess.BadRequest("tweet content is required")
	}

	tweet := domain.Tweet{
		AuthorID: authorID,
		Content:  content,
	}
	if err := t.tweetRepo.Create(ctx, &tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ListTweets 依作者列出貼文
func (t *tweetUseCase) ListTweets(ctx context.Context, authorID string, page domain.PageQuery) ([]domain.Tweet, domain.PageInfo, error) {
	page = page.Normalize(t.maxPageSize)
	tweets, total, err := t.tweetRepo.FindPageByAuthor(ctx, authorID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return tweets, domain.NewPageInfo(page, total), nil
}

// UpdateTweet 只有作者能更新，非作者一律回 not found
func (t *tweetUseCase) UpdateTweet(ctx context.Context, tweetID primitive.ObjectID, callerID, content string) (*domain.Tweet, error) {
	if content == "" {
		return nil, errprocess.BadRequest("tweet content is required")
	}

	tweet, err := t.tweetRepo.UpdateOwned(ctx, tweetID, callerID, content)
	if err == repository.ErrNotFound {
		logger.Log.Debug("update tweet miss", zap.String("tweet_id", tweetID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("tweet not found")
	}
	if err != nil {
		return nil, err
	}
	return tweet, nil
}

// DeleteTweet 刪除貼文並清掉它的按讚
func (t *tweetUseCase) DeleteTweet(ctx context.Context, tweetID primitive.ObjectID, callerID string) error {
	err := t.tweetRepo.DeleteOwned(ctx, tweetID, callerID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("delete tweet miss", zap.String("tweet_id", tweetID.Hex()), zap.String("caller_id", callerID))
		return errprocess.NotFound("tweet not found")
	}
	if err != nil {
		return err
	}

	if err := t.likeRepo.DeleteByTarget(ctx, domain.LikeTargetTweet, tweetID); err != nil {
		logger.Log.Error("cascade delete tweet likes err", zap.String("tweet_id", tweetID.Hex()), zap.String("err", err.Error()))
	}
	return nil
}
