package app

import (
	"context"
	"net/http"
	"testing"

	"videotube_service/internal/domain"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardUseCase_GetChannelStats(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("聚合頻道統計", func(t *testing.T) {
		mockVideo := new(MockVideoRepo)
		mockSub := new(MockSubscriptionRepo)
		mockLike := new(MockLikeRepo)

		mockVideo.On("CountByAuthor", ctx, "channel-1").Return(int64(12), nil).Once()
		mockVideo.On("SumViewsByAuthor", ctx, "channel-1").Return(int64(3456), nil).Once()
		mockSub.On("CountSubscribers", ctx, "channel-1").Return(int64(78), nil).Once()
		mockLike.On("CountVideoLikesByAuthor", ctx, "channel-1").Return(int64(90), nil).Once()

		uc := NewDashboardUseCase(mockVideo, mockSub, mockLike, 100)
		stats, err := uc.GetChannelStats(ctx, "channel-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalVideos)
		assert.Equal(t, int64(3456), stats.TotalViews)
		assert.Equal(t, int64(78), stats.TotalSubscribers)
		assert.Equal(t, int64(90), stats.TotalLikes)
		mockVideo.AssertExpectations(t)
		mockSub.AssertExpectations(t)
		mockLike.AssertExpectations(t)
	})
}

func TestDashboardUseCase_ListChannelVideos(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("擁有者看得到含未發布的頻道影片", func(t *testing.T) {
		mockVideo := new(MockVideoRepo)
		mockVideo.On("FindPage", ctx, mock.MatchedBy(func(q *domain.VideoQuery) bool {
			// dashboard 看得到未發布影片
			return q.AuthorID == "channel-1" && !q.OnlyPublished
		})).Return(make([]domain.Video, 2), int64(2), nil).Once()

		uc := NewDashboardUseCase(mockVideo, new(MockSubscriptionRepo), new(MockLikeRepo), 100)
		videos, pageInfo, err := uc.ListChannelVideos(ctx, "channel-1", "channel-1", domain.PageQuery{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, videos, 2)
		assert.Equal(t, int64(1), pageInfo.TotalPages)
		mockVideo.AssertExpectations(t)
	})

	t.Run("非擁有者回 not found 且不查庫", func(t *testing.T) {
		mockVideo := new(MockVideoRepo)

		uc := NewDashboardUseCase(mockVideo, new(MockSubscriptionRepo), new(MockLikeRepo), 100)
		_, _, err := uc.ListChannelVideos(ctx, "channel-1", "someone-else", domain.PageQuery{Page: 1, Limit: 10})

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		mockVideo.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything)
	})
}
