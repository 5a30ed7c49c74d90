package app

import (
	"context"
	"net/http"
	"testing"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentUseCase_AddComment(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	videoID := primitive.NewObjectID()

	// **情境 1: 新增留言成功**
	t.Run("新增留言成功", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockVideo := new(MockVideoRepo)
		mockVideo.On("Exists", ctx, videoID).Return(true, nil).Once()
		mockComment.On("Create", ctx, mock.Anything).Return(nil).Once()

		uc := NewCommentUseCase(mockComment, mockVideo, new(MockLikeRepo), 100)
		comment, err := uc.AddComment(ctx, videoID, "AAA", "nice video")

		assert.NoError(t, err)
		assert.Equal(t, videoID, comment.VideoID)
		assert.Equal(t, "AAA", comment.AuthorID)
		assert.Equal(t, "nice video", comment.Text)
		mockComment.AssertExpectations(t)
		mockVideo.AssertExpectations(t)
	})

	// **情境 2: 影片不存在**
	t.Run("影片不存在", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockVideo := new(MockVideoRepo)
		mockVideo.On("Exists", ctx, videoID).Return(false, nil).Once()

		uc := NewCommentUseCase(mockComment, mockVideo, new(MockLikeRepo), 100)
		_, err := uc.AddComment(ctx, videoID, "AAA", "nice video")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		mockComment.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	// **情境 3: 空白留言**
	t.Run("空白留言", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockVideo := new(MockVideoRepo)

		uc := NewCommentUseCase(mockComment, mockVideo, new(MockLikeRepo), 100)
		_, err := uc.AddComment(ctx, videoID, "AAA", "")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		mockVideo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}

func TestCommentUseCase_ListComments(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	videoID := primitive.NewObjectID()

	// **情境 1: 分頁列出留言**
	t.Run("分頁列出留言", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockVideo := new(MockVideoRepo)
		mockVideo.On("Exists", ctx, videoID).Return(true, nil).Once()
		mockComment.On("FindPageByVideo", ctx, videoID, domain.PageQuery{Page: 1, Limit: 10}).
			Return(make([]domain.Comment, 10), int64(25), nil).Once()

		uc := NewCommentUseCase(mockComment, mockVideo, new(MockLikeRepo), 100)
		comments, pageInfo, err := uc.ListComments(ctx, videoID, domain.PageQuery{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, comments, 10)
		assert.Equal(t, int64(3), pageInfo.TotalPages)
		mockComment.AssertExpectations(t)
	})

	// **情境 2: 影片不存在**
	t.Run("影片不存在", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockVideo := new(MockVideoRepo)
		mockVideo.On("Exists", ctx, videoID).Return(false, nil).Once()

		uc := NewCommentUseCase(mockComment, mockVideo, new(MockLikeRepo), 100)
		_, _, err := uc.ListComments(ctx, videoID, domain.PageQuery{Page: 1, Limit: 10})

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}

func TestCommentUseCase_UpdateComment(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	commentID := primitive.NewObjectID()

	// **情境 1: 作者更新成功**
	t.Run("作者更新成功", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		updated := &domain.Comment{ID: commentID, AuthorID: "AAA", Text: "edited"}
		mockComment.On("UpdateOwned", ctx, commentID, "AAA", "edited").Return(updated, nil).Once()

		uc := NewCommentUseCase(mockComment, new(MockVideoRepo), new(MockLikeRepo), 100)
		comment, err := uc.UpdateComment(ctx, commentID, "AAA", "edited")

		assert.NoError(t, err)
		assert.Equal(t, "edited", comment.Text)
		mockComment.AssertExpectations(t)
	})

	// **情境 2: 非作者回 not found**
	t.Run("非作者回 not found", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockComment.On("UpdateOwned", ctx, commentID, "BBB", "edited").Return(nil, repository.ErrNotFound).Once()

		uc := NewCommentUseCase(mockComment, new(MockVideoRepo), new(MockLikeRepo), 100)
		_, err := uc.UpdateComment(ctx, commentID, "BBB", "edited")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}

func TestCommentUseCase_DeleteComment(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	commentID := primitive.NewObjectID()

	// **情境 1: 刪除留言連同它的按讚**
	t.Run("刪除留言含級聯清理", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockLike := new(MockLikeRepo)
		deleted := &domain.Comment{ID: commentID, AuthorID: "AAA"}
		mockComment.On("DeleteOwned", ctx, commentID, "AAA").Return(deleted, nil).Once()
		mockLike.On("DeleteByTarget", ctx, domain.LikeTargetComment, commentID).Return(nil).Once()

		uc := NewCommentUseCase(mockComment, new(MockVideoRepo), mockLike, 100)
		err := uc.DeleteComment(ctx, commentID, "AAA")

		assert.NoError(t, err)
		mockComment.AssertExpectations(t)
		mockLike.AssertExpectations(t)
	})

	// **情境 2: 非作者回 not found**
	t.Run("非作者回 not found", func(t *testing.T) {
		mockComment := new(MockCommentRepo)
		mockLike := new(MockLikeRepo)
		mockComment.On("DeleteOwned", ctx, commentID, "BBB").Return(nil, repository.ErrNotFound).Once()

		uc := NewCommentUseCase(mockComment, new(MockVideoRepo), mockLike, 100)
		err := uc.DeleteComment(ctx, commentID, "BBB")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		mockLike.AssertNotCalled(t, "DeleteByTarget", mock.Anything, mock.Anything, mock.Anything)
	})
}
