package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"videotube_service/internal/api/handlers"
	"videotube_service/internal/api/router"
	"videotube_service/internal/app"
	"videotube_service/pkg/logger"
	"videotube_service/pkg/response"
	t_token "videotube_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// 測試用 session store，所有 session 都視為有效
type stubSessionChecker struct{}

func (stubSessionChecker) GetTTL(_ context.Context, _ string) (int, error) {
	return 300, nil
}

// repoMocks 收集所有 repository mock，方便整批驗證「沒碰到持久層」
type repoMocks struct {
	member   *app.MockMemberRepo
	video    *app.MockVideoRepo
	comment  *app.MockCommentRepo
	like     *app.MockLikeRepo
	sub      *app.MockSubscriptionRepo
	playlist *app.MockPlaylistRepo
	tweet    *app.MockTweetRepo
}

func (m *repoMocks) assertUntouched(t *testing.T) {
	t.Helper()
	assert.Empty(t, m.member.Calls, "member repo should not be called")
	assert.Empty(t, m.video.Calls, "video repo should not be called")
	assert.Empty(t, m.comment.Calls, "comment repo should not be called")
	assert.Empty(t, m.like.Calls, "like repo should not be called")
	assert.Empty(t, m.sub.Calls, "subscription repo should not be called")
	assert.Empty(t, m.playlist.Calls, "playlist repo should not be called")
	assert.Empty(t, m.tweet.Calls, "tweet repo should not be called")
}

func newTestServer() (*fiber.App, *repoMocks) {
	mocks := &repoMocks{
		member:   new(app.MockMemberRepo),
		video:    new(app.MockVideoRepo),
		comment:  new(app.MockCommentRepo),
		like:     new(app.MockLikeRepo),
		sub:      new(app.MockSubscriptionRepo),
		playlist: new(app.MockPlaylistRepo),
		tweet:    new(app.MockTweetRepo),
	}

	memberUC := app.NewMemberUseCase(mocks.member, time.Hour, new(app.MockRedisRepo))
	videoUC := app.NewVideoUseCase(new(app.MockMinIOClient), mocks.video, mocks.comment, mocks.like, mocks.playlist, new(app.MockRabbitChannel), new(app.MockKafkaRepo), 100)
	commentUC := app.NewCommentUseCase(mocks.comment, mocks.video, mocks.like, 100)
	likeUC := app.NewLikeUseCase(mocks.like, mocks.video, mocks.comment, mocks.tweet, 100)
	subUC := app.NewSubscriptionUseCase(mocks.sub, mocks.member, 100)
	playlistUC := app.NewPlaylistUseCase(mocks.playlist, mocks.video, 100)
	tweetUC := app.NewTweetUseCase(mocks.tweet, mocks.like, 100)
	dashboardUC := app.NewDashboardUseCase(mocks.video, mocks.sub, mocks.like, 100)

	r := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	router.RegisterRoutes(r, router.Handlers{
		Member:       handlers.NewMemberHandler(memberUC),
		Video:        handlers.NewVideoHandler(videoUC),
		Comment:      handlers.NewCommentHandler(commentUC),
		Like:         handlers.NewLikeHandler(likeUC),
		Subscription: handlers.NewSubscriptionHandler(subUC),
		Playlist:     handlers.NewPlaylistHandler(playlistUC),
		Tweet:        handlers.NewTweetHandler(tweetUC),
		Dashboard:    handlers.NewDashboardHandler(dashboardUC),
		Sessions:     stubSessionChecker{},
	})
	return r, mocks
}

// 非法 id 一律在 handler 層擋下回 400，持久層完全不被呼叫
func TestInvalidIdentifiersReturn400(t *testing.T) {
	logger.SetNewNop()

	jwt, err := t_token.GenerateJWT("member-1", "member", "test")
	assert.NoError(t, err)

	cases := []struct {
		name   string
		method string
		path   string
		auth   bool
	}{
		{"取得影片", "GET", "/videos/not-an-object-id", false},
		{"更新影片", "PATCH", "/videos/not-an-object-id", true},
		{"刪除影片", "DELETE", "/videos/not-an-object-id", true},
		{"翻轉發布", "PATCH", "/videos/not-an-object-id/publish", true},
		{"影片留言列表", "GET", "/videos/not-an-object-id/comments", false},
		{"新增留言", "POST", "/videos/not-an-object-id/comments", true},
		{"更新留言", "PATCH", "/comments/not-an-object-id", true},
		{"刪除留言", "DELETE", "/comments/not-an-object-id", true},
		{"影片按讚", "POST", "/likes/video/not-an-object-id", true},
		{"留言按讚", "POST", "/likes/comment/not-an-object-id", true},
		{"貼文按讚", "POST", "/likes/tweet/not-an-object-id", true},
		{"訂閱頻道", "POST", "/subscriptions/not-a-uuid", true},
		{"訂閱者列表", "GET", "/subscriptions/not-a-uuid/subscribers", false},
		{"取得播放清單", "GET", "/playlists/not-an-object-id", false},
		{"會員播放清單", "GET", "/playlists/member/not-a-uuid", false},
		{"更新播放清單", "PATCH", "/playlists/not-an-object-id", true},
		{"刪除播放清單", "DELETE", "/playlists/not-an-object-id", true},
		{"清單加影片", "POST", "/playlists/not-an-object-id/videos/also-bad", true},
		{"清單移除影片", "DELETE", "/playlists/not-an-object-id/videos/also-bad", true},
		{"會員貼文列表", "GET", "/tweets/member/not-a-uuid", false},
		{"更新貼文", "PATCH", "/tweets/not-an-object-id", true},
		{"刪除貼文", "DELETE", "/tweets/not-an-object-id", true},
		{"頻道統計", "GET", "/dashboard/not-a-uuid/stats", true},
		{"頻道影片", "GET", "/dashboard/not-a-uuid/videos", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, mocks := newTestServer()

			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth {
				req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwt)
			}

			resp, err := server.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			// 錯誤 envelope 格式固定
			body, _ := io.ReadAll(resp.Body)
			var envelope response.APIErrorBody
			assert.NoError(t, json.Unmarshal(body, &envelope))
			assert.Equal(t, fiber.StatusBadRequest, envelope.StatusCode)
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)

			mocks.assertUntouched(t)
		})
	}
}
