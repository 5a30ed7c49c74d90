package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"videotube_service/internal/domain"
	"videotube_service/pkg/database"
	"videotube_service/pkg/logger"
	testtool "videotube_service/pkg/test_tool"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// **測試用的容器**
var mongoContainer testcontainers.Container

var (
	memberRepo       MemberRepository
	videoRepo        VideoRepository
	commentRepo      CommentRepository
	likeRepo         LikeRepository
	subscriptionRepo SubscriptionRepository
	playlistRepo     PlaylistRepository
	tweetRepo        TweetRepository
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	ctx := context.Background()

	// **啟動 MongoDB**
	mongoContainer, mongoHost, mongoPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})
	if err != nil {
		log.Fatalf("❌ Failed to start MongoDB container: %v", err)
	}
	fmt.Printf("✅ MongoDB running at %s:%s\n", mongoHost, mongoPort)

	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort),
		RetryCount:    5,
		RetryInterval: 2 * time.Second,
	}, "videotube_test")
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// toggle 語意依賴唯一索引，測試前必須先建好
	if err := EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Fatalf("❌ Failed to ensure indexes: %v", err)
	}

	memberRepo = NewMongoMemberRepository(mongoDB.Database)
	videoRepo = NewMongoVideoRepository(mongoDB.Database)
	commentRepo = NewMongoCommentRepository(mongoDB.Database)
	likeRepo = NewMongoLikeRepository(mongoDB.Database)
	subscriptionRepo = NewMongoSubscriptionRepository(mongoDB.Database)
	playlistRepo = NewMongoPlaylistRepository(mongoDB.Database)
	tweetRepo = NewMongoTweetRepository(mongoDB.Database)

	// **執行測試**
	code := m.Run()

	// **停止測試容器**
	_ = mongoDB.Close(ctx)
	_ = mongoContainer.Terminate(ctx)

	os.Exit(code)
}

func newTestVideo(t *testing.T, authorID string, published bool) *domain.Video {
	t.Helper()
	video := &domain.Video{
		Title:       "integration test video",
		AuthorID:    authorID,
		IsPublished: published,
	}
	assert.NoError(t, videoRepo.Create(context.Background(), video))
	assert.False(t, video.ID.IsZero())
	assert.False(t, video.CreatedAt.IsZero(), "repository should stamp created_at")
	return video
}

// **測試會員唯一索引**
func TestMemberUniqueEmail(t *testing.T) {
	ctx := context.Background()
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	member := &domain.Member{
		MemberID:  uuid.NewString(),
		Email:     email,
		Password:  "hashed",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, memberRepo.CreateMember(ctx, member))

	dup := &domain.Member{
		MemberID:  uuid.NewString(),
		Email:     email,
		Password:  "hashed",
		CreatedAt: time.Now(),
	}
	assert.Error(t, memberRepo.CreateMember(ctx, dup), "duplicate email should be rejected by unique index")

	found, err := memberRepo.FindMember(ctx, &domain.MemberQuery{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, member.MemberID, found.MemberID)
}

// **測試按讚 toggle 交替**
func TestLikeToggleAlternation(t *testing.T) {
	ctx := context.Background()
	memberID := uuid.NewString()
	video := newTestVideo(t, uuid.NewString(), true)

	state, err := likeRepo.Toggle(ctx, memberID, domain.LikeTargetVideo, video.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, state)

	state, err = likeRepo.Toggle(ctx, memberID, domain.LikeTargetVideo, video.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ToggleRemoved, state)

	state, err = likeRepo.Toggle(ctx, memberID, domain.LikeTargetVideo, video.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, state)

	ids, total, err := likeRepo.FindLikedVideoIDs(ctx, memberID, domain.PageQuery{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []primitive.ObjectID{video.ID}, ids)
}

// **測試訂閱 toggle 與計數**
func TestSubscriptionToggle(t *testing.T) {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	state, err := subscriptionRepo.Toggle(ctx, subscriberID, channelID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, state)

	count, err := subscriptionRepo.CountSubscribers(ctx, channelID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	state, err = subscriptionRepo.Toggle(ctx, subscriberID, channelID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ToggleRemoved, state)

	count, err = subscriptionRepo.CountSubscribers(ctx, channelID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// **測試影片擁有者限定更新與刪除**
func TestVideoOwnerGatedMutation(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.NewString()
	video := newTestVideo(t, authorID, true)

	newTitle := "updated title"
	_, err := videoRepo.UpdateOwned(ctx, video.ID, "someone-else", &domain.VideoUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound, "non owner update should miss")

	updated, err := videoRepo.UpdateOwned(ctx, video.ID, authorID, &domain.VideoUpdate{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	_, err = videoRepo.DeleteOwned(ctx, video.ID, "someone-else")
	assert.ErrorIs(t, err, ErrNotFound, "non owner delete should miss")

	deleted, err := videoRepo.DeleteOwned(ctx, video.ID, authorID)
	assert.NoError(t, err)
	assert.Equal(t, video.ID, deleted.ID)

	exists, err := videoRepo.Exists(ctx, video.ID)
	assert.NoError(t, err)
	assert.False(t, exists)
}

// **測試發佈狀態翻轉**
func TestVideoTogglePublish(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.NewString()
	video := newTestVideo(t, authorID, false)

	toggled, err := videoRepo.TogglePublishOwned(ctx, video.ID, authorID)
	assert.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	toggled, err = videoRepo.TogglePublishOwned(ctx, video.ID, authorID)
	assert.NoError(t, err)
	assert.False(t, toggled.IsPublished)
}

// **測試觀看數遞增**
func TestVideoIncrementViews(t *testing.T) {
	ctx := context.Background()
	video := newTestVideo(t, uuid.NewString(), true)

	assert.NoError(t, videoRepo.IncrementViews(ctx, video.ID))
	assert.NoError(t, videoRepo.IncrementViews(ctx, video.ID))

	found, err := videoRepo.FindByID(ctx, video.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), found.Views)
}

// **測試播放清單影片增減**
func TestPlaylistAddRemoveVideo(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	video := newTestVideo(t, ownerID, true)

	playlist := &domain.Playlist{
		Name:      "favorites",
		OwnerID:   ownerID,
		VideoIDs:  []primitive.ObjectID{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	assert.NoError(t, playlistRepo.Create(ctx, playlist))

	added, err := playlistRepo.AddVideoOwned(ctx, playlist.ID, ownerID, video.ID)
	assert.NoError(t, err)
	assert.Contains(t, added.VideoIDs, video.ID)

	// 重複加入不會命中 $ne 條件
	_, err = playlistRepo.AddVideoOwned(ctx, playlist.ID, ownerID, video.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// 非擁有者也不命中
	_, err = playlistRepo.RemoveVideoOwned(ctx, playlist.ID, "someone-else", video.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := playlistRepo.RemoveVideoOwned(ctx, playlist.ID, ownerID, video.ID)
	assert.NoError(t, err)
	assert.NotContains(t, removed.VideoIDs, video.ID)
}

// **測試影片刪除時自所有清單移除**
func TestPlaylistPullVideoFromAll(t *testing.T) {
	ctx := context.Background()
	video := newTestVideo(t, uuid.NewString(), true)

	var playlists []*domain.Playlist
	for i := 0; i < 2; i++ {
		ownerID := uuid.NewString()
		p := &domain.Playlist{
			Name:      fmt.Sprintf("list-%d", i),
			OwnerID:   ownerID,
			VideoIDs:  []primitive.ObjectID{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		assert.NoError(t, playlistRepo.Create(ctx, p))
		_, err := playlistRepo.AddVideoOwned(ctx, p.ID, ownerID, video.ID)
		assert.NoError(t, err)
		playlists = append(playlists, p)
	}

	assert.NoError(t, playlistRepo.PullVideoFromAll(ctx, video.ID))

	for _, p := range playlists {
		found, err := playlistRepo.FindByID(ctx, p.ID)
		assert.NoError(t, err)
		assert.NotContains(t, found.VideoIDs, video.ID)
	}
}

// **測試留言級聯刪除**
func TestCommentDeleteByVideo(t *testing.T) {
	ctx := context.Background()
	video := newTestVideo(t, uuid.NewString(), true)
	memberID := uuid.NewString()

	var commentIDs []primitive.ObjectID
	for i := 0; i < 3; i++ {
		c := &domain.Comment{
			VideoID:  video.ID,
			AuthorID: memberID,
			Text:     fmt.Sprintf("comment %d", i),
		}
		assert.NoError(t, commentRepo.Create(ctx, c))
		assert.False(t, c.CreatedAt.IsZero(), "repository should stamp created_at")
		commentIDs = append(commentIDs, c.ID)
	}

	// 其中一則留言有人按讚
	_, err := likeRepo.Toggle(ctx, memberID, domain.LikeTargetComment, commentIDs[0])
	assert.NoError(t, err)

	deletedIDs, err := commentRepo.DeleteByVideo(ctx, video.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, commentIDs, deletedIDs)

	assert.NoError(t, likeRepo.DeleteByTargets(ctx, domain.LikeTargetComment, deletedIDs))

	_, total, err := commentRepo.FindPageByVideo(ctx, video.ID, domain.PageQuery{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// **測試貼文擁有者限定操作**
func TestTweetOwnerGated(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.NewString()

	tweet := &domain.Tweet{
		AuthorID:  authorID,
		Content:   "hello",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	assert.NoError(t, tweetRepo.Create(ctx, tweet))

	_, err := tweetRepo.UpdateOwned(ctx, tweet.ID, "someone-else", "hacked")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := tweetRepo.UpdateOwned(ctx, tweet.ID, authorID, "edited")
	assert.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	assert.ErrorIs(t, tweetRepo.DeleteOwned(ctx, tweet.ID, "someone-else"), ErrNotFound)
	assert.NoError(t, tweetRepo.DeleteOwned(ctx, tweet.ID, authorID))
}
