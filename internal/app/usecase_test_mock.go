package app

import (
	"context"
	"io"
	"time"

	"videotube_service/internal/domain"

	"github.com/minio/minio-go/v7"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockMemberRepo Mock MemberRepository
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) CreateMember(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) FindMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	args := m.Called(ctx, memberQuery)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberRepo) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus) error {
	args := m.Called(ctx, memberID, status)
	return args.Error(0)
}

// MockVideoRepo Mock VideoRepository
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) FindPage(ctx context.Context, query *domain.VideoQuery) ([]domain.Video, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID string, update *domain.VideoUpdate) (*domain.Video, error) {
	args := m.Called(ctx, id, authorID, update)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) TogglePublishOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepo) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepo) SumViewsByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCommentRepo Mock CommentRepository
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) FindPageByVideo(ctx context.Context, videoID primitive.ObjectID, page domain.PageQuery) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, videoID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, text string) (*domain.Comment, error) {
	args := m.Called(ctx, id, authorID, text)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Comment, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLikeRepo Mock LikeRepository
type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Toggle(ctx context.Context, memberID string, targetType domain.LikeTargetType, targetID primitive.ObjectID) (domain.ToggleState, error) {
	args := m.Called(ctx, memberID, targetType, targetID)
	return args.Get(0).(domain.ToggleState), args.Error(1)
}

func (m *MockLikeRepo) FindLikedVideoIDs(ctx context.Context, memberID string, page domain.PageQuery) ([]primitive.ObjectID, int64, error) {
	args := m.Called(ctx, memberID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeRepo) DeleteByTarget(ctx context.Context, targetType domain.LikeTargetType, targetID primitive.ObjectID) error {
	args := m.Called(ctx, targetType, targetID)
	return args.Error(0)
}

func (m *MockLikeRepo) DeleteByTargets(ctx context.Context, targetType domain.LikeTargetType, targetIDs []primitive.ObjectID) error {
	args := m.Called(ctx, targetType, targetIDs)
	return args.Error(0)
}

func (m *MockLikeRepo) CountVideoLikesByAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubscriptionRepo Mock SubscriptionRepository
type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Toggle(ctx context.Context, subscriberID, channelID string) (domain.ToggleState, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Get(0).(domain.ToggleState), args.Error(1)
}

func (m *MockSubscriptionRepo) FindSubscribers(ctx context.Context, channelID string, page domain.PageQuery) ([]domain.Subscription, int64, error) {
	args := m.Called(ctx, channelID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Subscription), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepo) FindSubscribedChannels(ctx context.Context, subscriberID string, page domain.PageQuery) ([]domain.Subscription, int64, error) {
	args := m.Called(ctx, subscriberID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Subscription), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepo) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlaylistRepo Mock PlaylistRepository
type MockPlaylistRepo struct {
	mock.Mock
}

func (m *MockPlaylistRepo) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepo) FindByOwner(ctx context.Context, ownerID string, page domain.PageQuery) ([]domain.Playlist, int64, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Playlist), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerID string, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	args := m.Called(ctx, id, ownerID, upd)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockPlaylistRepo) AddVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepo) RemoveVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepo) PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// MockTweetRepo Mock TweetRepository
type MockTweetRepo struct {
	mock.Mock
}

func (m *MockTweetRepo) Create(ctx context.Context, tweet *domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepo) FindPageByAuthor(ctx context.Context, authorID string, page domain.PageQuery) ([]domain.Tweet, int64, error) {
	args := m.Called(ctx, authorID, page)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Tweet), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepo) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, id, authorID, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetRepo) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}

func (m *MockTweetRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMinIOClient 是 MinIOClientRepo 的 Mock
type MockMinIOClient struct {
	mock.Mock
}

func (m *MockMinIOClient) UploadStream(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.Error(0)
}

func (m *MockMinIOClient) RemoveFile(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockMinIOClient) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockMinIOClient) GetObject(ctx context.Context, objectName string, opts minio.GetObjectOptions) (io.Reader, error) {
	args := m.Called(ctx, objectName, opts)
	if args.Get(0) != nil {
		return args.Get(0).(io.Reader), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRabbitChannel 是 RabbitMQ 的 Mock
type MockRabbitChannel struct {
	mock.Mock
}

func (m *MockRabbitChannel) GetRabbit() *amqp.Channel {
	args := m.Called()
	return args.Get(0).(*amqp.Channel)
}

func (m *MockRabbitChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockRabbitChannel) PublishJSON(queue string, body []byte) error {
	args := m.Called(queue, body)
	return args.Error(0)
}

// MockKafkaRepo 是 KafkaRepo 的 Mock
type MockKafkaRepo struct {
	mock.Mock
}

func (m *MockKafkaRepo) Publish(ctx context.Context, key, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKafkaRepo) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRedisRepo 針對 MemberSession 的 Mock
type MockRedisRepo struct {
	mock.Mock
}

func (m *MockRedisRepo) Set(ctx context.Context, key string, value domain.MemberSession, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockRedisRepo) Get(ctx context.Context, key string) (domain.MemberSession, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.MemberSession), args.Error(1)
}

func (m *MockRedisRepo) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepo) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepo) ExtendTTL(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}
