package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	"videotube_service/pkg/database"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const presignExpiry = 4 * time.Hour

// VideoUseCase 這裡封裝了對外提供的應用服務
type VideoUseCase interface {
	Upload(ctx context.Context, up domain.UploadVideoReq) (*domain.Video, error)
	GetVideo(ctx context.Context, videoID primitive.ObjectID, viewerID string) (*domain.Video, error)
	ListVideos(ctx context.Context, q domain.VideoQuery) ([]domain.Video, domain.PageInfo, error)
	UpdateVideo(ctx context.Context, videoID primitive.ObjectID, callerID string, upd domain.VideoUpdate) (*domain.Video, error)
	DeleteVideo(ctx context.Context, videoID primitive.ObjectID, callerID string) error
	TogglePublish(ctx context.Context, videoID primitive.ObjectID, callerID string) (*domain.Video, error)
}

type videoUseCase struct {
	minioClient  database.MinIOClientRepo
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	likeRepo     repository.LikeRepository
	playlistRepo repository.PlaylistRepository
	rabbitRepo   database.RabbitRepo // 上傳後發布媒體處理工作
	kafkaRepo    database.KafkaRepo  // 觀看事件
	maxPageSize  int
}

// NewVideoUseCase 建立一個新的 VideoUseCase
func NewVideoUseCase(minIO database.MinIOClientRepo,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	playlistRepo repository.PlaylistRepository,
	rabbitRepo database.RabbitRepo,
	kafkaRepo database.KafkaRepo,
	maxPageSize int,
) VideoUseCase {
	return &videoUseCase{
		minioClient:  minIO,
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		playlistRepo: playlistRepo,
		rabbitRepo:   rabbitRepo,
		kafkaRepo:    kafkaRepo,
		maxPageSize:  maxPageSize,
	}
}

// Upload 接收上傳請求，完成 MinIO 上傳、資料庫寫入與發布媒體工作訊息
func (v *videoUseCase) Upload(ctx context.Context, up domain.UploadVideoReq) (*domain.Video, error) {
	if up.Title == "" {
		return nil, errprocess.BadRequest("title is required")
	}
	if up.File == nil {
		return nil, errprocess.BadRequest("video file is required")
	}

	video := domain.Video{
		ID:          primitive.NewObjectID(),
		Title:       up.Title,
		Description: up.Description,
		AuthorID:    up.AuthorID,
		IsPublished: false,
	}

	// object key 例如 "videos/{videoID}/{filename}"
	objectKey := fmt.Sprintf("videos/%s/%s", video.ID.Hex(), up.FileName)
	if err := v.minioClient.UploadStream(ctx, objectKey, up.File, up.Size, up.ContentType); err != nil {
		errMsg := fmt.Sprintf("fileName[%s] 上傳 MinIO 失敗 : %v", up.FileName, err)
		return nil, errprocess.Set(errMsg)
	}
	video.ObjectKey = objectKey

	mediaURL, err := v.minioClient.PresignGetURL(ctx, objectKey, presignExpiry)
	if err != nil {
		errMsg := fmt.Sprintf("fileName[%s] 產生 presigned URL 失敗 : %v", up.FileName, err)
		return nil, errprocess.Set(errMsg)
	}
	video.MediaURL = mediaURL

	if err := v.videoRepo.Create(ctx, &video); err != nil {
		// 資料庫寫入失敗時回收已上傳的物件
		if rmErr := v.minioClient.RemoveFile(ctx, objectKey); rmErr != nil {
			logger.Log.Error("rollback minio object err", zap.String("object_key", objectKey), zap.String("err", rmErr.Error()))
		}
		errMsg := fmt.Sprintf("fileName[%s] 資料庫建立影片失敗 : %v", up.FileName, err)
		return nil, errprocess.Set(errMsg)
	}

	// 發布媒體處理工作訊息 (Producer 動作)
	job := domain.MediaJob{
		VideoID:   video.ID.Hex(),
		ObjectKey: objectKey,
		Action:    domain.MediaActionProcess,
	}
	data, err := json.Marshal(job)
	if err != nil {
		errMsg := fmt.Sprintf("fileName[%s] Job JSON 訊息序列化失敗 : %v", up.FileName, err)
		return nil, errprocess.Set(errMsg)
	}
	if err := v.rabbitRepo.PublishJSON(domain.QueueName, data); err != nil {
		errMsg := fmt.Sprintf("fileName[%s] 發送 RabbitMQ 訊息失敗 : %v", up.FileName, err)
		return nil, errprocess.Set(errMsg)
	}

	return &video, nil
}

// GetVideo 取得單一影片，成功時累加觀看數並發布觀看事件
func (v *videoUseCase) GetVideo(ctx context.Context, videoID primitive.ObjectID, viewerID string) (*domain.Video, error) {
	video, err := v.videoRepo.FindByID(ctx, videoID)
	if err == repository.ErrNotFound {
		return nil, errprocess.NotFound("video not found")
	}
	if err != nil {
		return nil, err
	}

	// 未發布影片只有作者看得到，對外一律回 not found
	if !video.IsPublished && video.AuthorID != viewerID {
		logger.Log.Debug("unpublished video requested by non-owner",
			zap.String("video_id", videoID.Hex()), zap.String("viewer_id", viewerID))
		return nil, errprocess.NotFound("video not found")
	}

	if err := v.videoRepo.IncrementViews(ctx, videoID); err != nil {
		logger.Log.Error("increment views err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
	} else {
		video.Views++
	}

	// 觀看事件交給 Kafka，失敗只記 log 不影響回應
	event := domain.ViewEvent{
		VideoID:   video.ID.Hex(),
		AuthorID:  video.AuthorID,
		ViewerID:  viewerID,
		Timestamp: time.Now().Unix(),
	}
	if data, err := json.Marshal(event); err == nil {
		if err := v.kafkaRepo.Publish(ctx, []byte(domain.ViewEventTopicKey), data); err != nil {
			logger.Log.Error("publish view event err", zap.String("video_id", video.ID.Hex()), zap.String("err", err.Error()))
		}
	}

	// presigned URL 有時效，每次取得時換發
	mediaURL, err := v.minioClient.PresignGetURL(ctx, video.ObjectKey, presignExpiry)
	if err != nil {
		logger.Log.Error("presign url err", zap.String("object_key", video.ObjectKey), zap.String("err", err.Error()))
	} else {
		video.MediaURL = mediaURL
	}

	return video, nil
}

// ListVideos list/search published videos
func (v *videoUseCase) ListVideos(ctx context.Context, q domain.VideoQuery) ([]domain.Video, domain.PageInfo, error) {
	q.OnlyPublished = true
	q.Page = q.Page.Normalize(v.maxPageSize)

	videos, total, err := v.videoRepo.FindPage(ctx, &q)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return videos, domain.NewPageInfo(q.Page, total), nil
}

// UpdateVideo 只有作者能更新，非作者一律回 not found
func (v *videoUseCase) UpdateVideo(ctx context.Context, videoID primitive.ObjectID, callerID string, upd domain.VideoUpdate) (*domain.Video, error) {
	if upd.Title == nil && upd.Description == nil {
		return nil, errprocess.BadRequest("nothing to update")
	}
	if upd.Title != nil && *upd.Title == "" {
		return nil, errprocess.BadRequest("title cannot be empty")
	}

	video, err := v.videoRepo.UpdateOwned(ctx, videoID, callerID, &upd)
	if err == repository.ErrNotFound {
		logger.Log.Debug("update video miss", zap.String("video_id", videoID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("video not found")
	}
	if err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo 刪除影片與其留言、按讚並自所有播放清單移除
func (v *videoUseCase) DeleteVideo(ctx context.Context, videoID primitive.ObjectID, callerID string) error {
	video, err := v.videoRepo.DeleteOwned(ctx, videoID, callerID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("delete video miss", zap.String("video_id", videoID.Hex()), zap.String("caller_id", callerID))
		return errprocess.NotFound("video not found")
	}
	if err != nil {
		return err
	}

	// 級聯清理，失敗只記 log，影片本體已刪除
	commentIDs, err := v.commentRepo.DeleteByVideo(ctx, videoID)
	if err != nil {
		logger.Log.Error("cascade delete comments err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
	}
	if err := v.likeRepo.DeleteByTarget(ctx, domain.LikeTargetVideo, videoID); err != nil {
		logger.Log.Error("cascade delete video likes err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
	}
	if err := v.likeRepo.DeleteByTargets(ctx, domain.LikeTargetComment, commentIDs); err != nil {
		logger.Log.Error("cascade delete comment likes err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
	}
	if err := v.playlistRepo.PullVideoFromAll(ctx, videoID); err != nil {
		logger.Log.Error("cascade pull from playlists err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
	}

	if err := v.minioClient.RemoveFile(ctx, video.ObjectKey); err != nil {
		logger.Log.Error("remove minio object err", zap.String("object_key", video.ObjectKey), zap.String("err", err.Error()))
	}

	job := domain.MediaJob{
		VideoID:   videoID.Hex(),
		ObjectKey: video.ObjectKey,
		Action:    domain.MediaActionCleanup,
	}
	if data, err := json.Marshal(job); err == nil {
		if err := v.rabbitRepo.PublishJSON(domain.QueueName, data); err != nil {
			logger.Log.Error("publish cleanup job err", zap.String("video_id", videoID.Hex()), zap.String("err", err.Error()))
		}
	}

	return nil
}

// TogglePublish 翻轉發布狀態，只有作者能操作
func (v *videoUseCase) TogglePublish(ctx context.Context, videoID primitive.ObjectID, callerID string) (*domain.Video, error) {
	video, err := v.videoRepo.TogglePublishOwned(ctx, videoID, callerID)
	if err == repository.ErrNotFound {
		logger.Log.Debug("toggle publish miss", zap.String("video_id", videoID.Hex()), zap.String("caller_id", callerID))
		return nil, errprocess.NotFound("video not found")
	}
	if err != nil {
		return nil, err
	}
	return video, nil
}
