package domain

const (
	// QueueName definition media job queue name
	QueueName = "media_jobs"

	// ViewEventTopicKey kafka view event message key
	ViewEventTopicKey = "video_view"

	// MediaActionProcess 上傳後的轉檔工作
	MediaActionProcess = "process"
	// MediaActionCleanup 刪除影片後的清理工作
	MediaActionCleanup = "cleanup"
)

// MediaJob 定義上傳後交給外部 worker 的處理工作訊息
type MediaJob struct {
	VideoID   string `json:"video_id"`
	ObjectKey string `json:"object_key"` // 原始檔在 MinIO 上的 object key
	Action    string `json:"action"`    // "process"
}

// ViewEvent 定義播放事件，發到 kafka 給下游分析管線
type ViewEvent struct {
	VideoID   string `json:"video_id"`
	AuthorID  string `json:"author_id"`
	ViewerID  string `json:"viewer_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
