package domain

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video 定義影片模型
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	MediaURL    string             `bson:"media_url" json:"mediaUrl"`
	ObjectKey   string             `bson:"object_key" json:"objectKey"` // 存於 MinIO 上的 object key
	AuthorID    string             `bson:"author_id" json:"authorId"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	Views       int64              `bson:"views" json:"views"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VideoQuery 影片列表查詢條件
type VideoQuery struct {
	Keyword       string // title 模糊搜尋
	AuthorID      string
	SortBy        string // 預設 created_at
	SortAsc       bool
	OnlyPublished bool // 公開列表只看已發布
	Page          PageQuery
}

// VideoUpdate 影片可更新欄位，nil 表示不更動
type VideoUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UploadVideoReq usecase upload video request
type UploadVideoReq struct {
	Title       string
	Description string
	AuthorID    string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}
