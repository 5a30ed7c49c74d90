package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist 定義播放清單模型，video_ids 不允許重複
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	OwnerID     string               `bson:"owner_id" json:"ownerId"`
	VideoIDs    []primitive.ObjectID `bson:"video_ids" json:"videoIds"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// PlaylistUpdate 播放清單可更新欄位，nil 表示不更動
type PlaylistUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// HasVideo check playlist contain video
func (p *Playlist) HasVideo(videoID primitive.ObjectID) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}
