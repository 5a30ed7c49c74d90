package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeTargetType 定義按讚目標類型
type LikeTargetType string

const (
	// LikeTargetVideo like on a video
	LikeTargetVideo LikeTargetType = "video"
	// LikeTargetComment like on a comment
	LikeTargetComment LikeTargetType = "comment"
	// LikeTargetTweet like on a tweet
	LikeTargetTweet LikeTargetType = "tweet"
)

// Like 定義按讚模型，(member_id, target_type, target_id) 有唯一索引
type Like struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID   string             `bson:"member_id" json:"memberId"`
	TargetType LikeTargetType     `bson:"target_type" json:"targetType"`
	TargetID   primitive.ObjectID `bson:"target_id" json:"targetId"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// ToggleState toggle 後的狀態
type ToggleState string

const (
	// ToggleAdded 這次 toggle 建立了記錄
	ToggleAdded ToggleState = "added"
	// ToggleRemoved 這次 toggle 刪除了記錄
	ToggleRemoved ToggleState = "removed"
)
