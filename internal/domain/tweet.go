package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet 定義動態貼文模型
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID  string             `bson:"author_id" json:"authorId"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
