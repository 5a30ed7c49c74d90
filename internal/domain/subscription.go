package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription 定義訂閱模型，(subscriber_id, channel_id) 有唯一索引
type Subscription struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubscriberID string             `bson:"subscriber_id" json:"subscriberId"`
	ChannelID    string             `bson:"channel_id" json:"channelId"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
