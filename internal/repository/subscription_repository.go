package repository

import (
	"context"
	"time"

	"videotube_service/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubscriptionRepository definition subscription collection operations
type SubscriptionRepository interface {
	// Toggle 先刪後插，唯一索引擋掉重複訂閱
	Toggle(ctx context.Context, subscriberID, channelID string) (domain.ToggleState, error)
	// FindSubscribers 某頻道的訂閱者清單
	FindSubscribers(ctx context.Context, channelID string, page domain.PageQuery) ([]domain.Subscription, int64, error)
	// FindSubscribedChannels 某使用者訂閱的頻道清單
	FindSubscribedChannels(ctx context.Context, subscriberID string, page domain.PageQuery) ([]domain.Subscription, int64, error)
	// CountSubscribers 頻道訂閱數
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
}

type subscriptionRepository struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepository create a SubscriptionRepository
func NewMongoSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{
		coll: db.Collection("subscriptions"),
	}
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (domain.ToggleState, error) {
	filter := bson.M{
		"subscriber_id": subscriberID,
		"channel_id":    channelID,
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return "", err
	}
	if res.DeletedCount == 1 {
		return domain.ToggleRemoved, nil
	}

	_, err = r.coll.InsertOne(ctx, domain.Subscription{
		ID:           primitive.NewObjectID(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ToggleAdded, nil
		}
		return "", err
	}
	return domain.ToggleAdded, nil
}

func (r *subscriptionRepository) FindSubscribers(ctx context.Context, channelID string, page domain.PageQuery) ([]domain.Subscription, int64, error) {
	return r.findPage(ctx, bson.M{"channel_id": channelID}, page)
}

func (r *subscriptionRepository) FindSubscribedChannels(ctx context.Context, subscriberID string, page domain.PageQuery) ([]domain.Subscription, int64, error) {
	return r.findPage(ctx, bson.M{"subscriber_id": subscriberID}, page)
}

func (r *subscriptionRepository) findPage(ctx context.Context, filter bson.M, page domain.PageQuery) ([]domain.Subscription, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var subs []domain.Subscription
	if err := cur.All(ctx, &subs); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"channel_id": channelID})
}
