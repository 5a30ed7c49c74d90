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

// TweetRepository definition tweet collection operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error
	// FindPageByAuthor 依作者新到舊列出貼文
	FindPageByAuthor(ctx context.Context, authorID string, page domain.PageQuery) ([]domain.Tweet, int64, error)
	// UpdateOwned 只有作者的更新會命中
	UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, content string) (*domain.Tweet, error)
	// DeleteOwned 只有作者的刪除會命中
	DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type tweetRepository struct {
	coll *mongo.Collection
}

// NewMongoTweetRepository create a TweetRepository
func NewMongoTweetRepository(db *mongo.Database) TweetRepository {
	return &tweetRepository{
		coll: db.Collection("tweets"),
	}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	if tweet.ID.IsZero() {
		tweet.ID = primitive.NewObjectID()
	}
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, tweet)
	return err
}

func (r *tweetRepository) FindPageByAuthor(ctx context.Context, authorID string, page domain.PageQuery) ([]domain.Tweet, int64, error) {
	filter := bson.M{"author_id": authorID}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var tweets []domain.Tweet
	if err := cur.All(ctx, &tweets); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

func (r *tweetRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, content string) (*domain.Tweet, error) {
	filter := bson.M{"_id": id, "author_id": authorID}
	update := bson.M{"$set": bson.M{
		"content":    content,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet domain.Tweet
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&tweet)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) error {
	filter := bson.M{"_id": id, "author_id": authorID}
	err := r.coll.FindOneAndDelete(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (r *tweetRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
