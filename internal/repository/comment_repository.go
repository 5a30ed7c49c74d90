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

// CommentRepository definition comment collection operations
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// FindPageByVideo 依影片回傳一頁留言（新到舊）與總數
	FindPageByVideo(ctx context.Context, videoID primitive.ObjectID, page domain.PageQuery) ([]domain.Comment, int64, error)
	// UpdateOwned 只在 id 與 author 同時符合時更新
	UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, text string) (*domain.Comment, error)
	// DeleteOwned 只在 id 與 author 同時符合時刪除
	DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Comment, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	// DeleteByVideo 影片刪除時的級聯清理
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type commentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository create a CommentRepository
func NewMongoCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{
		coll: db.Collection("comments"),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, comment)
	return err
}

func (r *commentRepository) FindPageByVideo(ctx context.Context, videoID primitive.ObjectID, page domain.PageQuery) ([]domain.Comment, int64, error) {
	filter := bson.M{"video_id": videoID}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var comments []domain.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID, text string) (*domain.Comment, error) {
	filter := bson.M{"_id": id, "author_id": authorID}
	update := bson.M{"$set": bson.M{"text": text, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment domain.Comment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Comment, error) {
	filter := bson.M{"_id": id, "author_id": authorID}

	var comment domain.Comment
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	// 先撈出 id 讓呼叫端清掉留言上的讚，再刪除
	cur, err := r.coll.Find(ctx, bson.M{"video_id": videoID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"video_id": videoID}); err != nil {
		return nil, err
	}
	return ids, nil
}
