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

// LikeRepository definition like collection operations
type LikeRepository interface {
	// Toggle 先刪後插，配合唯一索引保證同一 (member, target) 最多一筆
	Toggle(ctx context.Context, memberID string, targetType domain.LikeTargetType, targetID primitive.ObjectID) (domain.ToggleState, error)
	// FindLikedVideoIDs 回傳使用者按過讚的影片 id 一頁與總數
	FindLikedVideoIDs(ctx context.Context, memberID string, page domain.PageQuery) ([]primitive.ObjectID, int64, error)
	// DeleteByTarget 單一目標的級聯清理
	DeleteByTarget(ctx context.Context, targetType domain.LikeTargetType, targetID primitive.ObjectID) error
	// DeleteByTargets 多目標的級聯清理
	DeleteByTargets(ctx context.Context, targetType domain.LikeTargetType, targetIDs []primitive.ObjectID) error
	// CountVideoLikesByAuthor 聚合頻道影片收到的總讚數
	CountVideoLikesByAuthor(ctx context.Context, authorID string) (int64, error)
}

type likeRepository struct {
	coll *mongo.Collection
}

// NewMongoLikeRepository create a LikeRepository
func NewMongoLikeRepository(db *mongo.Database) LikeRepository {
	return &likeRepository{
		coll: db.Collection("likes"),
	}
}

func (r *likeRepository) Toggle(ctx context.Context, memberID string, targetType domain.LikeTargetType, targetID primitive.ObjectID) (domain.ToggleState, error) {
	filter := bson.M{
		"member_id":   memberID,
		"target_type": targetType,
		"target_id":   targetID,
	}

	// 先嘗試刪除，刪到了表示原本是 Present
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return "", err
	}
	if res.DeletedCount == 1 {
		return domain.ToggleRemoved, nil
	}

	_, err = r.coll.InsertOne(ctx, domain.Like{
		ID:         primitive.NewObjectID(),
		MemberID:   memberID,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		// 併發 toggle 撞上唯一索引，記錄已存在，視為 added
		if mongo.IsDuplicateKeyError(err) {
			return domain.ToggleAdded, nil
		}
		return "", err
	}
	return domain.ToggleAdded, nil
}

func (r *likeRepository) FindLikedVideoIDs(ctx context.Context, memberID string, page domain.PageQuery) ([]primitive.ObjectID, int64, error) {
	filter := bson.M{
		"member_id":   memberID,
		"target_type": domain.LikeTargetVideo,
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var likes []domain.Like
	if err := cur.All(ctx, &likes); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.TargetID)
	}
	return ids, total, nil
}

func (r *likeRepository) DeleteByTarget(ctx context.Context, targetType domain.LikeTargetType, targetID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{
		"target_type": targetType,
		"target_id":   targetID,
	})
	return err
}

func (r *likeRepository) DeleteByTargets(ctx context.Context, targetType domain.LikeTargetType, targetIDs []primitive.ObjectID) error {
	if len(targetIDs) == 0 {
		return nil
	}
	_, err := r.coll.DeleteMany(ctx, bson.M{
		"target_type": targetType,
		"target_id":   bson.M{"$in": targetIDs},
	})
	return err
}

func (r *likeRepository) CountVideoLikesByAuthor(ctx context.Context, authorID string) (int64, error) {
	pipeline := mongo.Pipeline{
		// 1. 只看影片上的讚
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "target_type", Value: domain.LikeTargetVideo},
		}}},
		// 2. 關聯出被按讚的影片
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "videos"},
			{Key: "localField", Value: "target_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		// 3. 過濾出該頻道的影片
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "video.author_id", Value: authorID},
		}}},
		bson.D{{Key: "$count", Value: "total_likes"}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		TotalLikes int64 `bson:"total_likes"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalLikes, nil
}
