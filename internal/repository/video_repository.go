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

// VideoRepository definition video collection operations
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	// FindPage 依條件回傳一頁影片與總數
	FindPage(ctx context.Context, query *domain.VideoQuery) ([]domain.Video, int64, error)
	// UpdateOwned 只在 id 與 author 同時符合時更新，回傳是否有命中
	UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID string, update *domain.VideoUpdate) (*domain.Video, error)
	// DeleteOwned 只在 id 與 author 同時符合時刪除，回傳被刪除的影片
	DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error)
	// TogglePublishOwned 翻轉 is_published
	TogglePublishOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error)
	// IncrementViews views 原子遞增
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	// SumViewsByAuthor 聚合頻道總觀看數
	SumViewsByAuthor(ctx context.Context, authorID string) (int64, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error)
}

type videoRepository struct {
	coll *mongo.Collection
}

// NewMongoVideoRepository create a VideoRepository
func NewMongoVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{
		coll: db.Collection("videos"),
	}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, video)
	return err
}

func (r *videoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindPage(ctx context.Context, query *domain.VideoQuery) ([]domain.Video, int64, error) {
	filter := bson.M{}
	if query.Keyword != "" {
		filter["title"] = bson.M{"$regex": query.Keyword, "$options": "i"}
	}
	if query.AuthorID != "" {
		filter["author_id"] = query.AuthorID
	}
	if query.OnlyPublished {
		filter["is_published"] = true
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortDir := -1
	if query.SortAsc {
		sortDir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortDir}}).
		SetSkip(query.Page.Skip()).
		SetLimit(int64(query.Page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var videos []domain.Video
	if err := cur.All(ctx, &videos); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

func (r *videoRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, authorID string, update *domain.VideoUpdate) (*domain.Video, error) {
	set := bson.M{"updated_at": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	// id 與 author 放在同一個 filter，不存在與非擁有者不可區分
	filter := bson.M{"_id": id, "author_id": authorID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video domain.Video
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error) {
	filter := bson.M{"_id": id, "author_id": authorID}

	var video domain.Video
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) TogglePublishOwned(ctx context.Context, id primitive.ObjectID, authorID string) (*domain.Video, error) {
	filter := bson.M{"_id": id, "author_id": authorID}
	// 利用 aggregation pipeline update 原子翻轉 publish flag
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_published", Value: bson.D{{Key: "$not", Value: "$is_published"}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video domain.Video
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (r *videoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"author_id": authorID})
}

func (r *videoRepository) SumViewsByAuthor(ctx context.Context, authorID string) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "author_id", Value: authorID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		TotalViews int64 `bson:"total_views"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}

func (r *videoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var videos []domain.Video
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
