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

// PlaylistRepository definition playlist collection operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
	// FindByOwner 依擁有者列出播放清單
	FindByOwner(ctx context.Context, ownerID string, page domain.PageQuery) ([]domain.Playlist, int64, error)
	// UpdateOwned 只有擁有者的更新會命中
	UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerID string, upd domain.PlaylistUpdate) (*domain.Playlist, error)
	// DeleteOwned 只有擁有者的刪除會命中
	DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) error
	// AddVideoOwned 加入影片，影片已在清單時同樣回 ErrNotFound，由呼叫端分辨
	AddVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error)
	// RemoveVideoOwned 自清單移除影片
	RemoveVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error)
	// PullVideoFromAll 影片刪除時自所有清單移除
	PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) error
}

type playlistRepository struct {
	coll *mongo.Collection
}

// NewMongoPlaylistRepository create a PlaylistRepository
func NewMongoPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistRepository{
		coll: db.Collection("playlists"),
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	if playlist.ID.IsZero() {
		playlist.ID = primitive.NewObjectID()
	}
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []primitive.ObjectID{}
	}
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, playlist)
	return err
}

func (r *playlistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) FindByOwner(ctx context.Context, ownerID string, page domain.PageQuery) ([]domain.Playlist, int64, error) {
	filter := bson.M{"owner_id": ownerID}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var playlists []domain.Playlist
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

func (r *playlistRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerID string, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	filter := bson.M{"_id": id, "owner_id": ownerID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist domain.Playlist
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&playlist)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) error {
	filter := bson.M{"_id": id, "owner_id": ownerID}
	err := r.coll.FindOneAndDelete(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (r *playlistRepository) AddVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	// 條件含 video_ids $ne，已存在時不會命中，交由呼叫端分辨 404 與重複
	filter := bson.M{
		"_id":       id,
		"owner_id":  ownerID,
		"video_ids": bson.M{"$ne": videoID},
	}
	update := bson.M{
		"$push": bson.M{"video_ids": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist domain.Playlist
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) RemoveVideoOwned(ctx context.Context, id primitive.ObjectID, ownerID string, videoID primitive.ObjectID) (*domain.Playlist, error) {
	filter := bson.M{"_id": id, "owner_id": ownerID}
	update := bson.M{
		"$pull": bson.M{"video_ids": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist domain.Playlist
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"video_ids": videoID},
		bson.M{"$pull": bson.M{"video_ids": videoID}},
	)
	return err
}
