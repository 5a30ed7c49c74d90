package repository

import (
	"context"
	"errors"

	"videotube_service/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound 查無資料
var ErrNotFound = errors.New("document not found")

// MemberRepository definition get Member info
type MemberRepository interface {
	CreateMember(ctx context.Context, member *domain.Member) error
	FindMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error)
	UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus) error
}

type memberRepository struct {
	coll *mongo.Collection
}

// NewMongoMemberRepository create a MemberRepository
func NewMongoMemberRepository(db *mongo.Database) MemberRepository {
	return &memberRepository{
		coll: db.Collection("members"),
	}
}

func (r *memberRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	_, err := r.coll.InsertOne(ctx, member)
	return err
}

func (r *memberRepository) FindMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	filter := bson.M{}
	if memberQuery.Email != nil {
		filter["email"] = *memberQuery.Email
	}
	if memberQuery.MemberID != nil {
		filter["member_id"] = *memberQuery.MemberID
	}

	var member domain.Member
	err := r.coll.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &member, nil
}

func (r *memberRepository) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus) error {
	filter := bson.M{"member_id": memberID}
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}
