package app

import (
	"context"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	errprocess "videotube_service/pkg/err"
)

// SubscriptionUseCase 這裡封裝了對外提供的應用服務
type SubscriptionUseCase interface {
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (domain.ToggleState, error)
	ListSubscribers(ctx context.Context, channelID string, page domain.PageQuery) ([]domain.Subscription, domain.PageInfo, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string, page domain.PageQuery) ([]domain.Subscription, domain.PageInfo, error)
}

type subscriptionUseCase struct {
	subscriptionRepo repository.SubscriptionRepository
	memberRepo       repository.MemberRepository
	maxPageSize      int
}

// NewSubscriptionUseCase 建立一個新的 SubscriptionUseCase
func NewSubscriptionUseCase(subscriptionRepo repository.SubscriptionRepository,
	memberRepo repository.MemberRepository,
	maxPageSize int,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		memberRepo:       memberRepo,
		maxPageSize:      maxPageSize,
	}
}

// ToggleSubscription 訂閱或取消訂閱頻道，不能訂閱自己
func (s *subscriptionUseCase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (domain.ToggleState, error) {
	if subscriberID == channelID {
		return "", errprocess.BadRequest("cannot subscribe to yourself")
	}

	if _, err := s.memberRepo.FindMember(ctx, &domain.MemberQuery{MemberID: &channelID}); err != nil {
		if err == repository.ErrNotFound {
			return "", errprocess.NotFound("channel not found")
		}
		return "", err
	}

	return s.subscriptionRepo.Toggle(ctx, subscriberID, channelID)
}

// ListSubscribers 頻道的訂閱者清單
func (s *subscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page domain.PageQuery) ([]domain.Subscription, domain.PageInfo, error) {
	page = page.Normalize(s.maxPageSize)
	subs, total, err := s.subscriptionRepo.FindSubscribers(ctx, channelID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return subs, domain.NewPageInfo(page, total), nil
}

// ListSubscribedChannels 使用者訂閱的頻道清單
func (s *subscriptionUseCase) ListSubscribedChannels(ctx context.Context, subscriberID string, page domain.PageQuery) ([]domain.Subscription, domain.PageInfo, error) {
	page = page.Normalize(s.maxPageSize)
	subs, total, err := s.subscriptionRepo.FindSubscribedChannels(ctx, subscriberID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return subs, domain.NewPageInfo(page, total), nil
}
