package app

import (
	"context"
	"fmt"
	"time"

	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	"videotube_service/pkg/database"
	"videotube_service/pkg/encrypt"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"
	token "videotube_service/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemberUseCase 這裡封裝了對外提供的應用服務
type MemberUseCase interface {
	Register(ctx context.Context, email, password string) (*domain.Member, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error)
}

type memberUseCase struct {
	memberRepo repository.MemberRepository
	sessionTTL time.Duration
	redisRepo  database.RedisRepository[domain.MemberSession]
}

// NewMemberUseCase 建立一個新的 MemberUseCase
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.MemberSession],
) MemberUseCase {
	return &memberUseCase{
		memberRepo: memberRepo,
		sessionTTL: sessionTTL,
		redisRepo:  redisRepo,
	}
}

// Register
func (m *memberUseCase) Register(ctx context.Context, email, password string) (*domain.Member, error) {
	if err := encrypt.ValidatePasswordStrength(password); err != nil {
		return nil, errprocess.BadRequest(err.Error())
	}

	// 檢查 email 是否已存在
	if _, err := m.memberRepo.FindMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return nil, errprocess.BadRequest("email already exists")
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		logger.Log.Error("hash password err", zap.String("err", err.Error()))
		return nil, err
	}

	member := domain.Member{
		MemberID:  uuid.New().String(),
		Email:     email,
		Password:  pw,
		Status:    domain.MemberStatusOffLine,
		CreatedAt: time.Now(),
	}

	logger.Log.Info(fmt.Sprintf("usecase Register : %s", member.Email))

	if err := m.memberRepo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Login
func (m *memberUseCase) Login(ctx context.Context, email, password string) (string, error) {
	member, err := m.memberRepo.FindMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		logger.Log.Debug("login email not found", zap.String("email", email))
		return "", errprocess.BadRequest("invalid email or password")
	}

	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Debug("login password mismatch", zap.String("email", email))
		return "", errprocess.BadRequest("invalid email or password")
	}

	member.Status = domain.MemberStatusOnLine

	jwt, err := token.GenerateJWTWrapper(member.MemberID, string(token.RoleMember))
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := domain.MemberSession{
		Token:        jwt,
		MemberID:     member.MemberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}
	m.redisRepo.Set(context.Background(), member.MemberID, session, m.sessionTTL)

	if err := m.memberRepo.UpdateMemberStatus(ctx, member.MemberID, domain.MemberStatusOnLine); err != nil {
		return "", err
	}
	return jwt, nil
}

// Logout
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return errprocess.New(401, "invalid token")
	}
	logger.Log.Debug("logout", zap.String("member_id", tokenInfo.MemberID))

	m.redisRepo.Del(context.Background(), tokenInfo.MemberID)

	if err := m.memberRepo.UpdateMemberStatus(ctx, tokenInfo.MemberID, domain.MemberStatusOffLine); err != nil {
		return err
	}
	return nil
}

// FindMember 用 member_id 或 email 來尋找使用者
func (m *memberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	member, err := m.memberRepo.FindMember(ctx, param)
	if err == repository.ErrNotFound {
		return nil, errprocess.NotFound("member not found")
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}
