package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"videotube_service/internal/domain"
	"videotube_service/pkg/encrypt"
	errprocess "videotube_service/pkg/err"
	"videotube_service/pkg/logger"
	token "videotube_service/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMemberUseCase_Register(t *testing.T) {
	ctx := context.Background()
	email := "test@example.com"
	password := "Securepassword111"

	logger.SetNewNop()

	// **情境 1: 註冊成功**
	t.Run("成功註冊", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		mockRepo.On("FindMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()
		mockRepo.On("CreateMember", ctx, mock.Anything).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		member, err := uc.Register(ctx, email, password)

		assert.NoError(t, err)
		assert.Equal(t, email, member.Email)
		assert.NotEmpty(t, member.MemberID)
		// 密碼必須存 hash
		assert.NotEqual(t, password, member.Password)
		assert.False(t, member.CreatedAt.IsZero(), "created_at should be stamped on register")
		mockRepo.AssertExpectations(t)
	})

	// **情境 2: Email 已存在**
	t.Run("Email 已存在", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		existing := &domain.Member{
			MemberID: "AAA",
			Email:    email,
			Status:   domain.MemberStatusOffLine,
		}
		mockRepo.On("FindMember", ctx, &domain.MemberQuery{Email: &email}).Return(existing, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		_, err := uc.Register(ctx, email, password)

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "email already exists", apiErr.Message)
		mockRepo.AssertExpectations(t)
	})

	// **情境 3: 密碼強度不足**
	t.Run("密碼強度不足", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		_, err := uc.Register(ctx, email, "weak")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		mockRepo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_Login(t *testing.T) {
	ctx := context.Background()
	email := "test@example.com"
	password := "Securepassword111"
	hashed, _ := encrypt.HashPassword(password)

	logger.SetNewNop()

	origGenerate := token.GenerateJWTFunc
	token.GenerateJWTFunc = func(memberID, role, issuer string) (string, error) {
		return "token123", nil
	}
	defer func() { token.GenerateJWTFunc = origGenerate }()

	// **情境 1: 登入成功**
	t.Run("成功登入", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		member := &domain.Member{
			MemberID: "AAA",
			Email:    email,
			Password: hashed,
			Status:   domain.MemberStatusOffLine,
		}
		mockRepo.On("FindMember", ctx, &domain.MemberQuery{Email: &email}).Return(member, nil).Once()
		mockRedis.On("Set", mock.Anything, "AAA", mock.Anything, time.Hour).Return(nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, "AAA", domain.MemberStatusOnLine).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		jwt, err := uc.Login(ctx, email, password)

		assert.NoError(t, err)
		assert.Equal(t, "token123", jwt)
		mockRepo.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	// **情境 2: 密碼錯誤**
	t.Run("密碼錯誤", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		member := &domain.Member{
			MemberID: "AAA",
			Email:    email,
			Password: hashed,
		}
		mockRepo.On("FindMember", ctx, &domain.MemberQuery{Email: &email}).Return(member, nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		_, err := uc.Login(ctx, email, "Wrongpassword111")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	// **情境 3: 查無此 email**
	t.Run("查無此 email", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		mockRepo.On("FindMember", ctx, &domain.MemberQuery{Email: &email}).Return(nil, errors.New("not found")).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		_, err := uc.Login(ctx, email, password)

		// 不洩漏帳號是否存在，訊息與密碼錯誤相同
		assert.Error(t, err)
		assert.Equal(t, "invalid email or password", err.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberUseCase_Logout(t *testing.T) {
	ctx := context.Background()

	logger.SetNewNop()

	origParse := token.ParseJWTFunc
	token.ParseJWTFunc = func(t string) (*token.Claims, error) {
		if t == "valid" {
			return &token.Claims{MemberID: "AAA"}, nil
		}
		return nil, errors.New("invalid token")
	}
	defer func() { token.ParseJWTFunc = origParse }()

	// **情境 1: 登出成功**
	t.Run("成功登出", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)
		mockRedis.On("Del", mock.Anything, "AAA").Return(nil).Once()
		mockRepo.On("UpdateMemberStatus", ctx, "AAA", domain.MemberStatusOffLine).Return(nil).Once()

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Logout(ctx, "valid")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	// **情境 2: token 無效**
	t.Run("token 無效", func(t *testing.T) {
		mockRepo := new(MockMemberRepo)
		mockRedis := new(MockRedisRepo)

		uc := NewMemberUseCase(mockRepo, time.Hour, mockRedis)
		err := uc.Logout(ctx, "broken")

		assert.Error(t, err)
		apiErr, ok := errprocess.AsAPIError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}
