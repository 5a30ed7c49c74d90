package unit

import (
	"testing"
	"time"

	"videotube_service/internal/domain"
	"videotube_service/pkg/encrypt"

	"github.com/stretchr/testify/assert"
)

func TestMemberPasswordMatch(t *testing.T) {
	hashed, err := encrypt.HashPassword("Pass1234")
	assert.NoError(t, err)

	member := domain.Member{
		MemberID: "m-1",
		Email:    "user@example.com",
		Password: hashed,
	}

	assert.True(t, member.IsPasswordMatch("Pass1234") == nil, "should match correct password")
	assert.False(t, member.IsPasswordMatch("wrongpass") == nil, "should not match incorrect password")
}

func TestPasswordStrength(t *testing.T) {
	assert.NoError(t, encrypt.ValidatePasswordStrength("Pass1234"))
	assert.Error(t, encrypt.ValidatePasswordStrength("short1A"), "too short")
	assert.Error(t, encrypt.ValidatePasswordStrength("alllowercase1"), "no uppercase")
	assert.Error(t, encrypt.ValidatePasswordStrength("NoDigitsHere"), "no digit")
}

func TestMemberSessionExpiration(t *testing.T) {
	session := domain.MemberSession{
		Token:        "abcd1234",
		MemberID:     "m-1",
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
		ExpiredAt:    time.Now().Add(-1 * time.Minute), // 已經過期
	}

	assert.True(t, session.IsExpired(), "session should be expired")
}
