package middlewares

import (
	"context"
	"strings"

	errprocess "videotube_service/pkg/err"
	t_token "videotube_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenMemberID get member form token, set c.locals name
	TokenMemberID = "MemberID"
	//TokenRole get role form token, set c.locals name
	TokenRole = "role"
	//TokenRaw raw token string, set c.locals name
	TokenRaw = "rawToken"
)

// SessionChecker 查 session 剩餘秒數，登出後 key 不存在回 0
type SessionChecker interface {
	GetTTL(ctx context.Context, memberID string) (int, error)
}

// JWTMiddleware validates JWT in the Authorization header,
// 並確認 redis session 仍存在（登出即失效）
func JWTMiddleware(sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractToken(c)

		// 如果仍然沒有 token，交給 error boundary 回統一格式
		if tokenStr == "" {
			return errprocess.New(fiber.StatusUnauthorized, "missing token")
		}

		if err := authenticate(c, tokenStr, sessions); err != nil {
			return err
		}
		return c.Next()
	}
}

// OptionalJWTMiddleware 公開路由用，有帶 token 就驗證並填 locals，沒帶直接放行
func OptionalJWTMiddleware(sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			return c.Next()
		}

		if err := authenticate(c, tokenStr, sessions); err != nil {
			return err
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	// Get token from Authorization header
	tokenStr := ""
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		tokenStr = auth[7:]
	}

	// 如果 header 中沒有 token，則嘗試從查詢參數或 Cookie 中獲取
	if tokenStr == "" {
		tokenStr = c.Query(QueryToken)
	}
	if tokenStr == "" {
		tokenStr = c.Cookies(CookieToken)
	}
	return tokenStr
}

func authenticate(c *fiber.Ctx, tokenStr string, sessions SessionChecker) error {
	// Parse and validate token
	token, err := jwt.ParseWithClaims(tokenStr, &t_token.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
		}
		return t_token.JWTSecret, nil
	})

	if err != nil {
		return errprocess.New(fiber.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(*t_token.Claims)
	if !ok || !token.Valid {
		return errprocess.New(fiber.StatusUnauthorized, "invalid token claims")
	}

	// JWT 本身有效還不夠，session 被登出清掉後即視為過期
	if sessions != nil {
		ttl, err := sessions.GetTTL(c.Context(), claims.MemberID)
		if err != nil {
			return errprocess.New(fiber.StatusUnauthorized, "session lookup failed")
		}
		if ttl <= 0 {
			return errprocess.New(fiber.StatusUnauthorized, "session expired")
		}
	}

	// Extract claims and pass them to the context
	c.Locals(TokenMemberID, claims.MemberID)
	c.Locals(TokenRole, claims.Role)
	c.Locals(TokenRaw, tokenStr)
	return nil
}

// CallerID get the authenticated member id from locals
func CallerID(c *fiber.Ctx) string {
	if id, ok := c.Locals(TokenMemberID).(string); ok {
		return id
	}
	return ""
}
