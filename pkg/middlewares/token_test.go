package middlewares

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"videotube_service/pkg/logger"
	"videotube_service/pkg/response"
	t_token "videotube_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// 假 session store，memberID 有登記才算在線
type fakeSessionChecker struct {
	ttl map[string]int
}

func (f *fakeSessionChecker) GetTTL(_ context.Context, memberID string) (int, error) {
	return f.ttl[memberID], nil
}

func newAuthTestApp(handler fiber.Handler, mw fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Get("/whoami", mw, handler)
	return app
}

func echoCaller(c *fiber.Ctx) error {
	return response.OK(c, fiber.Map{"callerId": CallerID(c)})
}

func TestJWTMiddleware(t *testing.T) {
	logger.SetNewNop()

	jwt, err := t_token.GenerateJWT("member-1", "member", "test")
	assert.NoError(t, err)

	t.Run("缺少 token 回 401", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{"member-1": 300}}
		app := newAuthTestApp(echoCaller, JWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("session 有效時放行", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{"member-1": 300}}
		app := newAuthTestApp(echoCaller, JWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwt)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "member-1")
	})

	// 登出清掉 session 後，同一把 JWT 不能再用
	t.Run("session 不存在時視為過期", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{}}
		app := newAuthTestApp(echoCaller, JWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwt)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "session expired")
	})

	t.Run("token 無效回 401", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{"member-1": 300}}
		app := newAuthTestApp(echoCaller, JWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalJWTMiddleware(t *testing.T) {
	logger.SetNewNop()

	jwt, err := t_token.GenerateJWT("member-1", "member", "test")
	assert.NoError(t, err)

	t.Run("沒帶 token 視為匿名放行", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{}}
		app := newAuthTestApp(echoCaller, OptionalJWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"callerId":""`)
	})

	t.Run("有帶 token 時填入 caller id", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{"member-1": 300}}
		app := newAuthTestApp(echoCaller, OptionalJWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwt)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "member-1")
	})

	t.Run("帶了無效 token 仍回 401", func(t *testing.T) {
		sessions := &fakeSessionChecker{ttl: map[string]int{}}
		app := newAuthTestApp(echoCaller, OptionalJWTMiddleware(sessions))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
