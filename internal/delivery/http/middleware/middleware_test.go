package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOriginMatcher(t *testing.T) {
	match := OriginMatcher([]string{"http://localhost:3000", "https://*.netlify.app/", ""})

	cases := map[string]bool{
		"http://localhost:3000":             true,
		"HTTP://LOCALHOST:3000":             true,
		"https://portfolio.netlify.app":     true,
		"https://deploy-1.site.netlify.app": true,
		"https://netlify.app":               false,
		"http://portfolio.netlify.app":      false,
		"https://evil.com/.netlify.app":     false,
		"http://localhost:3001":             false,
	}
	for origin, want := range cases {
		assert.Equal(t, want, match(origin), origin)
	}

	assert.True(t, OriginMatcher([]string{"*"})("https://anything.example"))
}

func TestNormalizeError(t *testing.T) {
	status, msg, data := normalizeError(NewAppError(http.StatusUnprocessableEntity, "", map[string]string{"email": "email"}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "unprocessable entity", msg)
	assert.Equal(t, map[string]string{"email": "email"}, data)

	status, msg, data = normalizeError(NewAppError(http.StatusBadGateway, "upstream said no", "detail", errors.New("x")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", msg)
	assert.Nil(t, data)

	status, _, _ = normalizeError(fiber.ErrMethodNotAllowed)
	assert.Equal(t, http.StatusMethodNotAllowed, status)

	status, _, _ = normalizeError(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestErrorMiddleware_RecoversPanicAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(zap.New(core)).Middleware())
	app.Use(NewErrorMiddleware(zap.New(core)).Middleware())
	app.Get("/boom", func(c fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"status":500,"message":"internal server error","data":null}`, string(body))
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	access := logs.FilterMessage("http access").All()
	require.Len(t, access, 1)
	assert.Equal(t, int64(500), access[0].ContextMap()["status"])
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}

func TestAccessLog_KeepsIncomingRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}
