package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ministry-portal-backend/internal/api/middleware"
	"ministry-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newRouter(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := recorder.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Equal(t, id, recorder.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		recorder := serve(router, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", recorder.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(middleware.RequestID(), middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestLoggerPassesThrough(t *testing.T) {
	router := newRouter(middleware.Logger())
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://portal.example.com/", "http://localhost:3000"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/data", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "https://portal.example.com")

		recorder := serve(router, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "https://portal.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		recorder := serve(router, req)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/data", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		recorder := serve(router, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("wildcard", func(t *testing.T) {
		wide := newRouter(middleware.CORS(&config.Config{AllowedOrigins: []string{"*"}}))
		wide.GET("/data", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")

		recorder := serve(wide, req)

		assert.Equal(t, "https://anywhere.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
