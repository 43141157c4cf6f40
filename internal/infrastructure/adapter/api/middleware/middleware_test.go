package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterStore_AllowAndEvict(t *testing.T) {
	store := NewLimiterStore(0.001, 1, time.Minute)

	assert.True(t, store.Allow("a"))
	assert.False(t, store.Allow("a"))
	assert.True(t, store.Allow("b"))
	assert.Equal(t, 2, store.Len())

	store.evictBefore(time.Now().Add(time.Second))
	assert.Zero(t, store.Len())
	assert.True(t, store.Allow("a"))
}

type recordedRequest struct {
	method, route, status string
}

type recorder struct {
	requests []recordedRequest
}

func (r *recorder) HTTPRequest(method, route, status string, _ float64) {
	r.requests = append(r.requests, recordedRequest{method, route, status})
}

func TestRequestIDAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &recorder{}
	router := gin.New()
	router.Use(RequestID(), Metrics(rec))

	var seen string
	router.GET("/items/:id", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	require.Len(t, rec.requests, 1)
	assert.Equal(t, recordedRequest{"GET", "/items/:id", "204"}, rec.requests[0])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, "unmatched", rec.requests[1].route)
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(logger.NewNoopLogger()))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminAuth_EmptySecretDisablesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AdminAuth("", logger.NewNoopLogger()), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(AdminSecretHeader, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
