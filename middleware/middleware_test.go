package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func perform(r http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_RejectsPastBurst(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies([]string{"192.0.2.1"}))
	r.Use(RateLimitMiddleware(NewMemoryLimiter(3, time.Hour)))
	r.GET("/api/x", okHandler)

	headers := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/api/x", nil, headers).Code)
	}

	w := perform(r, http.MethodGet, "/api/x", nil, headers)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, utils.CodeRateLimited, body.Error)

	other := perform(r, http.MethodGet, "/api/x", nil, map[string]string{"X-Forwarded-For": "10.0.0.2"})
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	l := NewMemoryLimiter(10, time.Minute)
	l.getLimiter("1.1.1.1")
	l.getLimiter("2.2.2.2")

	assert.Equal(t, 0, l.Cleanup(time.Hour))
	assert.Equal(t, 2, l.Cleanup(-time.Second))
	assert.Empty(t, l.visitors)
}

func TestRateLimitMiddleware_FailsOpenWhenRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	r := gin.New()
	r.Use(RateLimitMiddleware(&RedisLimiter{Client: client, Max: 1, Window: time.Minute}))
	r.GET("/api/x", okHandler)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/api/x", nil, nil).Code)
}

type settingsStub struct{ maintenance bool }

func (s settingsStub) Settings() models.SystemSettings {
	return models.SystemSettings{MaintenanceMode: s.maintenance}
}

func TestMaintenanceMiddleware(t *testing.T) {
	build := func(on bool) *gin.Engine {
		r := gin.New()
		g := r.Group("/api/content", MaintenanceMiddleware(settingsStub{maintenance: on}))
		g.GET("/duas", okHandler)
		g.POST("/duas", okHandler)
		return r
	}

	on := build(true)
	assert.Equal(t, http.StatusOK, perform(on, http.MethodGet, "/api/content/duas", nil, nil).Code)
	w := perform(on, http.MethodPost, "/api/content/duas", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), utils.CodeMaintenance)

	off := build(false)
	assert.Equal(t, http.StatusOK, perform(off, http.MethodPost, "/api/content/duas", nil, nil).Code)
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/echo", strings.NewReader("short"), nil).Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, perform(r, http.MethodPost, "/echo", strings.NewReader("far too long a body"), nil).Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/x", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := perform(r, http.MethodGet, "/x", nil, nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = perform(r, http.MethodGet, "/x", nil, map[string]string{RequestIDHeader: "abc"})
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/x", okHandler)

	w := perform(r, http.MethodGet, "/x", nil, nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetricsMiddleware(t *testing.T) {
	m := utils.NewMetrics()
	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/api/content/duas/:id", okHandler)

	perform(r, http.MethodGet, "/api/content/duas/1", nil, nil)
	perform(r, http.MethodGet, "/api/content/duas/2", nil, nil)
	perform(r, http.MethodGet, "/nowhere", nil, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/content/duas/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPInFlight))
}

func TestClientIP_IgnoresForwardedHeadersFromUntrustedPeers(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	var got string
	r.GET("/x", func(c *gin.Context) { got = c.ClientIP() })

	perform(r, http.MethodGet, "/x", nil, map[string]string{"X-Forwarded-For": "1.2.3.4"})
	assert.Equal(t, "192.0.2.1", got)

	perform(r, http.MethodGet, "/x", nil, map[string]string{"X-Real-IP": "9.9.9.9"})
	assert.Equal(t, "192.0.2.1", got)
}

func TestClientIP_HonoursTrustedProxy(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies([]string{"192.0.2.1"}))
	var got string
	r.GET("/x", func(c *gin.Context) { got = c.ClientIP() })

	perform(r, http.MethodGet, "/x", nil, map[string]string{"X-Forwarded-For": "1.2.3.4"})
	assert.Equal(t, "1.2.3.4", got)

	perform(r, http.MethodGet, "/x", nil, nil)
	assert.Equal(t, "192.0.2.1", got)
}
