package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-ideas/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

type fakeStatsCache struct{}

func (fakeStatsCache) Stats() map[string]interface{} {
	return map[string]interface{}{"size": 2, "hits": int64(5)}
}

func newHealthRouter(withCache bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.App.Version = "test"

	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.Set("config", cfg)
		if withCache {
			c.Set("cache", fakeStatsCache{})
		}
		HealthCheck(c)
	})
	return router
}

func TestHealthCheckReportsCacheStats(t *testing.T) {
	router := newHealthRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.Cache == nil {
		t.Fatal("expected cache stats in response")
	}
	if resp.Cache["size"] != float64(2) {
		t.Errorf("cache size = %v, want 2", resp.Cache["size"])
	}
}

func TestHealthCheckWithoutCache(t *testing.T) {
	router := newHealthRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Cache != nil {
		t.Errorf("expected no cache stats, got %v", resp.Cache)
	}
}
