package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"recipe-ideas/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 閒置桶的回收門檻，超過才掃描，避免每次請求都走整個 map
const maxIdleBuckets = 1024

// RateLimiter 按客戶端 IP 分桶的令牌桶限流器
// 生成請求成本高，單一全局桶會讓一個客戶端吃光所有配額
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity float64
	rate     float64
	window   time.Duration
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter 創建限流器，每個客戶端在 window 內最多 requests 次
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		capacity: float64(requests),
		rate:     float64(requests) / window.Seconds(),
		window:   window,
	}
}

// Allow 檢查是否允許該客戶端的請求
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[clientID]
	if !ok {
		if len(rl.buckets) >= maxIdleBuckets {
			rl.pruneLocked(now)
		}
		b = &bucket{tokens: rl.capacity, lastSeen: now}
		rl.buckets[clientID] = b
	}

	// 令牌用浮點累積，短間隔的補充才不會被整數截斷吃掉
	b.tokens += now.Sub(b.lastSeen).Seconds() * rl.rate
	if b.tokens > rl.capacity {
		b.tokens = rl.capacity
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// pruneLocked 回收閒置超過一個視窗的桶，呼叫端須持有鎖
func (rl *RateLimiter) pruneLocked(now time.Time) {
	for id, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.window {
			delete(rl.buckets, id)
		}
	}
}

// RateLimit 限流中間件
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			common.LogWarn("請求頻率超限",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"code":        common.ErrCodeTooManyRequests,
				"retry_after": window.Seconds(),
			})
			return
		}

		c.Next()
	}
}
