package middleware

import (
	"net/http"
	"sync"
	"time"

	"steak-log-server/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// AuthRateLimitMiddleware 登录/注册接口的每 IP 限流
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return rateLimitMiddleware(func(cfg config.Config) (float64, int) {
		return cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst
	})
}

// UploadRateLimitMiddleware 上传接口的每 IP 限流
func UploadRateLimitMiddleware() gin.HandlerFunc {
	return rateLimitMiddleware(func(cfg config.Config) (float64, int) {
		return cfg.RateLimit.UploadRPS, cfg.RateLimit.UploadBurst
	})
}

// rateLimitMiddleware 创建一个动态限流中间件
// 同一个返回值内共用一个 IPRateLimiter 实例
func rateLimitMiddleware(pick func(config.Config) (float64, int)) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get()

		// 检查总开关
		if !cfg.RateLimit.Enabled {
			c.Next()
			return
		}

		currentRPS, currentBurst := pick(cfg)

		// 初始化 Limiter
		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		// 获取 IP 对应的 limiter
		ip := c.ClientIP()
		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
