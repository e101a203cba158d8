package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wedding_invitation_server/pkg/errorx"
)

// RateLimiter IP 단위의 고정 윈도우 제한 미들웨어
// 공개된 RSVP 제출 엔드포인트의 반복 제출을 막는 용도로 사용한다
// limit: 윈도우당 허용 횟수, window: 윈도우 길이
func RateLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit_" + c.FullPath() + "_" + c.ClientIP()
		ctx := context.Background()

		count, err := rdb.Get(ctx, key).Int()
		if errors.Is(err, redis.Nil) {
			rdb.Set(ctx, key, 1, window)
			count = 1
		} else if err != nil {
			// Redis 장애 시에는 제한 없이 통과시킨다
			c.Next()
			return
		} else {
			count = int(rdb.Incr(ctx, key).Val())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code": errorx.CodeServerBusy,
				"msg":  "요청이 너무 잦습니다. 잠시 후 다시 시도해주세요",
			})
			return
		}

		c.Next()
	}
}
