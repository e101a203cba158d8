package redis

import (
	"strconv"

	"github.com/redis/go-redis/v9"

	"wedding_invitation_server/internal/config"
)

// redisClient 전역 Redis 클라이언트 (패키지 내부)
var redisClient *redis.Client

// cacheService 전역 캐시 서비스 인스턴스
var cacheService AsyncCacheService

// Init Redis 연결 초기화
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,
		// 커넥션 풀
		PoolSize:     20,
		MinIdleConns: 5,
	})

	cacheService = NewRedisCache(redisClient, 5, 1000)
}

// GetCacheService 캐시 서비스 인스턴스 반환
// Service 레이어 의존성 주입에 사용한다
func GetCacheService() AsyncCacheService {
	return cacheService
}

// Client 원시 Redis 클라이언트 반환 (rate limiter 미들웨어용)
func Client() *redis.Client {
	return redisClient
}
