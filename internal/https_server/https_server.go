// Package https_server Gin 엔진 초기화와 미들웨어/라우트 구성
package https_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wedding_invitation_server/internal/handler"
	"wedding_invitation_server/internal/infrastructure/logger"
	"wedding_invitation_server/internal/router"
	"wedding_invitation_server/internal/service/notify"
)

// Init Gin 엔진 생성 및 구성
// 미들웨어 등록 순서: 로깅 -> panic 복구 -> CORS -> 라우트
func Init(handlers *handler.Handlers, gateway *notify.WsGateway, rdb *redis.Client) *gin.Engine {
	// gin.Default() 대신 빈 엔진으로 미들웨어를 직접 구성한다
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 운영에서는 초대장 도메인으로 좁힌다
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 리다이렉트가 필요하면 주석 해제 (Nginx 가 SSL 을 처리하면 불필요)
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	rt := router.NewRouter(handlers, gateway, rdb)
	rt.RegisterRoutes(engine)

	return engine
}
