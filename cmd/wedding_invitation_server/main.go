package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/config"
	dao "wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/handler"
	"wedding_invitation_server/internal/https_server"
	"wedding_invitation_server/internal/infrastructure/logger"
	"wedding_invitation_server/internal/infrastructure/sms"
	"wedding_invitation_server/internal/service"
	"wedding_invitation_server/internal/service/notify"
	"wedding_invitation_server/pkg/util/jwt"
)

func main() {
	// 1. 설정 로드
	conf := config.GetConfig()

	// 2. 로거 초기화
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("로거 초기화 완료")

	// 3. 데이터베이스 초기화 (마이그레이션 + 최초 관리자 seed 포함)
	repos := dao.Init()
	zap.L().Info("데이터베이스 초기화 완료")

	// 4. Redis 초기화
	myredis.Init()
	cache := myredis.GetCacheService()
	zap.L().Info("Redis 초기화 완료")

	// 5. JWT 초기화
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 초기화 완료")

	// 6. validator 번역기 초기화
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("validator 번역기 초기화 실패", zap.Error(err))
	}

	// 7. SMS 서비스 초기화 (설정이 없으면 mock)
	smsSvc, err := sms.Init()
	if err != nil {
		zap.L().Fatal("SMS 서비스 초기화 실패", zap.Error(err))
	}
	zap.L().Info("SMS 서비스 초기화 완료")

	// 8. 대시보드 알림 브로커 초기화
	// channel: 단일 인스턴스, kafka: 다중 인스턴스
	gateway := notify.NewWsGateway()
	var broker notify.Broker
	if conf.NotifyConfig.Mode == "kafka" {
		broker = notify.NewKafkaBroker(conf.NotifyConfig, gateway)
	} else {
		broker = notify.NewChannelBroker(gateway)
	}
	go broker.Start()
	zap.L().Info("알림 브로커 초기화 완료", zap.String("mode", conf.NotifyConfig.Mode))

	// 9. Service / Handler 조립
	services := service.NewServices(repos, cache, broker, smsSvc, []byte(conf.SecurityConfig.PhoneCipherKey))
	handlers := handler.NewHandlers(services)

	// 10. HTTP 서버 시작
	engine := https_server.Init(handlers, gateway, myredis.Client())
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("서버 시작", zap.String("host", conf.MainConfig.Host), zap.Int("port", conf.MainConfig.Port))

	// 종료 시그널 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("서버 종료 중...")
	broker.Close()
	zap.L().Info("서버 종료 완료")
}
