// Package router HTTP 라우트 등록
// 본 파일은 라우트 등록 입구이며 모듈별 등록 함수를 모아 호출한다
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wedding_invitation_server/internal/handler"
	"wedding_invitation_server/internal/service/notify"
)

// Router 라우트 관리자
// Handler 집합과 라우트 전용 의존성(레이트리밋용 Redis, WebSocket 게이트웨이)을 보관한다
type Router struct {
	handlers *handler.Handlers
	gateway  *notify.WsGateway
	rdb      *redis.Client
}

// NewRouter 라우터 생성
func NewRouter(handlers *handler.Handlers, gateway *notify.WsGateway, rdb *redis.Client) *Router {
	return &Router{
		handlers: handlers,
		gateway:  gateway,
		rdb:      rdb,
	}
}

// RegisterRoutes 전체 라우트 등록, https_server.Init 에서 호출한다
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterInvitationRoutes(r) // 초대 페이지 (공개)
	rt.RegisterRsvpRoutes(r)       // RSVP 제출/관리
	rt.RegisterGroupRoutes(r)      // 그룹 관리
	rt.RegisterAdminRoutes(r)      // 관리자 계정/인증
	rt.RegisterWeddingRoutes(r)    // 예식 정보/갤러리
	rt.RegisterWebSocketRoutes(r)  // 대시보드 실시간 알림
}
