package router

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/infrastructure/middleware"
)

// RegisterWebSocketRoutes 대시보드 실시간 알림 WebSocket 라우트 등록
// 새 RSVP 제출 이벤트를 접속 중인 관리자에게 push 한다
func (rt *Router) RegisterWebSocketRoutes(r *gin.Engine) {
	wsGroup := r.Group("/ws")
	wsGroup.Use(middleware.JWTAuth())
	{
		wsGroup.GET("/admin", rt.gateway.Serve)
	}
}
