package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterInvitationRoutes 초대 페이지 라우트 등록
// 하객이 링크로 접근하는 유일한 공개 조회 경로다
func (rt *Router) RegisterInvitationRoutes(r *gin.Engine) {
	r.GET("/invitation/:code", rt.handlers.Invitation.GetInvitation)
}
