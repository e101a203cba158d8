package router

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/infrastructure/middleware"
)

// RegisterAdminRoutes 관리자 계정/인증 라우트 등록
func (rt *Router) RegisterAdminRoutes(r *gin.Engine) {
	// 공개: 로그인, 토큰 갱신
	r.POST("/admin/login", rt.handlers.Admin.Login)
	r.POST("/auth/refresh", rt.handlers.Admin.RefreshToken)

	// 인증 필요
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	{
		adminGroup.GET("/list", rt.handlers.Admin.GetAdminList)
		adminGroup.POST("/create", rt.handlers.Admin.CreateAdmin)
	}
}
