package router

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/infrastructure/middleware"
)

// RegisterGroupRoutes 초대 그룹 관리 라우트 등록 (관리자 전용)
func (rt *Router) RegisterGroupRoutes(r *gin.Engine) {
	groupGroup := r.Group("/groups")
	groupGroup.Use(middleware.JWTAuth())
	{
		groupGroup.POST("", rt.handlers.Group.CreateGroup)
		groupGroup.GET("", rt.handlers.Group.GetAllGroups)
		groupGroup.PUT("/:id", rt.handlers.Group.UpdateGroup)
		groupGroup.DELETE("/:id", rt.handlers.Group.DeleteGroup)
	}
}
