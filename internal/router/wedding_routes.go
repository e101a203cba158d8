package router

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/infrastructure/middleware"
)

// RegisterWeddingRoutes 예식 정보/갤러리 라우트 등록
func (rt *Router) RegisterWeddingRoutes(r *gin.Engine) {
	// 공개: 갤러리 조회 (초대 페이지에서 사용)
	r.GET("/gallery", rt.handlers.Wedding.GetGallery)

	// 관리자 전용
	weddingGroup := r.Group("/wedding-info")
	weddingGroup.Use(middleware.JWTAuth())
	{
		weddingGroup.GET("", rt.handlers.Wedding.GetWeddingInfo)
		weddingGroup.PUT("", rt.handlers.Wedding.UpdateWeddingInfo)
	}

	galleryGroup := r.Group("/gallery")
	galleryGroup.Use(middleware.JWTAuth())
	{
		galleryGroup.POST("", rt.handlers.Wedding.CreateGalleryImage)
		galleryGroup.DELETE("/:id", rt.handlers.Wedding.DeleteGalleryImage)
	}
}
