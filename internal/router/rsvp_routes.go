package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/infrastructure/middleware"
)

// RegisterRsvpRoutes RSVP 라우트 등록
// 제출은 공개 경로지만 IP 당 분당 제출 횟수를 제한한다
func (rt *Router) RegisterRsvpRoutes(r *gin.Engine) {
	// 공개: 하객 응답 제출
	r.POST("/rsvp/:code",
		middleware.RateLimiter(rt.rdb, 5, time.Minute),
		rt.handlers.Rsvp.SubmitRsvp,
	)

	// 관리자 전용
	rsvpGroup := r.Group("/rsvp")
	rsvpGroup.Use(middleware.JWTAuth())
	{
		rsvpGroup.GET("/list", rt.handlers.Rsvp.GetAllRsvps)
		rsvpGroup.PUT("/:id", rt.handlers.Rsvp.UpdateRsvp)
		rsvpGroup.DELETE("/:id", rt.handlers.Rsvp.DeleteRsvp)
	}
}
