// Package handler HTTP 요청 처리기
// 본 파일은 하객용 초대 페이지 요청을 처리한다
package handler

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/service"
	"wedding_invitation_server/pkg/errorx"
)

// InvitationHandler 초대 페이지 요청 처리기
type InvitationHandler struct {
	invitationSvc service.InvitationService
}

// NewInvitationHandler 초대 페이지 처리기 생성
func NewInvitationHandler(invitationSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationSvc: invitationSvc}
}

// GetInvitation 초대 페이지 데이터 조회 (공개)
// GET /invitation/:code
// 응답: respond.InvitationRespond
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}

	data, err := h.invitationSvc.GetInvitation(code)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
