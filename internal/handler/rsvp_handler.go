// Package handler HTTP 요청 처리기
// 본 파일은 RSVP 응답 제출/관리 요청을 처리한다
package handler

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/service"
	"wedding_invitation_server/pkg/errorx"
)

// RsvpHandler RSVP 요청 처리기
type RsvpHandler struct {
	rsvpSvc service.RsvpService
}

// NewRsvpHandler RSVP 처리기 생성
func NewRsvpHandler(rsvpSvc service.RsvpService) *RsvpHandler {
	return &RsvpHandler{rsvpSvc: rsvpSvc}
}

// SubmitRsvp 하객 응답 제출 (공개, rate limit 적용)
// POST /rsvp/:code
// 요청: request.RsvpRequest
// 응답: respond.RsvpRespond
func (h *RsvpHandler) SubmitRsvp(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	var req request.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.rsvpSvc.SubmitRsvp(code, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAllRsvps 전체 응답 목록 (관리자)
// GET /rsvp/list
// 응답: []respond.RsvpRespond
func (h *RsvpHandler) GetAllRsvps(c *gin.Context) {
	data, err := h.rsvpSvc.GetAllRsvps()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateRsvp 응답 수정 (관리자)
// PUT /rsvp/:id
// 요청: request.UpdateRsvpRequest
// 응답: respond.RsvpRespond
func (h *RsvpHandler) UpdateRsvp(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req request.UpdateRsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.rsvpSvc.UpdateRsvp(id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteRsvp 응답 삭제 (관리자)
// DELETE /rsvp/:id
func (h *RsvpHandler) DeleteRsvp(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.rsvpSvc.DeleteRsvp(id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
