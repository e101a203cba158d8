// Package handler HTTP 요청 처리기
// 본 파일은 초대 그룹 관리 요청을 처리한다 (관리자 전용)
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/service"
	"wedding_invitation_server/pkg/errorx"
)

// GroupHandler 초대 그룹 요청 처리기
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 그룹 처리기 생성
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// parseIDParam :id 경로 파라미터 파싱
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		HandleError(c, errorx.ErrInvalidParam)
		return 0, false
	}
	return uint(id), true
}

// CreateGroup 그룹 생성
// POST /groups
// 요청: request.CreateGroupRequest
// 응답: respond.GroupRespond
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.CreateGroup(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAllGroups 전체 그룹 목록
// GET /groups
// 응답: []respond.GroupRespond (그룹별 RSVP 응답 수 포함)
func (h *GroupHandler) GetAllGroups(c *gin.Context) {
	data, err := h.groupSvc.GetAllGroups()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateGroup 그룹 부분 수정
// PUT /groups/:id
// 요청: request.UpdateGroupRequest (nil 필드는 무시)
// 응답: respond.GroupRespond
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.UpdateGroup(id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteGroup 그룹 삭제
// DELETE /groups/:id?force=true
// RSVP 응답이 있는 그룹은 force 없이 호출하면 CodeGroupHasResponses 로 거부된다
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	if err := h.groupSvc.DeleteGroup(id, force); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
