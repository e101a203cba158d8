// Package handler HTTP 요청 처리기
// 본 파일은 관리자 계정/인증 요청을 처리한다
package handler

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/service"
)

// AdminHandler 관리자 계정/인증 요청 처리기
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler 관리자 처리기 생성
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Login 관리자 로그인
// POST /admin/login
// 요청: request.AdminLoginRequest
// 응답: respond.LoginRespond (토큰 쌍 + 계정 정보)
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshToken Access Token 갱신
// POST /auth/refresh
// 요청: request.RefreshTokenRequest
// 응답: respond.RefreshTokenRespond
func (h *AdminHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateAdmin 관리자 계정 생성 (인증 필요)
// POST /admin/create
// 요청: request.CreateAdminRequest
// 응답: respond.AdminRespond
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req request.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.CreateAdmin(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAdminList 전체 관리자 목록 (인증 필요)
// GET /admin/list
// 응답: []respond.AdminRespond
func (h *AdminHandler) GetAdminList(c *gin.Context) {
	data, err := h.adminSvc.GetAdminList()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
