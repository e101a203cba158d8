// Package handler HTTP 요청 처리기
// 본 파일은 예식 정보/갤러리 관리 요청을 처리한다
package handler

import (
	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/service"
)

// WeddingHandler 예식 정보/갤러리 요청 처리기
type WeddingHandler struct {
	weddingSvc service.WeddingService
}

// NewWeddingHandler 예식 정보 처리기 생성
func NewWeddingHandler(weddingSvc service.WeddingService) *WeddingHandler {
	return &WeddingHandler{weddingSvc: weddingSvc}
}

// GetWeddingInfo 예식 정보 조회 (관리자)
// GET /wedding-info
// 응답: respond.WeddingInfoRespond
func (h *WeddingHandler) GetWeddingInfo(c *gin.Context) {
	data, err := h.weddingSvc.GetWeddingInfo()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateWeddingInfo 예식 정보 부분 수정 (관리자)
// PUT /wedding-info
// 요청: request.UpdateWeddingInfoRequest (nil 필드는 무시)
// 응답: respond.WeddingInfoRespond
func (h *WeddingHandler) UpdateWeddingInfo(c *gin.Context) {
	var req request.UpdateWeddingInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.weddingSvc.UpdateWeddingInfo(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetGallery 갤러리 목록 (공개)
// GET /gallery
// 응답: []respond.GalleryImageRespond
func (h *WeddingHandler) GetGallery(c *gin.Context) {
	data, err := h.weddingSvc.GetGallery()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateGalleryImage 사진 등록 (관리자)
// POST /gallery
// 요청: request.CreateGalleryImageRequest
// 응답: respond.GalleryImageRespond
func (h *WeddingHandler) CreateGalleryImage(c *gin.Context) {
	var req request.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.weddingSvc.CreateGalleryImage(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteGalleryImage 사진 삭제 (관리자)
// DELETE /gallery/:id
func (h *WeddingHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.weddingSvc.DeleteGalleryImage(id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
