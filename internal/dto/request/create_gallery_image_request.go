package request

// CreateGalleryImageRequest 갤러리 사진 등록 요청
// 사용 위치:
//   - internal/handler/wedding_handler.go: CreateGalleryImage
//   - internal/service/wedding/service.go: CreateGalleryImage
type CreateGalleryImageRequest struct {
	Url       string `json:"url" binding:"required,max=255"`
	Caption   string `json:"caption" binding:"omitempty,max=100"`
	SortOrder int    `json:"sortOrder"`
}
