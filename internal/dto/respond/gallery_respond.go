package respond

// GalleryImageRespond 갤러리 사진
// 사용 위치:
//   - internal/service/wedding/service.go: GetGallery, CreateGalleryImage
type GalleryImageRespond struct {
	Id        uint   `json:"id"`
	Url       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"sortOrder"`
}
