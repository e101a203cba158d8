package model

import (
	"gorm.io/gorm"
)

// GalleryImage 갤러리 사진
type GalleryImage struct {
	gorm.Model

	// Url 이미지 주소
	Url string `gorm:"column:url;type:varchar(255);not null;comment:이미지 주소"`

	// Caption 설명 (선택)
	Caption string `gorm:"column:caption;type:varchar(100);comment:설명"`

	// SortOrder 노출 순서, 오름차순 정렬
	SortOrder int `gorm:"column:sort_order;not null;default:0;comment:노출 순서"`
}

func (GalleryImage) TableName() string {
	return "gallery_image"
}
