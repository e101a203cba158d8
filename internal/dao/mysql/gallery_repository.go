package mysql

import (
	"gorm.io/gorm"

	"wedding_invitation_server/internal/model"
)

// galleryRepository GalleryRepository 구현
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository GalleryRepository 인스턴스 생성
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

// Create 사진 등록
func (r *galleryRepository) Create(image *model.GalleryImage) error {
	if err := r.db.Create(image).Error; err != nil {
		return wrapDBError(err, "갤러리 사진 등록")
	}
	return nil
}

// FindAllOrdered 노출 순서대로 전체 조회
func (r *galleryRepository) FindAllOrdered() ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.Order("sort_order asc, id asc").Find(&images).Error; err != nil {
		return nil, wrapDBError(err, "갤러리 조회")
	}
	return images, nil
}

// SoftDeleteByID 사진 삭제
func (r *galleryRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.GalleryImage{}, id).Error; err != nil {
		return wrapDBErrorf(err, "갤러리 사진 삭제 id=%d", id)
	}
	return nil
}
