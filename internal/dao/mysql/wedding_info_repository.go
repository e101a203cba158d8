package mysql

import (
	"gorm.io/gorm"

	"wedding_invitation_server/internal/model"
)

// weddingInfoRepository WeddingInfoRepository 구현
// 예식 정보는 ID 고정(WeddingInfoID) 단일 레코드만 유지한다
type weddingInfoRepository struct {
	db *gorm.DB
}

// NewWeddingInfoRepository WeddingInfoRepository 인스턴스 생성
func NewWeddingInfoRepository(db *gorm.DB) WeddingInfoRepository {
	return &weddingInfoRepository{db: db}
}

// Get 단일 예식 정보 조회
func (r *weddingInfoRepository) Get() (*model.WeddingInfo, error) {
	var info model.WeddingInfo
	if err := r.db.First(&info, model.WeddingInfoID).Error; err != nil {
		return nil, wrapDBError(err, "예식 정보 조회")
	}
	return &info, nil
}

// Save 예식 정보 저장 (단일 레코드 upsert)
func (r *weddingInfoRepository) Save(info *model.WeddingInfo) error {
	info.ID = model.WeddingInfoID
	if err := r.db.Save(info).Error; err != nil {
		return wrapDBError(err, "예식 정보 저장")
	}
	return nil
}
