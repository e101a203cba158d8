package mysql

import (
	"gorm.io/gorm"

	"wedding_invitation_server/internal/model"
)

// adminRepository AdminRepository 구현
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository AdminRepository 인스턴스 생성
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create 계정 생성
func (r *adminRepository) Create(admin *model.AdminInfo) error {
	if err := r.db.Create(admin).Error; err != nil {
		return wrapDBError(err, "관리자 계정 생성")
	}
	return nil
}

// FindByUsername 아이디로 계정 조회
func (r *adminRepository) FindByUsername(username string) (*model.AdminInfo, error) {
	var admin model.AdminInfo
	if err := r.db.First(&admin, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "관리자 조회 username=%s", username)
	}
	return &admin, nil
}

// FindAll 전체 계정 조회
func (r *adminRepository) FindAll() ([]model.AdminInfo, error) {
	var admins []model.AdminInfo
	if err := r.db.Order("id asc").Find(&admins).Error; err != nil {
		return nil, wrapDBError(err, "전체 관리자 조회")
	}
	return admins, nil
}

// ExistsByUsername 아이디 중복 확인
func (r *adminRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.AdminInfo{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "관리자 아이디 중복 확인 username=%s", username)
	}
	return count > 0, nil
}

// Count 전체 계정 수
func (r *adminRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.AdminInfo{}).Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "관리자 수 조회")
	}
	return count, nil
}
