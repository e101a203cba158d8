package mysql

import (
	"gorm.io/gorm"

	"wedding_invitation_server/internal/model"
)

// groupRepository GroupRepository 구현
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository GroupRepository 인스턴스 생성
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create 그룹 생성
func (r *groupRepository) Create(group *model.InvitationGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "그룹 생성")
	}
	return nil
}

// FindAll 전체 그룹 조회 (생성순)
func (r *groupRepository) FindAll() ([]model.InvitationGroup, error) {
	var groups []model.InvitationGroup
	if err := r.db.Order("id asc").Find(&groups).Error; err != nil {
		return nil, wrapDBError(err, "전체 그룹 조회")
	}
	return groups, nil
}

// FindByID id 로 그룹 조회
func (r *groupRepository) FindByID(id uint) (*model.InvitationGroup, error) {
	var group model.InvitationGroup
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "그룹 조회 id=%d", id)
	}
	return &group, nil
}

// FindByUniqueCode 초대 코드로 그룹 조회
func (r *groupRepository) FindByUniqueCode(code string) (*model.InvitationGroup, error) {
	var group model.InvitationGroup
	if err := r.db.First(&group, "unique_code = ?", code).Error; err != nil {
		return nil, wrapDBErrorf(err, "그룹 조회 code=%s", code)
	}
	return &group, nil
}

// ExistsByUniqueCode 초대 코드 중복 확인
// excludeID 가 0 이 아니면 해당 그룹(자기 자신)은 제외한다
func (r *groupRepository) ExistsByUniqueCode(code string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.InvitationGroup{}).Where("unique_code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "초대 코드 중복 확인 code=%s", code)
	}
	return count > 0, nil
}

// Update 그룹 전체 필드 갱신
func (r *groupRepository) Update(group *model.InvitationGroup) error {
	if err := r.db.Save(group).Error; err != nil {
		return wrapDBErrorf(err, "그룹 갱신 id=%d", group.ID)
	}
	return nil
}

// SoftDeleteByID 그룹 소프트 삭제
func (r *groupRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.InvitationGroup{}, id).Error; err != nil {
		return wrapDBErrorf(err, "그룹 삭제 id=%d", id)
	}
	return nil
}
