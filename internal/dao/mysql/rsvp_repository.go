package mysql

import (
	"gorm.io/gorm"

	"wedding_invitation_server/internal/model"
)

// rsvpRepository RsvpRepository 구현
type rsvpRepository struct {
	db *gorm.DB
}

// NewRsvpRepository RsvpRepository 인스턴스 생성
func NewRsvpRepository(db *gorm.DB) RsvpRepository {
	return &rsvpRepository{db: db}
}

// Create 응답 생성
func (r *rsvpRepository) Create(rsvp *model.RsvpResponse) error {
	if err := r.db.Create(rsvp).Error; err != nil {
		return wrapDBError(err, "RSVP 응답 생성")
	}
	return nil
}

// FindAll 전체 응답 조회 (최신순)
func (r *rsvpRepository) FindAll() ([]model.RsvpResponse, error) {
	var rsvps []model.RsvpResponse
	if err := r.db.Order("id desc").Find(&rsvps).Error; err != nil {
		return nil, wrapDBError(err, "전체 RSVP 조회")
	}
	return rsvps, nil
}

// FindByID id 로 응답 조회
func (r *rsvpRepository) FindByID(id uint) (*model.RsvpResponse, error) {
	var rsvp model.RsvpResponse
	if err := r.db.First(&rsvp, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "RSVP 조회 id=%d", id)
	}
	return &rsvp, nil
}

// CountByGroupID 그룹별 응답 수
func (r *rsvpRepository) CountByGroupID(groupID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.RsvpResponse{}).Where("group_id = ?", groupID).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "그룹 RSVP 수 조회 group_id=%d", groupID)
	}
	return count, nil
}

// CountGroupedByGroupID 그룹 id -> 응답 수 집계
func (r *rsvpRepository) CountGroupedByGroupID() (map[uint]int64, error) {
	type row struct {
		GroupID uint
		Cnt     int64
	}
	var rows []row
	err := r.db.Model(&model.RsvpResponse{}).
		Select("group_id, count(*) as cnt").
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "그룹별 RSVP 수 집계")
	}
	counts := make(map[uint]int64, len(rows))
	for _, rw := range rows {
		counts[rw.GroupID] = rw.Cnt
	}
	return counts, nil
}

// Update 응답 전체 필드 갱신
func (r *rsvpRepository) Update(rsvp *model.RsvpResponse) error {
	if err := r.db.Save(rsvp).Error; err != nil {
		return wrapDBErrorf(err, "RSVP 갱신 id=%d", rsvp.ID)
	}
	return nil
}

// SoftDeleteByID 응답 소프트 삭제
func (r *rsvpRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.RsvpResponse{}, id).Error; err != nil {
		return wrapDBErrorf(err, "RSVP 삭제 id=%d", id)
	}
	return nil
}

// SoftDeleteByGroupID 그룹의 모든 응답 소프트 삭제
func (r *rsvpRepository) SoftDeleteByGroupID(groupID uint) error {
	if err := r.db.Where("group_id = ?", groupID).Delete(&model.RsvpResponse{}).Error; err != nil {
		return wrapDBErrorf(err, "그룹 RSVP 일괄 삭제 group_id=%d", groupID)
	}
	return nil
}
