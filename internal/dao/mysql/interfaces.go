package mysql

import (
	"wedding_invitation_server/internal/model"
)

// GroupRepository 초대 그룹 데이터 접근 인터페이스
type GroupRepository interface {
	// Create 그룹 생성
	Create(group *model.InvitationGroup) error
	// FindAll 전체 그룹 조회 (생성순)
	FindAll() ([]model.InvitationGroup, error)
	// FindByID id 로 그룹 조회
	FindByID(id uint) (*model.InvitationGroup, error)
	// FindByUniqueCode 초대 코드로 그룹 조회
	FindByUniqueCode(code string) (*model.InvitationGroup, error)
	// ExistsByUniqueCode 초대 코드 중복 확인, excludeID 는 수정 시 자기 자신 제외용
	ExistsByUniqueCode(code string, excludeID uint) (bool, error)
	// Update 그룹 전체 필드 갱신
	Update(group *model.InvitationGroup) error
	// SoftDeleteByID 그룹 소프트 삭제
	SoftDeleteByID(id uint) error
}

// RsvpRepository RSVP 응답 데이터 접근 인터페이스
type RsvpRepository interface {
	// Create 응답 생성
	Create(rsvp *model.RsvpResponse) error
	// FindAll 전체 응답 조회 (최신순)
	FindAll() ([]model.RsvpResponse, error)
	// FindByID id 로 응답 조회
	FindByID(id uint) (*model.RsvpResponse, error)
	// CountByGroupID 그룹별 응답 수
	CountByGroupID(groupID uint) (int64, error)
	// CountGroupedByGroupID 그룹 id -> 응답 수 집계
	CountGroupedByGroupID() (map[uint]int64, error)
	// Update 응답 전체 필드 갱신
	Update(rsvp *model.RsvpResponse) error
	// SoftDeleteByID 응답 소프트 삭제
	SoftDeleteByID(id uint) error
	// SoftDeleteByGroupID 그룹의 모든 응답 소프트 삭제 (그룹 강제 삭제 시)
	SoftDeleteByGroupID(groupID uint) error
}

// AdminRepository 관리자 계정 데이터 접근 인터페이스
type AdminRepository interface {
	// Create 계정 생성
	Create(admin *model.AdminInfo) error
	// FindByUsername 아이디로 계정 조회
	FindByUsername(username string) (*model.AdminInfo, error)
	// FindAll 전체 계정 조회
	FindAll() ([]model.AdminInfo, error)
	// ExistsByUsername 아이디 중복 확인
	ExistsByUsername(username string) (bool, error)
	// Count 전체 계정 수 (최초 기동 seed 판단용)
	Count() (int64, error)
}

// WeddingInfoRepository 예식 정보 데이터 접근 인터페이스
type WeddingInfoRepository interface {
	// Get 단일 예식 정보 조회, 아직 없으면 CodeNotFound
	Get() (*model.WeddingInfo, error)
	// Save 예식 정보 저장 (단일 레코드 upsert)
	Save(info *model.WeddingInfo) error
}

// GalleryRepository 갤러리 데이터 접근 인터페이스
type GalleryRepository interface {
	// Create 사진 등록
	Create(image *model.GalleryImage) error
	// FindAllOrdered 노출 순서대로 전체 조회
	FindAllOrdered() ([]model.GalleryImage, error)
	// SoftDeleteByID 사진 삭제
	SoftDeleteByID(id uint) error
}
