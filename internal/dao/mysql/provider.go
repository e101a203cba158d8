package mysql

import (
	"gorm.io/gorm"
)

// Repositories 모든 Repository 를 묶은 의존성 주입 진입점
// Service 레이어는 이 구조체를 통해 데이터 계층에 접근한다
type Repositories struct {
	db          *gorm.DB
	Group       GroupRepository
	Rsvp        RsvpRepository
	Admin       AdminRepository
	WeddingInfo WeddingInfoRepository
	Gallery     GalleryRepository
}

// NewRepositories 모든 Repository 인스턴스 생성
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Group:       NewGroupRepository(db),
		Rsvp:        NewRsvpRepository(db),
		Admin:       NewAdminRepository(db),
		WeddingInfo: NewWeddingInfoRepository(db),
		Gallery:     NewGalleryRepository(db),
	}
}

// Transaction 트랜잭션 안에서 fn 을 실행한다
// fn 이 에러를 반환하면 전체 롤백된다
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
