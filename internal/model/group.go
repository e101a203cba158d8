// Package model 데이터베이스 엔티티 모델 정의
package model

import (
	"gorm.io/gorm"

	"wedding_invitation_server/pkg/feature"
)

// 그룹 유형
const (
	GroupTypeWeddingGuest = "WEDDING_GUEST" // 신랑신부 지인
	GroupTypeParentsGuest = "PARENTS_GUEST" // 혼주 지인
	GroupTypeCompanyGuest = "COMPANY_GUEST" // 회사 동료
)

// InvitationGroup 초대 그룹
// 그룹마다 고유한 초대 코드(URL)와 노출 기능 플래그를 가진다
type InvitationGroup struct {
	gorm.Model

	// GroupName 그룹 이름, 예: "회사 동료"
	GroupName string `gorm:"column:group_name;type:varchar(50);not null;comment:그룹 이름"`

	// GroupType 그룹 유형 (WEDDING_GUEST / PARENTS_GUEST / COMPANY_GUEST)
	GroupType string `gorm:"column:group_type;type:varchar(20);not null;default:WEDDING_GUEST;comment:그룹 유형"`

	// UniqueCode URL-safe 초대 코드, /invitation/{code} 로 접근
	// 3~20자, [a-zA-Z0-9-]
	UniqueCode string `gorm:"column:unique_code;uniqueIndex;type:varchar(20);not null;comment:초대 코드"`

	// GreetingMessage 그룹별 인사말 (비어 있으면 공통 인사말 사용)
	GreetingMessage string `gorm:"column:greeting_message;type:varchar(500);comment:그룹별 인사말"`

	// 노출 기능 플래그
	// 동적 map 이 아닌 고정 필드로 두어 기능 추가 시 컴파일 타임에 드러나게 한다
	ShowRsvpForm        bool `gorm:"column:show_rsvp_form;default:true;comment:RSVP 폼 노출"`
	ShowAccountInfo     bool `gorm:"column:show_account_info;default:false;comment:계좌 안내 노출"`
	ShowShareButton     bool `gorm:"column:show_share_button;default:true;comment:공유 버튼 노출"`
	ShowVenueInfo       bool `gorm:"column:show_venue_info;default:true;comment:오시는 길 노출"`
	ShowPhotoGallery    bool `gorm:"column:show_photo_gallery;default:true;comment:갤러리 노출"`
	ShowCeremonyProgram bool `gorm:"column:show_ceremony_program;default:false;comment:예식 순서 노출"`

	// VisibleAccountIndices 이 그룹에 노출할 계좌 행 인덱스
	// 과거에는 그룹 이름 문자열 비교로 분기했으나 명시적 설정 필드로 대체했다
	VisibleAccountIndices []int `gorm:"column:visible_account_indices;serializer:json;comment:노출 계좌 인덱스"`
}

func (InvitationGroup) TableName() string {
	return "invitation_group"
}

// FeatureFlags 기능 플래그만 모아 반환한다
func (g *InvitationGroup) FeatureFlags() feature.Flags {
	return feature.Flags{
		ShowRsvpForm:        g.ShowRsvpForm,
		ShowAccountInfo:     g.ShowAccountInfo,
		ShowShareButton:     g.ShowShareButton,
		ShowVenueInfo:       g.ShowVenueInfo,
		ShowPhotoGallery:    g.ShowPhotoGallery,
		ShowCeremonyProgram: g.ShowCeremonyProgram,
	}
}
