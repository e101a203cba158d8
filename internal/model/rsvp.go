package model

import (
	"gorm.io/gorm"
)

// RsvpResponse 하객의 참석 여부 응답
// 불변식: IsAttending 이 false 면 TotalCount == 0, AttendeeNames 비어 있음
// IsAttending 이 true 면 TotalCount >= 1, len(AttendeeNames) == TotalCount
// 불변식은 서비스 레이어의 정규화 단계에서 보장한다
type RsvpResponse struct {
	gorm.Model

	// GroupID 응답이 속한 초대 그룹
	GroupID uint `gorm:"column:group_id;index;not null;comment:초대 그룹 id"`

	// ResponderName 응답자 이름
	ResponderName string `gorm:"column:responder_name;type:varchar(30);not null;comment:응답자 이름"`

	// IsAttending 참석 여부
	IsAttending bool `gorm:"column:is_attending;not null;comment:참석 여부"`

	// TotalCount 총 참석 인원
	TotalCount int `gorm:"column:total_count;not null;default:0;comment:총 참석 인원"`

	// AttendeeNames 참석자 이름 목록, TotalCount 와 길이가 같다
	AttendeeNames []string `gorm:"column:attendee_names;serializer:json;comment:참석자 이름"`

	// PhoneNumber 연락처 (선택), AES-GCM 으로 암호화해 저장한다
	PhoneNumber string `gorm:"column:phone_number;type:varchar(255);comment:연락처(암호화)"`

	// Message 신랑신부에게 남기는 메시지 (선택)
	Message string `gorm:"column:message;type:varchar(500);comment:축하 메시지"`
}

func (RsvpResponse) TableName() string {
	return "rsvp_response"
}
