package model

import (
	"gorm.io/gorm"
)

// WeddingInfoID 예식 정보는 단일 레코드만 유지한다
const WeddingInfoID = 1

// WeddingInfo 예식 공통 정보
// 모든 그룹이 공유하며 관리자만 수정할 수 있다
type WeddingInfo struct {
	gorm.Model

	GroomName    string `gorm:"column:groom_name;type:varchar(30);not null;comment:신랑 이름"`
	BrideName    string `gorm:"column:bride_name;type:varchar(30);not null;comment:신부 이름"`
	WeddingDate  string `gorm:"column:wedding_date;type:varchar(30);comment:예식 일시"`
	VenueName    string `gorm:"column:venue_name;type:varchar(100);comment:예식장 이름"`
	VenueAddress string `gorm:"column:venue_address;type:varchar(200);comment:예식장 주소"`
	VenueDetail  string `gorm:"column:venue_detail;type:varchar(200);comment:층/홀 등 상세"`
	KakaoMapUrl  string `gorm:"column:kakao_map_url;type:varchar(255);comment:카카오맵 링크"`
	NaverMapUrl  string `gorm:"column:naver_map_url;type:varchar(255);comment:네이버지도 링크"`
	ParkingInfo  string `gorm:"column:parking_info;type:varchar(500);comment:주차 안내"`
	TransportInfo string `gorm:"column:transport_info;type:varchar(500);comment:대중교통 안내"`

	// GreetingMessage 공통 인사말 (그룹별 인사말이 없을 때 사용)
	GreetingMessage string `gorm:"column:greeting_message;type:varchar(500);comment:공통 인사말"`

	// CeremonyProgram 예식 순서 목록
	CeremonyProgram []string `gorm:"column:ceremony_program;serializer:json;comment:예식 순서"`

	// AccountInfo 마음 전하실 곳 계좌 목록
	// 각 그룹의 VisibleAccountIndices 로 노출 행을 고른다
	AccountInfo []string `gorm:"column:account_info;serializer:json;comment:계좌 안내"`
}

func (WeddingInfo) TableName() string {
	return "wedding_info"
}
