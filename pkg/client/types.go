package client

import (
	"wedding_invitation_server/pkg/feature"
)

// Group 초대 그룹
type Group struct {
	Id                    int64  `json:"id"`
	GroupName             string `json:"groupName"`
	GroupType             string `json:"groupType"`
	UniqueCode            string `json:"uniqueCode"`
	GreetingMessage       string `json:"greetingMessage"`
	ShowRsvpForm          bool   `json:"showRsvpForm"`
	ShowAccountInfo       bool   `json:"showAccountInfo"`
	ShowShareButton       bool   `json:"showShareButton"`
	ShowVenueInfo         bool   `json:"showVenueInfo"`
	ShowPhotoGallery      bool   `json:"showPhotoGallery"`
	ShowCeremonyProgram   bool   `json:"showCeremonyProgram"`
	VisibleAccountIndices []int  `json:"visibleAccountIndices"`
	RsvpCount             int64  `json:"rsvpCount"`
}

// GroupCreateRequest 그룹 생성 요청, uniqueCode 가 비어 있으면 서버가 생성한다
type GroupCreateRequest struct {
	GroupName             string `json:"groupName"`
	GroupType             string `json:"groupType,omitempty"`
	UniqueCode            string `json:"uniqueCode,omitempty"`
	GreetingMessage       string `json:"greetingMessage,omitempty"`
	ShowRsvpForm          bool   `json:"showRsvpForm"`
	ShowAccountInfo       bool   `json:"showAccountInfo"`
	ShowShareButton       bool   `json:"showShareButton"`
	ShowVenueInfo         bool   `json:"showVenueInfo"`
	ShowPhotoGallery      bool   `json:"showPhotoGallery"`
	ShowCeremonyProgram   bool   `json:"showCeremonyProgram"`
	VisibleAccountIndices []int  `json:"visibleAccountIndices,omitempty"`
}

// GroupUpdateRequest 그룹 부분 수정 요청, nil 필드는 보내지 않는다
type GroupUpdateRequest struct {
	GroupName             *string `json:"groupName,omitempty"`
	GroupType             *string `json:"groupType,omitempty"`
	UniqueCode            *string `json:"uniqueCode,omitempty"`
	GreetingMessage       *string `json:"greetingMessage,omitempty"`
	ShowRsvpForm          *bool   `json:"showRsvpForm,omitempty"`
	ShowAccountInfo       *bool   `json:"showAccountInfo,omitempty"`
	ShowShareButton       *bool   `json:"showShareButton,omitempty"`
	ShowVenueInfo         *bool   `json:"showVenueInfo,omitempty"`
	ShowPhotoGallery      *bool   `json:"showPhotoGallery,omitempty"`
	ShowCeremonyProgram   *bool   `json:"showCeremonyProgram,omitempty"`
	VisibleAccountIndices *[]int  `json:"visibleAccountIndices,omitempty"`
}

// Rsvp RSVP 응답
type Rsvp struct {
	Id            int64    `json:"id"`
	GroupId       int64    `json:"groupId"`
	GroupName     string   `json:"groupName,omitempty"`
	ResponderName string   `json:"responderName"`
	IsAttending   bool     `json:"isAttending"`
	TotalCount    int      `json:"totalCount"`
	AttendeeNames []string `json:"attendeeNames"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	Message       string   `json:"message,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

// RsvpSubmitRequest RSVP 제출/수정 payload
type RsvpSubmitRequest struct {
	ResponderName string   `json:"responderName"`
	IsAttending   bool     `json:"isAttending"`
	TotalCount    int      `json:"totalCount"`
	AttendeeNames []string `json:"attendeeNames"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// WeddingInfo 예식 공통 정보
type WeddingInfo struct {
	GroomName       string   `json:"groomName"`
	BrideName       string   `json:"brideName"`
	WeddingDate     string   `json:"weddingDate"`
	VenueName       string   `json:"venueName"`
	VenueAddress    string   `json:"venueAddress"`
	VenueDetail     string   `json:"venueDetail"`
	KakaoMapUrl     string   `json:"kakaoMapUrl"`
	NaverMapUrl     string   `json:"naverMapUrl"`
	ParkingInfo     string   `json:"parkingInfo"`
	TransportInfo   string   `json:"transportInfo"`
	GreetingMessage string   `json:"greetingMessage"`
	CeremonyProgram []string `json:"ceremonyProgram"`
	AccountInfo     []string `json:"accountInfo"`
}

// WeddingInfoUpdateRequest 예식 정보 부분 수정 payload
type WeddingInfoUpdateRequest struct {
	GroomName       *string   `json:"groomName,omitempty"`
	BrideName       *string   `json:"brideName,omitempty"`
	WeddingDate     *string   `json:"weddingDate,omitempty"`
	VenueName       *string   `json:"venueName,omitempty"`
	VenueAddress    *string   `json:"venueAddress,omitempty"`
	VenueDetail     *string   `json:"venueDetail,omitempty"`
	KakaoMapUrl     *string   `json:"kakaoMapUrl,omitempty"`
	NaverMapUrl     *string   `json:"naverMapUrl,omitempty"`
	ParkingInfo     *string   `json:"parkingInfo,omitempty"`
	TransportInfo   *string   `json:"transportInfo,omitempty"`
	GreetingMessage *string   `json:"greetingMessage,omitempty"`
	CeremonyProgram *[]string `json:"ceremonyProgram,omitempty"`
	AccountInfo     *[]string `json:"accountInfo,omitempty"`
}

// GroupInfo 초대 페이지에 포함되는 그룹 요약
type GroupInfo struct {
	GroupName       string `json:"groupName"`
	GroupType       string `json:"groupType"`
	GreetingMessage string `json:"greetingMessage"`
}

// Invitation 초대 페이지 전체 데이터
// Sections/VenuePlan 은 서버가 풀어서 내려주지만 feature 패키지로
// 클라이언트에서 재계산할 수도 있다 (같은 규칙)
type Invitation struct {
	WeddingInfo       *WeddingInfo      `json:"weddingInfo"`
	GroupInfo         GroupInfo         `json:"groupInfo"`
	AvailableFeatures feature.Flags     `json:"availableFeatures"`
	Sections          []feature.Section `json:"sections"`
	VenuePlan         feature.VenuePlan `json:"venuePlan"`
	AccountInfo       []string          `json:"accountInfo"`
}

// Admin 관리자 계정
type Admin struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// LoginResult 로그인 응답
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"` // unix milli
	User         Admin  `json:"user"`
}

// RefreshResult 토큰 갱신 응답
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// GalleryImage 갤러리 사진
type GalleryImage struct {
	Id        int64  `json:"id"`
	Url       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"sortOrder"`
}
