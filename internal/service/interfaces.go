// Package service 비즈니스 레이어 인터페이스 정의
// Handler 레이어는 구현이 아닌 이 인터페이스에 의존한다
package service

import (
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
)

// InvitationService 하객용 초대 페이지 조회
type InvitationService interface {
	// GetInvitation 초대 코드로 초대 페이지 데이터 조회
	// 예식 정보 + 그룹 정보 + 노출 기능/섹션 계획을 한 번에 내려준다
	GetInvitation(code string) (*respond.InvitationRespond, error)
}

// GroupService 초대 그룹 관리 (관리자 전용)
type GroupService interface {
	// CreateGroup 그룹 생성, 초대 코드가 비어 있으면 자동 생성
	CreateGroup(req request.CreateGroupRequest) (*respond.GroupRespond, error)
	// GetAllGroups 전체 그룹 목록 (응답 수 포함)
	GetAllGroups() ([]respond.GroupRespond, error)
	// UpdateGroup 그룹 부분 수정
	UpdateGroup(id uint, req request.UpdateGroupRequest) (*respond.GroupRespond, error)
	// DeleteGroup 그룹 삭제
	// RSVP 응답이 남아 있으면 force 없이는 CodeGroupHasResponses 로 거부한다
	// force=true 면 응답까지 함께 삭제한다
	DeleteGroup(id uint, force bool) error
}

// RsvpService RSVP 응답 수집/관리
type RsvpService interface {
	// SubmitRsvp 하객 응답 제출 (공개 엔드포인트)
	SubmitRsvp(code string, req request.RsvpRequest) (*respond.RsvpRespond, error)
	// GetAllRsvps 전체 응답 목록 (관리자)
	GetAllRsvps() ([]respond.RsvpRespond, error)
	// UpdateRsvp 응답 수정 (관리자)
	UpdateRsvp(id uint, req request.UpdateRsvpRequest) (*respond.RsvpRespond, error)
	// DeleteRsvp 응답 삭제 (관리자)
	DeleteRsvp(id uint) error
}

// AdminService 관리자 계정/인증
type AdminService interface {
	// Login 아이디/비밀번호 로그인, 토큰 쌍 발급
	Login(req request.AdminLoginRequest) (*respond.LoginRespond, error)
	// RefreshToken Refresh Token 으로 Access Token 재발급
	RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error)
	// CreateAdmin 관리자 계정 생성, 아이디 중복 시 CodeDuplicateUsername
	CreateAdmin(req request.CreateAdminRequest) (*respond.AdminRespond, error)
	// GetAdminList 전체 관리자 목록
	GetAdminList() ([]respond.AdminRespond, error)
}

// WeddingService 예식 정보/갤러리 관리
type WeddingService interface {
	// GetWeddingInfo 예식 정보 조회 (관리자), 아직 없으면 CodeNotFound
	GetWeddingInfo() (*respond.WeddingInfoRespond, error)
	// UpdateWeddingInfo 예식 정보 부분 수정
	UpdateWeddingInfo(req request.UpdateWeddingInfoRequest) (*respond.WeddingInfoRespond, error)
	// GetGallery 갤러리 목록 (공개)
	GetGallery() ([]respond.GalleryImageRespond, error)
	// CreateGalleryImage 사진 등록 (관리자)
	CreateGalleryImage(req request.CreateGalleryImageRequest) (*respond.GalleryImageRespond, error)
	// DeleteGalleryImage 사진 삭제 (관리자)
	DeleteGalleryImage(id uint) error
}
