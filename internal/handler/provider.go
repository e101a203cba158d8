// Package handler HTTP 요청 처리기
// 본 파일은 Handler 집합과 생성자를 정의한다
package handler

import (
	"wedding_invitation_server/internal/service"
)

// Handlers 전체 Handler 집합
// Router 레이어는 이 구조체를 통해 각 Handler 에 접근한다
type Handlers struct {
	Invitation *InvitationHandler
	Group      *GroupHandler
	Rsvp       *RsvpHandler
	Admin      *AdminHandler
	Wedding    *WeddingHandler
}

// NewHandlers Service 집합을 받아 전체 Handler 를 조립한다
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Invitation: NewInvitationHandler(svc.Invitation),
		Group:      NewGroupHandler(svc.Group),
		Rsvp:       NewRsvpHandler(svc.Rsvp),
		Admin:      NewAdminHandler(svc.Admin),
		Wedding:    NewWeddingHandler(svc.Wedding),
	}
}
