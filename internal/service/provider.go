package service

import (
	"wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/infrastructure/sms"
	"wedding_invitation_server/internal/service/admin"
	"wedding_invitation_server/internal/service/group"
	"wedding_invitation_server/internal/service/invitation"
	"wedding_invitation_server/internal/service/notify"
	"wedding_invitation_server/internal/service/rsvp"
	"wedding_invitation_server/internal/service/wedding"
)

// Services 전체 비즈니스 서비스 집합
// main 에서 한 번 조립해 Handler 레이어로 내려보낸다
type Services struct {
	Invitation InvitationService
	Group      GroupService
	Rsvp       RsvpService
	Admin      AdminService
	Wedding    WeddingService
}

// NewServices 서비스 집합 생성
func NewServices(
	repos *mysql.Repositories,
	cache myredis.AsyncCacheService,
	publisher notify.Publisher,
	smsSvc sms.SmsService,
	cipherKey []byte,
) *Services {
	return &Services{
		Invitation: invitation.NewInvitationService(repos, cache),
		Group:      group.NewGroupService(repos, cache),
		Rsvp:       rsvp.NewRsvpService(repos, publisher, smsSvc, cipherKey),
		Admin:      admin.NewAdminService(repos, cache),
		Wedding:    wedding.NewWeddingService(repos, cache),
	}
}
