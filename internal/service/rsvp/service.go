// Package rsvp RSVP 응답 수집/관리 로직
package rsvp

import (
	"strings"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/dao/mysql"
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/infrastructure/sms"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/internal/service/notify"
	"wedding_invitation_server/pkg/aes"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/rsvprule"
)

// rsvpService RsvpService 구현
type rsvpService struct {
	repos     *mysql.Repositories
	publisher notify.Publisher
	smsSvc    sms.SmsService
	cipherKey []byte // 전화번호 암호화 키, 비어 있으면 평문 저장
}

// NewRsvpService 의존성 주입 생성자
func NewRsvpService(repos *mysql.Repositories, publisher notify.Publisher, smsSvc sms.SmsService, cipherKey []byte) *rsvpService {
	return &rsvpService{
		repos:     repos,
		publisher: publisher,
		smsSvc:    smsSvc,
		cipherKey: cipherKey,
	}
}

// SubmitRsvp 하객 응답 제출
// 그룹의 RSVP 기능이 꺼져 있으면 거부하고, 저장 후 대시보드 알림과
// 확인 문자는 비동기 best-effort 로 처리한다
func (s *rsvpService) SubmitRsvp(code string, req request.RsvpRequest) (*respond.RsvpRespond, error) {
	group, err := s.repos.Group.FindByUniqueCode(code)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "유효하지 않은 초대 코드입니다")
		}
		zap.L().Error("find group by code error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !group.ShowRsvpForm {
		return nil, errorx.New(errorx.CodeInvalidParam, "이 초대장에서는 참석 여부 회신을 받지 않습니다")
	}

	if !rsvprule.ValidateResponderName(req.ResponderName) {
		return nil, errorx.New(errorx.CodeInvalidParam, "이름은 2자 이상 입력해주세요")
	}

	totalCount, names := rsvprule.Normalize(req.IsAttending, req.TotalCount, req.AttendeeNames)

	phone := strings.TrimSpace(req.PhoneNumber)
	stored, err := s.encryptPhone(phone)
	if err != nil {
		zap.L().Error("encrypt phone error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsvp := model.RsvpResponse{
		GroupID:       group.ID,
		ResponderName: strings.TrimSpace(req.ResponderName),
		IsAttending:   req.IsAttending,
		TotalCount:    totalCount,
		AttendeeNames: names,
		PhoneNumber:   stored,
		Message:       strings.TrimSpace(req.Message),
	}
	if err := s.repos.Rsvp.Create(&rsvp); err != nil {
		zap.L().Error("create rsvp error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := toRsvpRespond(&rsvp, group.GroupName, phone)

	// 대시보드 실시간 알림, 실패해도 제출은 성공 처리
	s.publisher.Publish(notify.Event{
		Type:    notify.EventRsvpCreated,
		Payload: rsp,
	})

	// 접수 확인 문자, 번호를 남긴 경우에만 발송
	if phone != "" {
		go func(telephone, name string) {
			if err := s.smsSvc.SendRsvpConfirmation(telephone, name); err != nil {
				zap.L().Error("send rsvp confirmation sms error", zap.Error(err))
			}
		}(phone, rsvp.ResponderName)
	}

	return &rsp, nil
}

// GetAllRsvps 전체 응답 목록, 그룹 이름을 붙이고 전화번호를 복호화한다
func (s *rsvpService) GetAllRsvps() ([]respond.RsvpRespond, error) {
	rsvps, err := s.repos.Rsvp.FindAll()
	if err != nil {
		zap.L().Error("find all rsvps error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	groups, err := s.repos.Group.FindAll()
	if err != nil {
		zap.L().Error("find all groups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	groupNames := make(map[uint]string, len(groups))
	for i := range groups {
		groupNames[groups[i].ID] = groups[i].GroupName
	}

	rsps := make([]respond.RsvpRespond, 0, len(rsvps))
	for i := range rsvps {
		phone := s.decryptPhone(rsvps[i].PhoneNumber)
		rsps = append(rsps, toRsvpRespond(&rsvps[i], groupNames[rsvps[i].GroupID], phone))
	}
	return rsps, nil
}

// UpdateRsvp 관리자의 응답 수정, 제출과 같은 정규화 규칙을 적용한다
func (s *rsvpService) UpdateRsvp(id uint, req request.UpdateRsvpRequest) (*respond.RsvpRespond, error) {
	rsvp, err := s.repos.Rsvp.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "RSVP 응답을 찾을 수 없습니다")
		}
		zap.L().Error("find rsvp error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if !rsvprule.ValidateResponderName(req.ResponderName) {
		return nil, errorx.New(errorx.CodeInvalidParam, "이름은 2자 이상 입력해주세요")
	}
	totalCount, names := rsvprule.Normalize(req.IsAttending, req.TotalCount, req.AttendeeNames)

	phone := strings.TrimSpace(req.PhoneNumber)
	stored, err := s.encryptPhone(phone)
	if err != nil {
		zap.L().Error("encrypt phone error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsvp.ResponderName = strings.TrimSpace(req.ResponderName)
	rsvp.IsAttending = req.IsAttending
	rsvp.TotalCount = totalCount
	rsvp.AttendeeNames = names
	rsvp.PhoneNumber = stored
	rsvp.Message = strings.TrimSpace(req.Message)

	if err := s.repos.Rsvp.Update(rsvp); err != nil {
		zap.L().Error("update rsvp error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	groupName := ""
	if group, err := s.repos.Group.FindByID(rsvp.GroupID); err == nil {
		groupName = group.GroupName
	}

	rsp := toRsvpRespond(rsvp, groupName, phone)
	return &rsp, nil
}

// DeleteRsvp 관리자의 응답 삭제
func (s *rsvpService) DeleteRsvp(id uint) error {
	if _, err := s.repos.Rsvp.FindByID(id); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "RSVP 응답을 찾을 수 없습니다")
		}
		zap.L().Error("find rsvp error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.repos.Rsvp.SoftDeleteByID(id); err != nil {
		zap.L().Error("delete rsvp error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// encryptPhone 키가 설정돼 있으면 암호화, 없으면 평문 그대로
func (s *rsvpService) encryptPhone(phone string) (string, error) {
	if phone == "" || len(s.cipherKey) == 0 {
		return phone, nil
	}
	return aes.Encrypt(phone, s.cipherKey)
}

// decryptPhone 복호화 실패 시 빈 문자열 (깨진 값을 그대로 노출하지 않는다)
func (s *rsvpService) decryptPhone(stored string) string {
	if stored == "" {
		return ""
	}
	if len(s.cipherKey) == 0 {
		return stored
	}
	phone, err := aes.Decrypt(stored, s.cipherKey)
	if err != nil {
		zap.L().Warn("decrypt phone failed", zap.Error(err))
		return ""
	}
	return phone
}

// toRsvpRespond 모델 -> 응답 DTO 변환, phone 은 평문을 받는다
func toRsvpRespond(rsvp *model.RsvpResponse, groupName, phone string) respond.RsvpRespond {
	names := rsvp.AttendeeNames
	if names == nil {
		names = []string{}
	}
	return respond.RsvpRespond{
		Id:            rsvp.ID,
		GroupId:       rsvp.GroupID,
		GroupName:     groupName,
		ResponderName: rsvp.ResponderName,
		IsAttending:   rsvp.IsAttending,
		TotalCount:    rsvp.TotalCount,
		AttendeeNames: names,
		PhoneNumber:   phone,
		Message:       rsvp.Message,
		CreatedAt:     rsvp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
