package rsvp

import (
	"sync"
	"testing"
	"time"

	"wedding_invitation_server/internal/dao/mysql"
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/internal/service/notify"
	"wedding_invitation_server/pkg/errorx"
)

// memRsvpRepo 인메모리 RSVP 저장소
type memRsvpRepo struct {
	mysql.RsvpRepository
	mu     sync.Mutex
	nextID uint
	rsvps  map[uint]*model.RsvpResponse
}

func newMemRsvpRepo() *memRsvpRepo {
	return &memRsvpRepo{nextID: 1, rsvps: make(map[uint]*model.RsvpResponse)}
}

func (m *memRsvpRepo) Create(rsvp *model.RsvpResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rsvp.ID = m.nextID
	m.nextID++
	copied := *rsvp
	m.rsvps[rsvp.ID] = &copied
	return nil
}

func (m *memRsvpRepo) FindAll() ([]model.RsvpResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]model.RsvpResponse, 0, len(m.rsvps))
	for _, rsvp := range m.rsvps {
		all = append(all, *rsvp)
	}
	return all, nil
}

func (m *memRsvpRepo) FindByID(id uint) (*model.RsvpResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rsvp, ok := m.rsvps[id]; ok {
		copied := *rsvp
		return &copied, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (m *memRsvpRepo) Update(rsvp *model.RsvpResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *rsvp
	m.rsvps[rsvp.ID] = &copied
	return nil
}

func (m *memRsvpRepo) SoftDeleteByID(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rsvps, id)
	return nil
}

// stubGroupRepo 코드 -> 그룹 고정 매핑
type stubGroupRepo struct {
	mysql.GroupRepository
	groups map[string]*model.InvitationGroup
}

func (s *stubGroupRepo) FindByUniqueCode(code string) (*model.InvitationGroup, error) {
	if group, ok := s.groups[code]; ok {
		return group, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (s *stubGroupRepo) FindByID(id uint) (*model.InvitationGroup, error) {
	for _, group := range s.groups {
		if group.ID == id {
			return group, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (s *stubGroupRepo) FindAll() ([]model.InvitationGroup, error) {
	all := make([]model.InvitationGroup, 0, len(s.groups))
	for _, group := range s.groups {
		all = append(all, *group)
	}
	return all, nil
}

// recordPublisher 발행된 이벤트를 기록한다
type recordPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordPublisher) Publish(event notify.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordPublisher) Events() []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Event(nil), p.events...)
}

// recordSms 발송 호출을 채널로 알린다. 비동기 발송 대기용
type recordSms struct {
	sent chan string
}

func newRecordSms() *recordSms {
	return &recordSms{sent: make(chan string, 4)}
}

func (s *recordSms) SendRsvpConfirmation(telephone, responderName string) error {
	s.sent <- telephone
	return nil
}

func newTestService(cipherKey []byte) (*rsvpService, *memRsvpRepo, *recordPublisher, *recordSms) {
	openGroup := &model.InvitationGroup{
		GroupName:    "결혼식 하객",
		UniqueCode:   "wedding-abc",
		ShowRsvpForm: true,
	}
	openGroup.ID = 1
	closedGroup := &model.InvitationGroup{
		GroupName:    "혼주 지인",
		UniqueCode:   "parents-abc",
		ShowRsvpForm: false,
	}
	closedGroup.ID = 2

	repo := newMemRsvpRepo()
	repos := &mysql.Repositories{
		Group: &stubGroupRepo{groups: map[string]*model.InvitationGroup{
			"wedding-abc": openGroup,
			"parents-abc": closedGroup,
		}},
		Rsvp: repo,
	}
	publisher := &recordPublisher{}
	smsSvc := newRecordSms()
	return NewRsvpService(repos, publisher, smsSvc, cipherKey), repo, publisher, smsSvc
}

func TestSubmitRsvpSuccess(t *testing.T) {
	svc, _, publisher, _ := newTestService(nil)

	rsp, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: " 김철수 ",
		IsAttending:   true,
		TotalCount:    2,
		AttendeeNames: []string{"김철수", "이영희"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsp.ResponderName != "김철수" {
		t.Errorf("responderName = %q, 공백이 제거되지 않았다", rsp.ResponderName)
	}
	if rsp.GroupName != "결혼식 하객" {
		t.Errorf("groupName = %s", rsp.GroupName)
	}

	// 제출 성공 시 대시보드 알림 이벤트 1건
	events := publisher.Events()
	if len(events) != 1 || events[0].Type != notify.EventRsvpCreated {
		t.Errorf("events = %+v", events)
	}
}

func TestSubmitRsvpUnknownCode(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	_, err := svc.SubmitRsvp("no-such-code", request.RsvpRequest{ResponderName: "김철수"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("에러 코드 = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestSubmitRsvpFormDisabled(t *testing.T) {
	// RSVP 기능이 꺼진 그룹은 코드가 유효해도 제출을 거부한다
	svc, _, publisher, _ := newTestService(nil)

	_, err := svc.SubmitRsvp("parents-abc", request.RsvpRequest{ResponderName: "김철수"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("에러 코드 = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
	if len(publisher.Events()) != 0 {
		t.Error("거부된 제출이 알림을 발행했다")
	}
}

func TestSubmitRsvpNameTooShort(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	_, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{ResponderName: "철"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("에러 코드 = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
}

func TestSubmitRsvpNormalization(t *testing.T) {
	// 불참 제출은 저장 시점에 인원 0명/빈 이름 목록으로 정규화된다
	svc, repo, _, _ := newTestService(nil)

	rsp, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: "김철수",
		IsAttending:   false,
		TotalCount:    3,
		AttendeeNames: []string{"김철수", "이영희", "박민수"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsp.TotalCount != 0 || len(rsp.AttendeeNames) != 0 {
		t.Errorf("응답 = %+v, 정규화되지 않았다", rsp)
	}

	stored, err := repo.FindByID(rsp.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.TotalCount != 0 || len(stored.AttendeeNames) != 0 {
		t.Errorf("저장값 = %+v, 정규화되지 않았다", stored)
	}
}

func TestSubmitRsvpSendsConfirmationSms(t *testing.T) {
	svc, _, _, smsSvc := newTestService(nil)

	_, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: "김철수",
		IsAttending:   true,
		TotalCount:    1,
		AttendeeNames: []string{"김철수"},
		PhoneNumber:   "010-1234-5678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case telephone := <-smsSvc.sent:
		if telephone != "010-1234-5678" {
			t.Errorf("sms 수신 번호 = %s", telephone)
		}
	case <-time.After(time.Second):
		t.Error("확인 문자가 발송되지 않았다")
	}
}

func TestSubmitRsvpNoSmsWithoutPhone(t *testing.T) {
	svc, _, _, smsSvc := newTestService(nil)

	_, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: "김철수",
		IsAttending:   false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-smsSvc.sent:
		t.Error("번호 없는 제출에 문자가 발송되었다")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPhoneEncryptionRoundTrip(t *testing.T) {
	// 키가 설정되면 저장값은 암호문, 조회 시 평문으로 복원된다
	key := []byte("0123456789abcdef0123456789abcdef")
	svc, repo, _, _ := newTestService(key)

	rsp, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: "김철수",
		IsAttending:   false,
		PhoneNumber:   "010-1234-5678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsp.PhoneNumber != "010-1234-5678" {
		t.Errorf("응답 번호 = %s, 평문이어야 한다", rsp.PhoneNumber)
	}

	stored, err := repo.FindByID(rsp.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.PhoneNumber == "010-1234-5678" || stored.PhoneNumber == "" {
		t.Errorf("저장 번호 = %q, 암호화되지 않았다", stored.PhoneNumber)
	}

	all, err := svc.GetAllRsvps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 || all[0].PhoneNumber != "010-1234-5678" {
		t.Errorf("목록 = %+v, 복호화 실패", all)
	}
}

func TestUpdateRsvpAppliesSameRules(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	created, err := svc.SubmitRsvp("wedding-abc", request.RsvpRequest{
		ResponderName: "김철수",
		IsAttending:   true,
		TotalCount:    2,
		AttendeeNames: []string{"김철수", "이영희"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 참석 -> 불참 수정도 같은 정규화 규칙을 탄다
	updated, err := svc.UpdateRsvp(created.Id, request.UpdateRsvpRequest{
		ResponderName: "김철수",
		IsAttending:   false,
		TotalCount:    2,
		AttendeeNames: []string{"김철수", "이영희"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TotalCount != 0 || len(updated.AttendeeNames) != 0 {
		t.Errorf("수정 결과 = %+v, 정규화되지 않았다", updated)
	}
}

func TestDeleteRsvpNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	err := svc.DeleteRsvp(999)
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("에러 코드 = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}
