package client

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"wedding_invitation_server/pkg/constants"
	"wedding_invitation_server/pkg/errorx"
)

// RSVP 수정의 동기화 상태
// clean -> optimistic -> syncing -> clean
//                              \-> rolledBack (실패)
const (
	SyncStateClean      = "clean"      // 서버와 일치
	SyncStateOptimistic = "optimistic" // 로컬 선반영, 서버 요청 전
	SyncStateSyncing    = "syncing"    // 서버 응답 대기/재조회 중
	SyncStateRolledBack = "rolledBack" // 실패로 롤백됨
)

// refetchDelay 낙관적 수정 후 서버 기준 재조회까지의 지연
const refetchDelay = 500 * time.Millisecond

// uniqueCodeRegexp 초대 코드 형식, 네트워크 요청 전에 검증한다
var uniqueCodeRegexp = regexp.MustCompile(constants.UniqueCodePattern)

// ErrDeleteCancelled 사용자가 강제 삭제 확인을 거부
var ErrDeleteCancelled = errors.New("삭제가 취소되었습니다")

// Dashboard 관리자 대시보드 컨트롤러
// 목록 상태를 들고 낙관적 수정/롤백과 2단계 그룹 삭제를 관장한다
type Dashboard struct {
	client *Client

	mu     sync.Mutex
	groups []Group
	rsvps  []Rsvp
	admins []Admin

	syncState string
	// 롤백용 백업, optimistic/syncing 동안만 유효
	rsvpBackup []Rsvp
}

// NewDashboard 대시보드 컨트롤러 생성
func NewDashboard(c *Client) *Dashboard {
	return &Dashboard{
		client:    c,
		syncState: SyncStateClean,
	}
}

// SyncState 현재 동기화 상태
func (d *Dashboard) SyncState() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.syncState
}

// Groups 현재 그룹 목록 스냅샷
func (d *Dashboard) Groups() []Group {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Group, len(d.groups))
	copy(out, d.groups)
	return out
}

// Rsvps 현재 RSVP 목록 스냅샷
func (d *Dashboard) Rsvps() []Rsvp {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Rsvp, len(d.rsvps))
	copy(out, d.rsvps)
	return out
}

// Admins 현재 관리자 목록 스냅샷
func (d *Dashboard) Admins() []Admin {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Admin, len(d.admins))
	copy(out, d.admins)
	return out
}

// Load 초기 데이터 병렬 로드 (그룹, RSVP, 관리자)
// 하나라도 실패하면 첫 에러를 반환한다
func (d *Dashboard) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var groupErr, rsvpErr, adminErr error
	var groups []Group
	var rsvps []Rsvp
	var admins []Admin

	wg.Add(3)
	go func() {
		defer wg.Done()
		groups, groupErr = d.client.GetAllGroups(ctx)
	}()
	go func() {
		defer wg.Done()
		rsvps, rsvpErr = d.client.GetAllRsvps(ctx)
	}()
	go func() {
		defer wg.Done()
		admins, adminErr = d.client.GetAdminList(ctx)
	}()
	wg.Wait()

	for _, err := range []error{groupErr, rsvpErr, adminErr} {
		if err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.groups = groups
	d.rsvps = rsvps
	d.admins = admins
	d.syncState = SyncStateClean
	d.mu.Unlock()
	return nil
}

// UpdateRsvpOptimistic RSVP 낙관적 수정
// 순서: 로컬 선반영 -> 서버 수정 -> 지연 후 서버 기준 재조회
// 실패 시 백업을 복원하고 재조회로 서버 상태에 맞춘다
func (d *Dashboard) UpdateRsvpOptimistic(ctx context.Context, id int64, req RsvpSubmitRequest) error {
	d.mu.Lock()
	// 1. 백업 후 로컬 선반영
	d.rsvpBackup = make([]Rsvp, len(d.rsvps))
	copy(d.rsvpBackup, d.rsvps)
	for i := range d.rsvps {
		if d.rsvps[i].Id == id {
			d.rsvps[i].ResponderName = req.ResponderName
			d.rsvps[i].IsAttending = req.IsAttending
			d.rsvps[i].TotalCount = req.TotalCount
			d.rsvps[i].AttendeeNames = req.AttendeeNames
			d.rsvps[i].PhoneNumber = req.PhoneNumber
			d.rsvps[i].Message = req.Message
			break
		}
	}
	d.syncState = SyncStateOptimistic
	d.mu.Unlock()

	// 2. 서버 수정
	d.setSyncState(SyncStateSyncing)
	if _, err := d.client.UpdateRsvp(ctx, id, req); err != nil {
		// 3a. 실패: 백업 복원 + 서버 기준 재조회
		d.mu.Lock()
		d.rsvps = d.rsvpBackup
		d.rsvpBackup = nil
		d.syncState = SyncStateRolledBack
		d.mu.Unlock()
		d.refetchRsvps(ctx)
		return err
	}

	// 3b. 성공: 잠시 뒤 서버 기준으로 재조회해 정합성을 맞춘다
	select {
	case <-time.After(refetchDelay):
	case <-ctx.Done():
	}
	d.refetchRsvps(ctx)

	d.mu.Lock()
	d.rsvpBackup = nil
	d.syncState = SyncStateClean
	d.mu.Unlock()
	return nil
}

// DeleteRsvp RSVP 삭제 후 목록 재조회
func (d *Dashboard) DeleteRsvp(ctx context.Context, id int64) error {
	if err := d.client.DeleteRsvp(ctx, id); err != nil {
		return err
	}
	d.refetchRsvps(ctx)
	return nil
}

// DeleteGroup 그룹 2단계 삭제
// force 없이 삭제를 시도하고, 응답이 남아 있다는 코드가 오면 confirm 콜백으로
// 사용자에게 묻는다. 명시적으로 확인한 경우에만 force=true 로 재시도한다
// confirm 은 서버가 내려준 경고 메시지를 받는다
func (d *Dashboard) DeleteGroup(ctx context.Context, id int64, confirm func(msg string) bool) error {
	err := d.client.DeleteGroup(ctx, id, false)
	if err == nil {
		d.refetchGroups(ctx)
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != errorx.CodeGroupHasResponses {
		return err
	}

	// 응답이 남아 있는 그룹, 사용자 확인 없이는 절대 강제 삭제하지 않는다
	if confirm == nil || !confirm(apiErr.Msg) {
		return ErrDeleteCancelled
	}

	if err := d.client.DeleteGroup(ctx, id, true); err != nil {
		return err
	}
	d.refetchGroups(ctx)
	d.refetchRsvps(ctx) // 응답도 함께 삭제되었다
	return nil
}

// CreateGroup 그룹 생성, 코드 형식은 네트워크 요청 전에 거른다
func (d *Dashboard) CreateGroup(ctx context.Context, req GroupCreateRequest) (*Group, error) {
	if req.UniqueCode != "" && !uniqueCodeRegexp.MatchString(req.UniqueCode) {
		return nil, errors.New("초대 코드는 3~20자의 영문/숫자/하이픈만 가능합니다")
	}
	group, err := d.client.CreateGroup(ctx, req)
	if err != nil {
		return nil, err
	}
	d.refetchGroups(ctx)
	return group, nil
}

// UpdateGroup 그룹 수정, 코드 변경 시 형식을 먼저 검증한다
// 중복 코드 에러(CodeDuplicateCode)는 일반 실패와 구분해 그대로 반환된다
func (d *Dashboard) UpdateGroup(ctx context.Context, id int64, req GroupUpdateRequest) (*Group, error) {
	if req.UniqueCode != nil && !uniqueCodeRegexp.MatchString(*req.UniqueCode) {
		return nil, errors.New("초대 코드는 3~20자의 영문/숫자/하이픈만 가능합니다")
	}
	group, err := d.client.UpdateGroup(ctx, id, req)
	if err != nil {
		return nil, err
	}
	d.refetchGroups(ctx)
	return group, nil
}

// setSyncState 동기화 상태 변경
func (d *Dashboard) setSyncState(state string) {
	d.mu.Lock()
	d.syncState = state
	d.mu.Unlock()
}

// refetchRsvps RSVP 목록 서버 기준 재조회, 실패는 무시 (기존 목록 유지)
func (d *Dashboard) refetchRsvps(ctx context.Context) {
	rsvps, err := d.client.GetAllRsvps(ctx)
	if err != nil {
		return
	}
	d.mu.Lock()
	d.rsvps = rsvps
	d.mu.Unlock()
}

// refetchGroups 그룹 목록 서버 기준 재조회, 실패는 무시
func (d *Dashboard) refetchGroups(ctx context.Context) {
	groups, err := d.client.GetAllGroups(ctx)
	if err != nil {
		return
	}
	d.mu.Lock()
	d.groups = groups
	d.mu.Unlock()
}
