package invitation

import (
	"context"
	"sync"
	"testing"
	"time"

	"wedding_invitation_server/internal/dao/mysql"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/feature"
)

// fakeCache 동기 실행 인메모리 캐시
type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string)
	return nil
}

// SubmitTask 테스트에서는 동기로 실행해 타이밍 의존을 없앤다
func (f *fakeCache) SubmitTask(action func()) {
	action()
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

// stubWeddingRepo 단일 예식 정보, nil 이면 미등록 상태
type stubWeddingRepo struct {
	mysql.WeddingInfoRepository
	info *model.WeddingInfo
}

func (s *stubWeddingRepo) Get() (*model.WeddingInfo, error) {
	if s.info == nil {
		return nil, errorx.New(errorx.CodeNotFound, "record not found")
	}
	return s.info, nil
}

func newTestService(groups map[string]*model.InvitationGroup, info *model.WeddingInfo) (*invitationService, *fakeCache) {
	cache := newFakeCache()
	repos := &mysql.Repositories{
		Group:       &stubGroupRepo{groups: groups},
		WeddingInfo: &stubWeddingRepo{info: info},
	}
	return NewInvitationService(repos, cache), cache
}

func sampleGroup() *model.InvitationGroup {
	group := &model.InvitationGroup{
		GroupName:             "결혼식 하객",
		GroupType:             model.GroupTypeWeddingGuest,
		UniqueCode:            "wedding-abc",
		ShowRsvpForm:          true,
		ShowVenueInfo:         true,
		ShowAccountInfo:       true,
		VisibleAccountIndices: []int{0, 1},
	}
	group.ID = 1
	return group
}

func sampleWeddingInfo() *model.WeddingInfo {
	info := &model.WeddingInfo{
		GroomName:       "김신랑",
		BrideName:       "이신부",
		GreetingMessage: "공통 인사말",
		AccountInfo:     []string{"신랑 계좌", "신부 계좌", "혼주 계좌"},
	}
	info.ID = model.WeddingInfoID
	return info
}

func TestGetInvitationUnknownCode(t *testing.T) {
	svc, _ := newTestService(map[string]*model.InvitationGroup{}, nil)

	_, err := svc.GetInvitation("no-such-code")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestGetInvitationComposition(t *testing.T) {
	svc, _ := newTestService(
		map[string]*model.InvitationGroup{"wedding-abc": sampleGroup()},
		sampleWeddingInfo(),
	)

	rsp, err := svc.GetInvitation("wedding-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 오시는 길 + 계좌 둘 다 켜짐 -> 세 탭
	if len(rsp.VenuePlan.Tabs) != 3 || rsp.VenuePlan.DefaultTab != feature.TabDirections {
		t.Errorf("venuePlan = %+v", rsp.VenuePlan)
	}
	// 계좌는 그룹 설정 인덱스만 추린다
	if len(rsp.AccountInfo) != 2 || rsp.AccountInfo[0] != "신랑 계좌" {
		t.Errorf("accountInfo = %v", rsp.AccountInfo)
	}
	// 그룹 인사말이 없으면 공통 인사말로 대체
	if rsp.GroupInfo.GreetingMessage != "공통 인사말" {
		t.Errorf("greeting = %s", rsp.GroupInfo.GreetingMessage)
	}
	// 예식 정보 원본의 계좌 목록은 노출하지 않는다
	if rsp.WeddingInfo == nil {
		t.Fatal("weddingInfo is nil")
	}
	if len(rsp.WeddingInfo.AccountInfo) != 0 {
		t.Errorf("weddingInfo.accountInfo = %v, 원본이 노출되었다", rsp.WeddingInfo.AccountInfo)
	}
}

func TestGetInvitationWithoutWeddingInfo(t *testing.T) {
	// 예식 정보 미등록은 에러가 아닌 빈 상태다
	svc, _ := newTestService(
		map[string]*model.InvitationGroup{"wedding-abc": sampleGroup()},
		nil,
	)

	rsp, err := svc.GetInvitation("wedding-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsp.WeddingInfo != nil {
		t.Errorf("weddingInfo = %+v, want nil", rsp.WeddingInfo)
	}
}

func TestGetInvitationCacheRefill(t *testing.T) {
	svc, cache := newTestService(
		map[string]*model.InvitationGroup{"wedding-abc": sampleGroup()},
		sampleWeddingInfo(),
	)

	if _, err := svc.GetInvitation("wedding-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, _ := cache.Get(context.Background(), CacheKeyPrefix+"wedding-abc")
	if cached == "" {
		t.Error("조회 후 캐시가 채워지지 않았다")
	}
}
