package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"wedding_invitation_server/pkg/errorx"
)

// dashboardServer 대시보드 시나리오용 가짜 서버
type dashboardServer struct {
	*httptest.Server
	updateFails   atomic.Bool
	deleteCalls   []string // DELETE /groups 요청 경로(쿼리 포함) 기록
	updatePayload RsvpSubmitRequest
}

func newDashboardServer(t *testing.T) *dashboardServer {
	t.Helper()
	ds := &dashboardServer{}
	ds.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/groups":
			writeEnvelope(w, errorx.CodeSuccess, "success", []map[string]any{
				{"id": 1, "groupName": "결혼식 하객", "uniqueCode": "wedding-abc"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/rsvp/list":
			writeEnvelope(w, errorx.CodeSuccess, "success", []map[string]any{
				{"id": 10, "groupId": 1, "responderName": "김철수", "isAttending": true, "totalCount": 2},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/admin/list":
			writeEnvelope(w, errorx.CodeSuccess, "success", []map[string]any{
				{"id": 1, "username": "admin", "role": "super_admin"},
			})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/rsvp/"):
			_ = json.NewDecoder(r.Body).Decode(&ds.updatePayload)
			if ds.updateFails.Load() {
				writeEnvelope(w, errorx.CodeServerBusy, "잠시 후 다시 시도해주세요", nil)
				return
			}
			writeEnvelope(w, errorx.CodeSuccess, "success", map[string]any{"id": 10})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/groups/"):
			ds.deleteCalls = append(ds.deleteCalls, r.URL.RequestURI())
			if r.URL.Query().Get("force") != "true" {
				writeEnvelope(w, errorx.CodeGroupHasResponses, "이 그룹에는 RSVP 응답 3건이 있습니다. 강제 삭제를 확인해주세요", nil)
				return
			}
			writeEnvelope(w, errorx.CodeSuccess, "success", nil)
		default:
			writeEnvelope(w, errorx.CodeNotFound, "not found", nil)
		}
	}))
	return ds
}

func TestDashboardLoad(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(d.Groups()) != 1 || len(d.Rsvps()) != 1 || len(d.Admins()) != 1 {
		t.Errorf("groups=%d rsvps=%d admins=%d, want 1/1/1",
			len(d.Groups()), len(d.Rsvps()), len(d.Admins()))
	}
	if d.SyncState() != SyncStateClean {
		t.Errorf("syncState = %s, want clean", d.SyncState())
	}
}

func TestDashboardOptimisticUpdateSuccess(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	req := RsvpSubmitRequest{
		ResponderName: "김철수",
		IsAttending:   false,
		TotalCount:    0,
		AttendeeNames: []string{},
	}
	if err := d.UpdateRsvpOptimistic(context.Background(), 10, req); err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.SyncState() != SyncStateClean {
		t.Errorf("syncState = %s, want clean", d.SyncState())
	}
	if srv.updatePayload.ResponderName != "김철수" {
		t.Errorf("서버로 전달된 payload = %+v", srv.updatePayload)
	}
}

func TestDashboardOptimisticUpdateRollback(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	srv.updateFails.Store(true)

	req := RsvpSubmitRequest{ResponderName: "변경된이름", IsAttending: true, TotalCount: 5}
	err := d.UpdateRsvpOptimistic(context.Background(), 10, req)
	if err == nil {
		t.Fatal("수정 실패를 기대했다")
	}
	if d.SyncState() != SyncStateRolledBack {
		t.Errorf("syncState = %s, want rolledBack", d.SyncState())
	}

	// 롤백 + 서버 기준 재조회로 원래 값이 복원된다
	rsvps := d.Rsvps()
	if len(rsvps) != 1 || rsvps[0].ResponderName != "김철수" {
		t.Errorf("rsvps = %+v, 롤백되지 않았다", rsvps)
	}
}

func TestDashboardDeleteGroupConfirmThenForce(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))

	var confirmMsg string
	err := d.DeleteGroup(context.Background(), 1, func(msg string) bool {
		confirmMsg = msg
		return true
	})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if confirmMsg == "" {
		t.Error("확인 콜백이 서버 경고 메시지를 받지 못했다")
	}
	// force 없는 시도 후 force=true 재시도, 총 2회
	if len(srv.deleteCalls) != 2 {
		t.Fatalf("deleteCalls = %v, want 2회", srv.deleteCalls)
	}
	if strings.Contains(srv.deleteCalls[0], "force=true") {
		t.Error("첫 시도부터 force 가 붙었다")
	}
	if !strings.Contains(srv.deleteCalls[1], "force=true") {
		t.Error("확인 후 재시도에 force 가 없다")
	}
}

func TestDashboardDeleteGroupCancelled(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))

	err := d.DeleteGroup(context.Background(), 1, func(msg string) bool {
		return false // 사용자가 거부
	})
	if !errors.Is(err, ErrDeleteCancelled) {
		t.Errorf("err = %v, want ErrDeleteCancelled", err)
	}
	// 거부하면 force 재시도는 절대 없다
	if len(srv.deleteCalls) != 1 {
		t.Errorf("deleteCalls = %v, want 1회", srv.deleteCalls)
	}
}

func TestDashboardUniqueCodeValidation(t *testing.T) {
	srv := newDashboardServer(t)
	defer srv.Close()

	d := NewDashboard(New(srv.URL))

	// 형식이 틀린 코드는 네트워크 요청 전에 거른다
	badCode := "한글코드!"
	_, err := d.UpdateGroup(context.Background(), 1, GroupUpdateRequest{UniqueCode: &badCode})
	if err == nil {
		t.Fatal("형식 검증 에러를 기대했다")
	}

	_, err = d.CreateGroup(context.Background(), GroupCreateRequest{GroupName: "하객", UniqueCode: "ab"})
	if err == nil {
		t.Fatal("3자 미만 코드가 통과되었다")
	}
}
