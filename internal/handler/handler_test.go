package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/handler"
	"wedding_invitation_server/internal/service"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/feature"
)

// 서비스 스텁. 미들웨어 없이 핸들러 <-> 응답 봉투 동작만 검증한다

type stubInvitationService struct{}

func (s stubInvitationService) GetInvitation(code string) (*respond.InvitationRespond, error) {
	if code == "unknown" {
		return nil, errorx.New(errorx.CodeNotFound, "유효하지 않은 초대 코드입니다")
	}
	return &respond.InvitationRespond{
		GroupInfo: respond.InvitationGroupInfo{GroupName: "직장 동료"},
		Sections:  []feature.Section{feature.SectionGreeting},
	}, nil
}

type stubGroupService struct {
	// forceCalls DeleteGroup 에 전달된 force 값 기록
	forceCalls []bool
}

func (s *stubGroupService) CreateGroup(req request.CreateGroupRequest) (*respond.GroupRespond, error) {
	if req.UniqueCode == "x" {
		return nil, errorx.New(errorx.CodeInvalidCodeFormat, "초대 코드는 3~20자의 영문/숫자/하이픈만 가능합니다")
	}
	return &respond.GroupRespond{Id: 1, GroupName: req.GroupName, UniqueCode: req.UniqueCode}, nil
}
func (s *stubGroupService) GetAllGroups() ([]respond.GroupRespond, error) {
	return []respond.GroupRespond{}, nil
}
func (s *stubGroupService) UpdateGroup(id uint, req request.UpdateGroupRequest) (*respond.GroupRespond, error) {
	return &respond.GroupRespond{Id: id}, nil
}
func (s *stubGroupService) DeleteGroup(id uint, force bool) error {
	s.forceCalls = append(s.forceCalls, force)
	if !force {
		return errorx.Newf(errorx.CodeGroupHasResponses, "이 그룹에는 RSVP 응답 %d건이 있습니다. 강제 삭제를 확인해주세요", 3)
	}
	return nil
}

type stubRsvpService struct{}

func (s stubRsvpService) SubmitRsvp(code string, req request.RsvpRequest) (*respond.RsvpRespond, error) {
	return &respond.RsvpRespond{Id: 10, ResponderName: req.ResponderName}, nil
}
func (s stubRsvpService) GetAllRsvps() ([]respond.RsvpRespond, error) {
	return []respond.RsvpRespond{}, nil
}
func (s stubRsvpService) UpdateRsvp(id uint, req request.UpdateRsvpRequest) (*respond.RsvpRespond, error) {
	return &respond.RsvpRespond{Id: id}, nil
}
func (s stubRsvpService) DeleteRsvp(id uint) error { return nil }

type stubAdminService struct{}

func (s stubAdminService) Login(req request.AdminLoginRequest) (*respond.LoginRespond, error) {
	if req.Password != "correct-password" {
		return nil, errorx.New(errorx.CodeInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
	}
	return &respond.LoginRespond{AccessToken: "at", RefreshToken: "rt"}, nil
}
func (s stubAdminService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{AccessToken: "at2"}, nil
}
func (s stubAdminService) CreateAdmin(req request.CreateAdminRequest) (*respond.AdminRespond, error) {
	return &respond.AdminRespond{Id: 2, Username: req.Username}, nil
}
func (s stubAdminService) GetAdminList() ([]respond.AdminRespond, error) {
	return []respond.AdminRespond{}, nil
}

type stubWeddingService struct{}

func (s stubWeddingService) GetWeddingInfo() (*respond.WeddingInfoRespond, error) {
	return &respond.WeddingInfoRespond{}, nil
}
func (s stubWeddingService) UpdateWeddingInfo(req request.UpdateWeddingInfoRequest) (*respond.WeddingInfoRespond, error) {
	return &respond.WeddingInfoRespond{}, nil
}
func (s stubWeddingService) GetGallery() ([]respond.GalleryImageRespond, error) {
	return []respond.GalleryImageRespond{}, nil
}
func (s stubWeddingService) CreateGalleryImage(req request.CreateGalleryImageRequest) (*respond.GalleryImageRespond, error) {
	return &respond.GalleryImageRespond{}, nil
}
func (s stubWeddingService) DeleteGalleryImage(id uint) error { return nil }

// newTestEngine 미들웨어 없이 라우트만 붙인 테스트 엔진
func newTestEngine(t *testing.T, groupSvc *stubGroupService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("en"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	handlers := handler.NewHandlers(&service.Services{
		Invitation: stubInvitationService{},
		Group:      groupSvc,
		Rsvp:       stubRsvpService{},
		Admin:      stubAdminService{},
		Wedding:    stubWeddingService{},
	})

	r := gin.New()
	r.GET("/invitation/:code", handlers.Invitation.GetInvitation)
	r.POST("/rsvp/:code", handlers.Rsvp.SubmitRsvp)
	r.POST("/groups", handlers.Group.CreateGroup)
	r.DELETE("/groups/:id", handlers.Group.DeleteGroup)
	r.POST("/admin/login", handlers.Admin.Login)
	return r
}

// doRequest 요청 실행 후 응답 봉투 파싱
func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) (int, handler.ResponseData) {
	t.Helper()
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env handler.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, w.Body.String())
	}
	return w.Code, env
}

func TestGetInvitation(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	status, env := doRequest(t, r, http.MethodGet, "/invitation/wedding-abc", nil)
	if status != http.StatusOK || env.Code != errorx.CodeSuccess {
		t.Fatalf("status=%d code=%v, want 200/%d", status, env.Code, errorx.CodeSuccess)
	}

	_, env = doRequest(t, r, http.MethodGet, "/invitation/unknown", nil)
	if env.Code != errorx.CodeNotFound {
		t.Errorf("알 수 없는 코드에 code=%v, want %d", env.Code, errorx.CodeNotFound)
	}
}

func TestSubmitRsvp(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	status, env := doRequest(t, r, http.MethodPost, "/rsvp/wedding-abc", map[string]any{
		"responderName": "김철수",
		"isAttending":   true,
		"totalCount":    2,
		"attendeeNames": []string{"김철수", "이영희"},
	})
	if status != http.StatusOK || env.Code != errorx.CodeSuccess {
		t.Fatalf("status=%d code=%v, want 200/%d", status, env.Code, errorx.CodeSuccess)
	}
}

func TestSubmitRsvpBindingError(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	// responderName 누락 -> validator 에러
	_, env := doRequest(t, r, http.MethodPost, "/rsvp/wedding-abc", map[string]any{
		"isAttending": true,
	})
	if env.Code != errorx.CodeInvalidParam {
		t.Errorf("code=%v, want %d", env.Code, errorx.CodeInvalidParam)
	}
}

func TestCreateGroupInvalidCode(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	_, env := doRequest(t, r, http.MethodPost, "/groups", map[string]any{
		"groupName":  "결혼식 하객",
		"uniqueCode": "x",
	})
	if env.Code != errorx.CodeInvalidCodeFormat {
		t.Errorf("code=%v, want %d", env.Code, errorx.CodeInvalidCodeFormat)
	}
}

func TestDeleteGroupTwoPhase(t *testing.T) {
	groupSvc := &stubGroupService{}
	r := newTestEngine(t, groupSvc)

	// 1단계: force 없이 삭제 -> 응답 존재 코드로 거부
	_, env := doRequest(t, r, http.MethodDelete, "/groups/1", nil)
	if env.Code != errorx.CodeGroupHasResponses {
		t.Fatalf("code=%v, want %d", env.Code, errorx.CodeGroupHasResponses)
	}

	// 2단계: force=true 로 재시도 -> 성공
	_, env = doRequest(t, r, http.MethodDelete, "/groups/1?force=true", nil)
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("force 삭제 code=%v, want %d", env.Code, errorx.CodeSuccess)
	}

	want := []bool{false, true}
	if len(groupSvc.forceCalls) != 2 || groupSvc.forceCalls[0] != want[0] || groupSvc.forceCalls[1] != want[1] {
		t.Errorf("forceCalls=%v, want %v", groupSvc.forceCalls, want)
	}
}

func TestDeleteGroupInvalidID(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	_, env := doRequest(t, r, http.MethodDelete, "/groups/abc", nil)
	if env.Code != errorx.CodeInvalidParam {
		t.Errorf("code=%v, want %d", env.Code, errorx.CodeInvalidParam)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	r := newTestEngine(t, &stubGroupService{})

	_, env := doRequest(t, r, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong-password",
	})
	if env.Code != errorx.CodeInvalidCredentials {
		t.Errorf("code=%v, want %d", env.Code, errorx.CodeInvalidCredentials)
	}
}
