package client

import (
	"context"
	"errors"
	"strings"

	"wedding_invitation_server/pkg/rsvprule"
)

// RSVP 폼 상태
// editing -> submitting -> submitted (종료)
// 제출 실패 시 editing 으로 복귀한다
const (
	FormStateEditing    = "editing"
	FormStateSubmitting = "submitting"
	FormStateSubmitted  = "submitted"
)

// ErrAlreadySubmitted 완료된 폼의 재제출 시도
var ErrAlreadySubmitted = errors.New("이미 제출이 완료되었습니다")

// RsvpForm 하객 RSVP 제출 폼 컨트롤러
// 단일 goroutine 에서 사용한다. 제출 중 재호출만 no-op 으로 막는다
type RsvpForm struct {
	client *Client
	code   string // 초대 코드

	state    string
	lastErr  string // 마지막 검증/제출 에러 메시지
	result   *Rsvp  // 제출 성공 결과

	// 폼 입력 값
	ResponderName string
	IsAttending   bool
	TotalCount    int
	AttendeeNames []string
	PhoneNumber   string
	Message       string
}

// NewRsvpForm 폼 컨트롤러 생성
func NewRsvpForm(c *Client, code string) *RsvpForm {
	return &RsvpForm{
		client:      c,
		code:        code,
		state:       FormStateEditing,
		IsAttending: true,
		TotalCount:  1,
	}
}

// State 현재 폼 상태
func (f *RsvpForm) State() string {
	return f.state
}

// LastError 마지막 에러 메시지, 없으면 빈 문자열
func (f *RsvpForm) LastError() string {
	return f.lastErr
}

// Result 제출 성공 결과, submitted 상태에서만 non-nil
func (f *RsvpForm) Result() *Rsvp {
	return f.result
}

// Validate 제출 전 클라이언트 검증
// 이름 2자 이상, 참석이면 인원 1~10명에 빈 이름 불가
func (f *RsvpForm) Validate() error {
	if !rsvprule.ValidateResponderName(f.ResponderName) {
		return errors.New("이름은 2자 이상 입력해주세요")
	}
	if f.IsAttending {
		if f.TotalCount < 1 || f.TotalCount > rsvprule.MaxTotalCount {
			return errors.New("참석 인원은 1명 이상 10명 이하로 입력해주세요")
		}
		names := f.AttendeeNames
		if len(names) != f.TotalCount || rsvprule.HasEmptyName(names) {
			return errors.New("참석자 이름을 모두 입력해주세요")
		}
	}
	return nil
}

// buildPayload 서버로 보낼 payload 구성
// 불참이면 인원/이름을 비워 보낸다 (폼에 남은 값과 무관)
func (f *RsvpForm) buildPayload() RsvpSubmitRequest {
	totalCount, names := rsvprule.Normalize(f.IsAttending, f.TotalCount, f.AttendeeNames)
	return RsvpSubmitRequest{
		ResponderName: strings.TrimSpace(f.ResponderName),
		IsAttending:   f.IsAttending,
		TotalCount:    totalCount,
		AttendeeNames: names,
		PhoneNumber:   strings.TrimSpace(f.PhoneNumber),
		Message:       strings.TrimSpace(f.Message),
	}
}

// Submit 폼 제출
//   - submitting 중의 재호출은 no-op (중복 제출 방지)
//   - submitted 는 종료 상태, 재제출 불가
//   - 검증/요청 실패 시 editing 으로 복귀하고 에러를 보관한다
//   - 재시도는 사용자가 다시 Submit 을 호출할 때만 일어난다
func (f *RsvpForm) Submit(ctx context.Context) error {
	switch f.state {
	case FormStateSubmitting:
		return nil
	case FormStateSubmitted:
		return ErrAlreadySubmitted
	}

	if err := f.Validate(); err != nil {
		f.lastErr = err.Error()
		return err
	}

	f.state = FormStateSubmitting
	f.lastErr = ""

	result, err := f.client.SubmitRsvp(ctx, f.code, f.buildPayload())
	if err != nil {
		f.state = FormStateEditing
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			f.lastErr = apiErr.Msg
		} else {
			f.lastErr = "제출에 실패했습니다. 잠시 후 다시 시도해주세요"
		}
		return err
	}

	f.state = FormStateSubmitted
	f.result = result
	return nil
}
