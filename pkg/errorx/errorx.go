package errorx

import (
	"errors"
	"fmt"
)

// CodeError 비즈니스 에러 코드를 가진 커스텀 에러
// error 인터페이스를 구현하며 %w 래핑과 errors.Is/errors.As 를 지원한다
type CodeError struct {
	Code  int    // 비즈니스 에러 코드
	Msg   string // 에러 메시지
	cause error  // 래핑된 하위 에러
}

// Error 표준 error 인터페이스 구현
// 하위 에러가 있으면 "메시지: 하위 에러" 형식으로 반환한다
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap errors.Is/errors.As 추적을 지원한다
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 새로운 CodeError 생성
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 포맷 메시지를 가진 CodeError 생성
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 하위 에러를 래핑하여 비즈니스 코드와 메시지를 부여한다
// 사용 예: errorx.Wrap(err, CodeNotFound, "그룹을 찾을 수 없습니다")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 하위 에러를 래핑, 포맷 메시지 지원
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 에러에서 비즈니스 코드를 추출한다. CodeError 가 아니면 기본 코드 반환
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// 공통 비즈니스 상태 코드
const (
	CodeSuccess      = 1000 // 성공
	CodeInvalidParam = 1001 // 요청 파라미터 오류
	CodeServerBusy   = 1005 // 서버 혼잡
	CodeUnauthorized = 1006 // 미인증/인증 실패
	CodeNotFound     = 1008 // 리소스 없음
	CodeDBError      = 1010 // 데이터베이스 오류
	CodeCacheError   = 1011 // 캐시 오류
)

// 도메인 비즈니스 상태 코드
// 원본 프런트는 에러 메시지 부분 문자열("409", "이미 존재")로 분기했으나
// 여기서는 구조화된 코드로 구분한다
const (
	CodeDuplicateCode      = 2001 // 초대 코드 중복
	CodeDuplicateUsername  = 2002 // 관리자 아이디 중복
	CodeGroupHasResponses  = 2003 // 그룹에 RSVP 응답 존재 (force 없이 삭제 불가)
	CodeInvalidCredentials = 2004 // 아이디 또는 비밀번호 불일치
	CodeInvalidCodeFormat  = 2005 // 초대 코드 형식 오류
)

// 자주 쓰는 에러 인스턴스
// 직접 반환하거나 errors.Is 비교에 사용한다
var (
	ErrInvalidParam = New(CodeInvalidParam, "요청 파라미터가 올바르지 않습니다")
	ErrServerBusy   = New(CodeServerBusy, "잠시 후 다시 시도해주세요")
)

// IsNotFound 에러가 "없음" 계열인지 확인한다 (gorm.ErrRecordNotFound 포함)
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
