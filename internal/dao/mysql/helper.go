// Package mysql 데이터 접근 계층
// Repository 패턴으로 데이터 접근 로직을 비즈니스 로직과 분리한다
package mysql

import (
	"errors"

	"gorm.io/gorm"

	"wedding_invitation_server/pkg/errorx"
)

// wrapDBError 데이터베이스 에러를 비즈니스 코드로 래핑한다
//   - ErrRecordNotFound -> CodeNotFound
//   - 그 외 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 포맷 메시지를 지원하는 wrapDBError
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}
