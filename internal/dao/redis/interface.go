// Package redis 캐시 서비스 인터페이스 정의
// Service 레이어는 구체 Redis 구현이 아닌 이 인터페이스에 의존한다
package redis

import (
	"context"
	"time"
)

// CacheService 캐시 기본 연산 인터페이스
type CacheService interface {
	// Set 키-값 저장, 만료 시간 지정
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 키의 값 조회 (키가 없으면 빈 문자열과 nil 반환)
	Get(ctx context.Context, key string) (string, error)
	// Delete 키 삭제 (없어도 에러 아님)
	Delete(ctx context.Context, key string) error
	// DeleteByPattern 패턴과 일치하는 모든 키 삭제
	DeleteByPattern(ctx context.Context, pattern string) error
}

// AsyncCacheService 비동기 캐시 작업 제출이 가능한 캐시 서비스
// 캐시 갱신/무효화를 요청 처리 경로 밖에서 수행할 때 사용한다
type AsyncCacheService interface {
	CacheService
	// SubmitTask 비동기 캐시 작업 제출
	SubmitTask(action func())
}
