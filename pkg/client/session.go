package client

import (
	"encoding/json"
	"time"
)

// 저장 키, 기존 웹 클라이언트의 localStorage 키와 호환을 유지한다
const (
	storeKeyToken = "adminToken"
	storeKeyUser  = "adminUser"
)

// sessionExpiryMargin 만료 직전의 토큰은 미리 무효로 취급한다
const sessionExpiryMargin = 60 * time.Second

// Session 관리자 인증 세션
// 전역 상태 대신 명시적으로 전달한다
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"` // unix milli
	User         Admin  `json:"user"`
}

// NewSession 로그인 응답으로 세션 생성
func NewSession(result *LoginResult) *Session {
	return &Session{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		User:         result.User,
	}
}

// Valid 세션이 아직 유효한지 확인한다
// 만료 60초 전부터는 무효로 취급해 경계에서의 401 을 피한다
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	expires := time.UnixMilli(s.ExpiresAt)
	return now.Before(expires.Add(-sessionExpiryMargin))
}

// ApplyRefresh 토큰 갱신 결과 반영
func (s *Session) ApplyRefresh(result *RefreshResult) {
	s.AccessToken = result.AccessToken
	s.ExpiresAt = result.ExpiresAt
}

// Store 세션 영속화 인터페이스
// 브라우저 환경에서는 localStorage, 테스트에서는 메모리 구현을 쓴다
type Store interface {
	// Get 키의 값 조회, 없으면 빈 문자열
	Get(key string) string
	// Set 키-값 저장
	Set(key, value string)
	// Remove 키 삭제
	Remove(key string)
}

// SaveSession 세션을 스토어에 저장한다
func SaveSession(store Store, s *Session) error {
	userData, err := json.Marshal(s.User)
	if err != nil {
		return err
	}
	tokenData, err := json.Marshal(map[string]any{
		"accessToken":  s.AccessToken,
		"refreshToken": s.RefreshToken,
		"expiresAt":    s.ExpiresAt,
	})
	if err != nil {
		return err
	}
	store.Set(storeKeyToken, string(tokenData))
	store.Set(storeKeyUser, string(userData))
	return nil
}

// LoadSession 스토어에서 세션 복원, 저장된 세션이 없으면 nil
func LoadSession(store Store) *Session {
	tokenData := store.Get(storeKeyToken)
	if tokenData == "" {
		return nil
	}
	var token struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresAt    int64  `json:"expiresAt"`
	}
	if err := json.Unmarshal([]byte(tokenData), &token); err != nil {
		return nil
	}

	s := &Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}
	if userData := store.Get(storeKeyUser); userData != "" {
		_ = json.Unmarshal([]byte(userData), &s.User)
	}
	return s
}

// ClearSession 로그아웃 시 저장된 세션 제거
func ClearSession(store Store) {
	store.Remove(storeKeyToken)
	store.Remove(storeKeyUser)
}

// MemoryStore 테스트/CLI 용 인메모리 Store 구현
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore 인메모리 스토어 생성
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) string {
	return m.values[key]
}

func (m *MemoryStore) Set(key, value string) {
	m.values[key] = value
}

func (m *MemoryStore) Remove(key string) {
	delete(m.values, key)
}
