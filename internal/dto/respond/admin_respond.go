package respond

// AdminRespond 관리자 계정 정보
// 사용 위치:
//   - internal/service/admin/service.go: CreateAdmin, GetAdminList
type AdminRespond struct {
	Id        uint   `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// LoginRespond 관리자 로그인 응답
// 사용 위치:
//   - internal/service/admin/service.go: Login
type LoginRespond struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    int64        `json:"expiresAt"` // Access Token 만료 시각 (unix milli)
	User         AdminRespond `json:"user"`
}

// RefreshTokenRespond Access Token 갱신 응답
type RefreshTokenRespond struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}
