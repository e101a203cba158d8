package request

// RefreshTokenRequest Access Token 갱신 요청
// 사용 위치:
//   - internal/handler/admin_handler.go: RefreshToken
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
