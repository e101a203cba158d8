package request

// AdminLoginRequest 관리자 로그인 요청
// 사용 위치:
//   - internal/handler/admin_handler.go: Login
//   - internal/service/admin/service.go: Login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
