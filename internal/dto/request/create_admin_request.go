package request

// CreateAdminRequest 관리자 계정 생성 요청
// 인증된 관리자만 호출할 수 있다
// 사용 위치:
//   - internal/handler/admin_handler.go: CreateAdmin
//   - internal/service/admin/service.go: CreateAdmin
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=4,max=30"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}
