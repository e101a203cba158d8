// Package admin 관리자 계정/인증 로직
package admin

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"wedding_invitation_server/internal/dao/mysql"
	myredis "wedding_invitation_server/internal/dao/redis"
	"wedding_invitation_server/internal/dto/request"
	"wedding_invitation_server/internal/dto/respond"
	"wedding_invitation_server/internal/model"
	"wedding_invitation_server/pkg/constants"
	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/util/jwt"
)

// refreshTokenKeyPrefix Redis 에 저장하는 refresh token id 키 접두사
const refreshTokenKeyPrefix = "admin_token_"

// adminService AdminService 구현
type adminService struct {
	repos *mysql.Repositories
	cache myredis.AsyncCacheService
}

// NewAdminService 의존성 주입 생성자
func NewAdminService(repos *mysql.Repositories, cache myredis.AsyncCacheService) *adminService {
	return &adminService{
		repos: repos,
		cache: cache,
	}
}

// Login 아이디/비밀번호 로그인
// 아이디 없음과 비밀번호 불일치를 구분하지 않고 같은 메시지로 응답한다
func (s *adminService) Login(req request.AdminLoginRequest) (*respond.LoginRespond, error) {
	admin, err := s.repos.Admin.FindByUsername(req.Username)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
		}
		zap.L().Error("find admin error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !admin.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
	}

	adminID := strconv.FormatUint(uint64(admin.ID), 10)
	accessToken, err := jwt.GenerateAccessToken(adminID, admin.Username, admin.Role)
	if err != nil {
		zap.L().Error("generate access token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(adminID, admin.Username, admin.Role)
	if err != nil {
		zap.L().Error("generate refresh token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 최신 refresh token id 를 기록한다. 새 로그인이 이전 세션의 갱신을 무효화한다
	// Redis 장애로 실패해도 로그인은 성공 처리 (갱신 시 검증을 건너뛰게 된다)
	s.cache.SubmitTask(func() {
		ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
		if err := s.cache.Set(context.Background(), refreshTokenKeyPrefix+adminID, tokenID, ttl); err != nil {
			zap.L().Error("store refresh token id error", zap.Error(err))
		}
	})

	zap.L().Info("admin login", zap.String("username", admin.Username))
	return &respond.LoginRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(jwt.AccessTokenExpiry()).UnixMilli(),
		User:         toAdminRespond(admin),
	}, nil
}

// RefreshToken Refresh Token 검증 후 Access Token 재발급
func (s *adminService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다. 다시 로그인해주세요")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다. 다시 로그인해주세요")
	}

	// Redis 에 기록된 최신 token id 와 비교, 조회 실패 시에는 통과시킨다
	stored, err := s.cache.Get(context.Background(), refreshTokenKeyPrefix+claims.AdminID)
	if err != nil {
		zap.L().Error("get refresh token id error", zap.Error(err))
	} else if stored != "" && stored != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "다른 기기에서 로그인되어 세션이 만료되었습니다")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.AdminID, claims.Username, claims.Role)
	if err != nil {
		zap.L().Error("generate access token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshTokenRespond{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(jwt.AccessTokenExpiry()).UnixMilli(),
	}, nil
}

// CreateAdmin 관리자 계정 생성, 기본 역할은 admin
func (s *adminService) CreateAdmin(req request.CreateAdminRequest) (*respond.AdminRespond, error) {
	exists, err := s.repos.Admin.ExistsByUsername(req.Username)
	if err != nil {
		zap.L().Error("check admin username error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if exists {
		return nil, errorx.New(errorx.CodeDuplicateUsername, "이미 존재하는 아이디입니다")
	}

	role := req.Role
	if role == "" {
		role = model.RoleAdmin
	}
	admin := model.AdminInfo{
		Username:    req.Username,
		RawPassword: req.Password,
		Role:        role,
	}
	if err := s.repos.Admin.Create(&admin); err != nil {
		zap.L().Error("create admin error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	zap.L().Info("admin created", zap.String("username", admin.Username), zap.String("role", admin.Role))
	rsp := toAdminRespond(&admin)
	return &rsp, nil
}

// GetAdminList 전체 관리자 목록
func (s *adminService) GetAdminList() ([]respond.AdminRespond, error) {
	admins, err := s.repos.Admin.FindAll()
	if err != nil {
		zap.L().Error("find all admins error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsps := make([]respond.AdminRespond, 0, len(admins))
	for i := range admins {
		rsps = append(rsps, toAdminRespond(&admins[i]))
	}
	return rsps, nil
}

// toAdminRespond 모델 -> 응답 DTO 변환, 비밀번호 해시는 내려주지 않는다
func toAdminRespond(admin *model.AdminInfo) respond.AdminRespond {
	return respond.AdminRespond{
		Id:        admin.ID,
		Username:  admin.Username,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt.Format("2006-01-02"),
	}
}
