package mysql

import (
	"fmt"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"wedding_invitation_server/internal/config"
	"wedding_invitation_server/internal/model"
)

// Init 데이터베이스 연결을 초기화하고 Repository 집합을 반환한다
// 처리 순서:
//  1. 설정에서 MySQL 접속 정보 로드
//  2. DSN 생성 후 GORM 연결
//  3. AutoMigrate 로 테이블 생성/갱신
//  4. 최초 기동이면 super_admin 계정 seed
func Init() *Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	err = db.AutoMigrate(
		&model.InvitationGroup{}, // 초대 그룹
		&model.WeddingInfo{},     // 예식 정보
		&model.RsvpResponse{},    // RSVP 응답
		&model.AdminInfo{},       // 관리자 계정
		&model.GalleryImage{},    // 갤러리
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	repos := NewRepositories(db)
	seedAdmin(repos, conf.AdminSeedConfig)
	return repos
}

// seedAdmin 관리자 계정이 하나도 없으면 설정의 super_admin 계정을 생성한다
func seedAdmin(repos *Repositories, seed config.AdminSeedConfig) {
	if seed.Username == "" || seed.Password == "" {
		return
	}
	count, err := repos.Admin.Count()
	if err != nil {
		zap.L().Error("seed 관리자 확인 실패", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}
	admin := model.AdminInfo{
		Username:    seed.Username,
		RawPassword: seed.Password,
		Role:        model.RoleSuperAdmin,
	}
	if err := repos.Admin.Create(&admin); err != nil {
		zap.L().Error("seed 관리자 생성 실패", zap.Error(err))
		return
	}
	zap.L().Info("최초 super_admin 계정 생성", zap.String("username", seed.Username))
}
