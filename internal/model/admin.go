package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 관리자 역할
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminInfo 관리자 계정
type AdminInfo struct {
	gorm.Model

	// Username 로그인 아이디, 서버에서 유일성을 보장한다
	Username string `gorm:"column:username;uniqueIndex;type:varchar(30);not null;comment:로그인 아이디"`

	// Password bcrypt 해시, 평문은 저장하지 않는다
	Password string `gorm:"column:password;type:varchar(100);not null;comment:비밀번호 해시"`

	// Role 역할 (admin / super_admin)
	Role string `gorm:"column:role;type:varchar(20);not null;default:admin;comment:역할"`

	// RawPassword 평문 비밀번호 수신용, BeforeSave 에서 해시 후 비워진다
	RawPassword string `gorm:"-" json:"-"`
}

func (AdminInfo) TableName() string {
	return "admin_info"
}

// BeforeSave GORM Hook: 저장 전에 RawPassword 를 bcrypt 해시로 변환한다
func (a *AdminInfo) BeforeSave(tx *gorm.DB) (err error) {
	if a.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a.Password = string(hash)
		a.RawPassword = ""
	}
	return nil
}

// CheckPassword 로그인 시 비밀번호 검증
func (a *AdminInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plaintext))
	return err == nil
}
