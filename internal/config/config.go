// Package config 애플리케이션 설정 로딩/관리
// TOML 설정 파일을 사용하며 여러 경로를 순서대로 탐색한다
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig 기본 설정
type MainConfig struct {
	AppName string `toml:"appName"` // 애플리케이션 이름
	Host    string `toml:"host"`    // 서버 리슨 주소, 예: "0.0.0.0"
	Port    int    `toml:"port"`    // 서버 리슨 포트, 예: 8000
	Mode    string `toml:"mode"`    // "dev" 또는 "release"
}

// MysqlConfig MySQL 접속 설정
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig Redis 접속 설정
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // 비밀번호 없으면 빈 문자열
	Db       int    `toml:"db"`
}

// LogConfig 로그 설정, lumberjack 로 로그 파일을 롤링한다
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 로그 파일 디렉터리
	FileName   string `toml:"fileName"`   // 로그 파일명
	MaxSize    int    `toml:"maxSize"`    // 파일 하나의 최대 크기(MB)
	MaxBackups int    `toml:"maxBackups"` // 보관할 이전 로그 파일 개수
	MaxAge     int    `toml:"maxAge"`     // 이전 로그 보관 일수
	Level      string `toml:"level"`      // debug, info, warn, error
}

// JWTConfig JWT 인증 설정
type JWTConfig struct {
	Secret             string `toml:"secret"`             // 서명 키, 32자 이상 권장
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 유효 기간(분)
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 유효 기간(시간)
}

// SmsConfig RSVP 접수 확인 문자 발송 설정 (Alibaba Cloud SMS)
// accessKeyID 가 비어 있으면 로컬 mock 으로 동작한다
type SmsConfig struct {
	Enabled         bool   `toml:"enabled"`         // 접수 확인 문자 발송 여부
	AccessKeyID     string `toml:"accessKeyID"`
	AccessKeySecret string `toml:"accessKeySecret"`
	SignName        string `toml:"signName"`
	TemplateCode    string `toml:"templateCode"`
}

// NotifyConfig 관리자 대시보드 실시간 알림 설정
type NotifyConfig struct {
	Mode      string `toml:"mode"`      // "channel" 또는 "kafka"
	HostPort  string `toml:"hostPort"`  // Kafka 주소, 예: "localhost:9092"
	RsvpTopic string `toml:"rsvpTopic"` // RSVP 이벤트 토픽
	Partition int    `toml:"partition"`
}

// SecurityConfig 민감 정보 보호 설정
type SecurityConfig struct {
	PhoneCipherKey string `toml:"phoneCipherKey"` // 전화번호 암호화 키 (16/24/32 바이트)
}

// AdminSeedConfig 최초 기동 시 생성할 super_admin 계정
type AdminSeedConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Config 전체 설정 집합
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	JWTConfig       `toml:"jwtConfig"`
	SmsConfig       `toml:"smsConfig"`
	NotifyConfig    `toml:"notifyConfig"`
	SecurityConfig  `toml:"securityConfig"`
	AdminSeedConfig `toml:"adminSeedConfig"`
}

// config 전역 설정 싱글턴, 지연 로딩
var config *Config

// LoadConfig 후보 경로를 순서대로 시도해 설정 파일을 로드한다
func LoadConfig() error {
	if config == nil {
		config = new(Config)
	}
	paths := []string{
		"configs/config_local.toml", // 로컬 개발용 (우선)
		"configs/config.toml",
		"../../configs/config_local.toml", // 하위 디렉터리에서 실행할 때
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 전역 설정 인스턴스 반환 (싱글턴)
// 최초 호출 시 설정 파일을 로드한다
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 실패 시 zero value 로 진행
	}
	return config
}
