package constants

import "time"

const (
	NOTIFY_CHANNEL_SIZE        = 100             // 알림 브로커 채널 크기
	UNIQUE_CODE_MIN_LEN        = 3               // 초대 코드 최소 길이
	UNIQUE_CODE_MAX_LEN        = 20              // 초대 코드 최대 길이
	RSVP_MAX_TOTAL_COUNT       = 10              // RSVP 참석 인원 상한
	SESSION_EXPIRY_MARGIN      = 60 * time.Second // 만료 전 세션을 무효로 보는 여유 시간
	REFRESH_TOKEN_EXPIRY_HOURS = 168             // Refresh Token 유효 기간(시간), 7일
)

// UniqueCodePattern 초대 코드 형식 (URL-safe)
const UniqueCodePattern = `^[a-zA-Z0-9-]{3,20}$`
