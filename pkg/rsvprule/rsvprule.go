// Package rsvprule RSVP 참석 인원/이름 목록의 정규화 규칙
// 제출 클라이언트와 서버 양쪽에서 같은 규칙으로 payload 를 맞춘다
package rsvprule

import "strings"

// MaxTotalCount 참석 인원 상한
const MaxTotalCount = 10

// Normalize 참석 여부에 맞게 인원수와 이름 목록을 정리한다
//   - 불참: totalCount 0, 이름 목록 비움 (폼에 남은 값과 무관)
//   - 참석: totalCount 최소 1, 상한 MaxTotalCount 로 clamp,
//     이름 목록은 totalCount 길이에 맞춰 자르거나 빈 문자열로 채운다
func Normalize(isAttending bool, totalCount int, attendeeNames []string) (int, []string) {
	if !isAttending {
		return 0, []string{}
	}

	if totalCount < 1 {
		totalCount = 1
	}
	if totalCount > MaxTotalCount {
		totalCount = MaxTotalCount
	}

	names := make([]string, 0, totalCount)
	for _, name := range attendeeNames {
		if len(names) == totalCount {
			break
		}
		names = append(names, strings.TrimSpace(name))
	}
	for len(names) < totalCount {
		names = append(names, "")
	}
	return totalCount, names
}

// ValidateResponderName 응답자 이름 검증, 공백 제거 후 2자 이상
func ValidateResponderName(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= 2
}

// HasEmptyName 공백뿐인 참석자 이름이 있는지 확인한다
func HasEmptyName(names []string) bool {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return true
		}
	}
	return false
}
