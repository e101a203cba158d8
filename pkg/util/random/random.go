package random

import (
	"crypto/rand"
	"math/big"
)

const codeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GetRandomString 지정 길이의 URL-safe 랜덤 문자열 생성
// 그룹 초대 코드 자동 제안에 사용한다
func GetRandomString(length int) string {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(codeCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = codeCharset[n.Int64()]
	}
	return string(result)
}
