// Package middleware Gin 미들웨어 모음
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wedding_invitation_server/pkg/errorx"
	"wedding_invitation_server/pkg/util/jwt"
)

// JWTAuth 관리자 인증 미들웨어
// Access Token 을 검증하고 관리자 정보를 컨텍스트에 저장한다
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "로그인이 필요합니다",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "잘못된 토큰 형식입니다. Bearer Token 을 사용해주세요",
			})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "토큰이 만료되었거나 유효하지 않습니다. 다시 로그인해주세요",
			})
			return
		}

		// Refresh Token 으로 API 접근 불가
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Access Token 으로 요청해주세요",
			})
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
