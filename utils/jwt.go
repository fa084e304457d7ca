// file: utils/jwt.go
package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nartbuilds/yaolin-bets/models"
)

// SessionCookieName 会话 Cookie 名称，与前端约定一致
const SessionCookieName = "yaolin-session"

// SessionMaxAge 会话有效期（秒），7 天
const SessionMaxAge = 7 * 24 * 60 * 60

func jwtSecret() []byte {
	if s := os.Getenv("YAOLIN_JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("fallback-secret-key")
}

// Claims 只携带身份信息，不放 is_admin
// 管理员标记在每次特权操作时从数据库实时查询，避免会话期内撤权失效
type Claims struct {
	UserID   uint32 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateToken(user models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionMaxAge * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
