package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"etkinlikHub/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuth защищает админские маршруты: требует Bearer-токен,
// подписанный HMAC-секретом сервера.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				_ = utils.Err(w, http.StatusUnauthorized, fmt.Errorf("missing bearer token"))
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				_ = utils.Err(w, http.StatusUnauthorized, fmt.Errorf("invalid token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
