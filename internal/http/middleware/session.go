package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the dashboard session token.
const SessionCookie = "session"

// SessionMaxAge is 24 jam, sama dengan masa berlaku token.
const SessionMaxAge = 24 * time.Hour

const sessionUserKey = "session_user"

// NewSessionToken signs a session token for the dashboard user.
func NewSessionToken(secret, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(SessionMaxAge).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies the token and returns its subject.
func ParseSessionToken(secret, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode tanda tangan tidak dikenal: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("sesi tidak valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("sesi tidak valid")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("sesi tidak valid")
	}
	return sub, nil
}

// SessionRequired guards the dashboard route group. Tanpa cookie sesi
// yang sah, request ditolak dan frontend mengarahkan ke halaman login.
func SessionRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sesi tidak ditemukan, silakan login"})
			return
		}

		user, err := ParseSessionToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sesi kedaluwarsa, silakan login ulang"})
			return
		}

		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// SessionUser returns the authenticated dashboard user, empty when the
// request came through an unguarded route.
func SessionUser(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(sessionUserKey)
}
