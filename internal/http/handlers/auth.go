package handlers

import (
	"net/http"

	"sewamobil-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
// Kredensial admin tunggal dari environment; sukses memasang cookie
// `session` bermasa 24 jam.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.Username != env.AdminUsername || !passwordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username atau password salah"})
		return
	}

	token, err := middleware.NewSessionToken(env.SessionSecret, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat sesi", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionMaxAge.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "login berhasil",
		"user":    gin.H{"username": req.Username, "role": "admin"},
	})
}

func passwordMatches(password string) bool {
	if env.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(env.AdminPasswordHash), []byte(password)) == nil
	}
	// Fallback dev lokal tanpa hash.
	return env.AdminPassword != "" && password == env.AdminPassword
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logout berhasil"})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	raw, err := c.Cookie(middleware.SessionCookie)
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "tidak ada sesi aktif"})
		return
	}
	user, err := middleware.ParseSessionToken(env.SessionSecret, raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sesi kedaluwarsa"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"username": user, "role": "admin"}})
}
