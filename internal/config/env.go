package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	SessionSecret string
	AdminUsername string
	// Bcrypt hash; plain ADMIN_PASSWORD accepted as fallback untuk dev lokal.
	AdminPasswordHash string
	AdminPassword     string

	CORSOrigins []string

	UploadDir string

	AIEndpoint string
	AIAPIKey   string
	AIModel    string

	CompanyName string
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func LoadEnv() Env {
	env := Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "sewamobil"),

		SessionSecret:     getenv("SESSION_SECRET", "super-secret-key-change-me"),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		UploadDir: getenv("UPLOAD_DIR", "uploads"),

		AIEndpoint: strings.TrimSpace(os.Getenv("AI_ENDPOINT")),
		AIAPIKey:   strings.TrimSpace(os.Getenv("AI_API_KEY")),
		AIModel:    getenv("AI_MODEL", "gemini-2.5-flash"),

		CompanyName: getenv("COMPANY_NAME", "Sewa Mobil Nusantara"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	} else {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return env
}
