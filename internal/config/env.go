package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	JWTSecret   string
	DBDSN       string
	UploadDir   string
	APIBaseURL  string
	SessionFile string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "holidays-admin-secret-change-me"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	apiBase := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if apiBase == "" {
		apiBase = "http://localhost:8080"
	}

	sessionFile := strings.TrimSpace(os.Getenv("SESSION_FILE"))
	if sessionFile == "" {
		sessionFile = ".admin-session.json"
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:   secret,
		DBDSN:       dsn,
		UploadDir:   uploadDir,
		APIBaseURL:  apiBase,
		SessionFile: sessionFile,
	}
}
