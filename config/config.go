package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Record sources selectable at process start.
const (
	SourceMemory = "memory"
	SourceSQLite = "sqlite"
	SourceRemote = "remote"
)

type AppConfig struct {
	Port     string
	Timezone string
	LogLevel string

	RecordSource  string
	DBPath        string
	RemoteBaseURL string
	RemoteToken   string
	RemoteTimeout int

	JWTSecret      string
	TokenTTLHours  int
	EnableDevLogin bool

	MediaDir     string
	MediaBaseURL string
	GCSBucket    string

	CORSOrigins []string
}

var logger = log.New("cfg")

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Europe/Athens"),
		LogLevel: get("LOG_LEVEL", "info"),

		RecordSource:  strings.ToLower(get("RECORD_SOURCE", SourceMemory)),
		DBPath:        get("DB_PATH", "olive.db"),
		RemoteBaseURL: get("REMOTE_BASE_URL", ""),
		RemoteToken:   get("REMOTE_API_TOKEN", ""),
		RemoteTimeout: getInt("REMOTE_TIMEOUT_SEC", 15),

		JWTSecret:      get("JWT_SECRET", "olive-dev-secret"),
		TokenTTLHours:  getInt("TOKEN_TTL_HOURS", 24),
		EnableDevLogin: get("ENABLE_DEV_LOGIN", "false") == "true",

		MediaDir:     get("MEDIA_DIR", "media"),
		MediaBaseURL: get("MEDIA_BASE_URL", "/media"),
		GCSBucket:    get("GCS_BUCKET", ""),

		CORSOrigins: splitList(get("CORS_ORIGINS", "*")),
	}
	shown := cfg
	shown.JWTSecret, shown.RemoteToken = mask(cfg.JWTSecret), mask(cfg.RemoteToken)
	logger.Infof("%+v", shown)
	return cfg
}

// Level maps LOG_LEVEL onto gommon levels.
func (c AppConfig) Level() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	}
	return log.INFO
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
