package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr          string
	Port                string
	DatabasePath        string
	BackendDisabled     bool
	SessionSecret       string
	GinMode             string
	AdminPassword       string
	Timezone            string
	StartupFetchTimeout time.Duration
	RememberMeDays      int
	RollbarToken        string
	AppEnv              string
}

// DefaultAdminPassword 是未配置 ADMIN_PASSWORD 时的管理员密码
const DefaultAdminPassword = "Gestaodecelulaviver"

// Load 先尝试加载 .env 文件，再从环境变量读取应用配置，并为缺失项提供默认值。
func Load() AppConfig {
	loadEnvFile()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "celulas.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "viver-em-cristo-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if strings.TrimSpace(adminPassword) == "" {
		adminPassword = DefaultAdminPassword
	}

	timezone := strings.TrimSpace(os.Getenv("TIMEZONE"))
	if timezone == "" {
		timezone = "America/Sao_Paulo"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	return AppConfig{
		ListenAddr:          listenAddr,
		Port:                port,
		DatabasePath:        databasePath,
		BackendDisabled:     parseBool(os.Getenv("BACKEND_DISABLED")),
		SessionSecret:       sessionSecret,
		GinMode:             ginMode,
		AdminPassword:       adminPassword,
		Timezone:            timezone,
		StartupFetchTimeout: parseDuration(os.Getenv("STARTUP_FETCH_TIMEOUT"), 10*time.Second),
		RememberMeDays:      parseInt(os.Getenv("REMEMBER_ME_DAYS"), 30),
		RollbarToken:        strings.TrimSpace(os.Getenv("ROLLBAR_TOKEN")),
		AppEnv:              appEnv,
	}
}

// Location 返回配置时区，无法加载时回退到 time.Local
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] unknown timezone %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func loadEnvFile() {
	path := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] failed to load %s: %v", path, err)
	}
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// parseDuration 接受 "10s" 这样的时长或纯秒数
func parseDuration(raw string, fallback time.Duration) time.Duration {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(trimmed); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(trimmed); err == nil && d > 0 {
		return d
	}
	return fallback
}
