package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Env       string
	AppSecret string
	Port      string
	SiteName  string

	// CatalogURL 目录后端的基础地址（含 /api 前缀）
	CatalogURL string
	// CatalogTimeout 为 0 时不设置请求超时
	CatalogTimeout time.Duration
	// APILocale 后端接口的路由/字段命名：en 或 tr
	APILocale string
	// UILocale 界面文案语言：en 或 tr
	UILocale string
	// LocalFilter 开启后在搜索结果上再做一次本地子串过滤
	LocalFilter bool

	LogPath     string
	UploadMaxMB int64
}

// Load 加载配置
func Load() *Config {
	timeoutSec, _ := strconv.Atoi(getEnv("CATALOG_TIMEOUT", "0"))
	uploadMax, _ := strconv.ParseInt(getEnv("UPLOAD_MAX_MB", "512"), 10, 64)

	appSecret := getEnv("APP_SECRET", "your-secret-key-change-in-production")
	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		AppSecret:      appSecret,
		Port:           getEnv("PORT", "5007"),
		SiteName:       getEnv("SITE_NAME", "Ultra Cinema"),
		CatalogURL:     strings.TrimRight(getEnv("CATALOG_URL", "http://localhost:8001/api"), "/"),
		CatalogTimeout: time.Duration(timeoutSec) * time.Second,
		APILocale:      localeOr(getEnv("API_LOCALE", "en")),
		UILocale:       localeOr(getEnv("UI_LOCALE", "en")),
		LocalFilter:    getEnv("LOCAL_FILTER", "false") == "true",
		LogPath:        getEnv("LOG_PATH", ""),
		UploadMaxMB:    uploadMax,
	}
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func localeOr(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "tr" {
		return "tr"
	}
	return "en"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
