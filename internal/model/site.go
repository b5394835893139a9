package model

import "time"

// Settings 站点设置（每个部署一份，只能由管理员保存修改）
type Settings struct {
	ID                    string     `json:"id,omitempty"`
	SiteName              string     `json:"site_name"`
	Description           string     `json:"description"`
	ThemeColor            string     `json:"theme_color"`
	AccentColor           string     `json:"accent_color"`
	FeaturedMoviesCount   int        `json:"featured_movies_count"`
	AllowUserRegistration bool       `json:"allow_user_registration"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

// DefaultSettings 后端不可用时页面使用的缺省值
func DefaultSettings(siteName string) Settings {
	return Settings{
		SiteName:              siteName,
		ThemeColor:            "#1a1a1a",
		AccentColor:           "#e50914",
		FeaturedMoviesCount:   6,
		AllowUserRegistration: true,
	}
}
