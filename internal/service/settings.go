package service

import (
	"context"

	"github.com/user/sinema/internal/model"
	"go.uber.org/zap"
)

// SettingsForm 站点设置表单
type SettingsForm struct {
	SiteName              string `form:"site_name" binding:"required"`
	Description           string `form:"description"`
	ThemeColor            string `form:"theme_color" binding:"required,hexcolor"`
	AccentColor           string `form:"accent_color" binding:"required,hexcolor"`
	FeaturedMoviesCount   int    `form:"featured_movies_count" binding:"gte=0,lte=50"`
	AllowUserRegistration bool   `form:"allow_user_registration"`
}

// SettingsFormFrom 用当前设置填表
func SettingsFormFrom(s model.Settings) SettingsForm {
	return SettingsForm{
		SiteName:              s.SiteName,
		Description:           s.Description,
		ThemeColor:            s.ThemeColor,
		AccentColor:           s.AccentColor,
		FeaturedMoviesCount:   s.FeaturedMoviesCount,
		AllowUserRegistration: s.AllowUserRegistration,
	}
}

// Apply 把表单写到设置副本上（保留 ID 等表单之外的字段）
func (f SettingsForm) Apply(s model.Settings) model.Settings {
	s.SiteName = f.SiteName
	s.Description = f.Description
	s.ThemeColor = f.ThemeColor
	s.AccentColor = f.AccentColor
	s.FeaturedMoviesCount = f.FeaturedMoviesCount
	s.AllowUserRegistration = f.AllowUserRegistration
	return s
}

// SettingsEditor 设置页状态：Current 是页面上正在生效的值，Draft 是表单里的值
type SettingsEditor struct {
	catalog Catalog
	logger  *zap.Logger

	Current model.Settings
	Draft   SettingsForm
	Open    bool
	Notice  string
}

// NewSettingsEditor 以当前设置初始化
func NewSettingsEditor(cat Catalog, logger *zap.Logger, current model.Settings) *SettingsEditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsEditor{
		catalog: cat,
		logger:  logger.Named("settings"),
		Current: current,
		Draft:   SettingsFormFrom(current),
	}
}

// Reject 本地校验失败
func (s *SettingsEditor) Reject(form SettingsForm, notice string) {
	s.Open = true
	s.Draft = form
	s.Notice = notice
}

// Save PUT /admin/settings。失败时 Current 不变，表单保持打开可继续编辑。
func (s *SettingsEditor) Save(ctx context.Context, token string, form SettingsForm) error {
	s.Open = true
	s.Draft = form

	updated, err := s.catalog.UpdateSettings(ctx, token, form.Apply(s.Current))
	if err != nil {
		s.logger.Warn("保存站点设置失败", zap.Error(err))
		s.Notice = err.Error()
		return err
	}

	s.Current = *updated
	s.Draft = SettingsFormFrom(s.Current)
	s.Notice = ""
	return nil
}
