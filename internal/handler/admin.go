package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/service"
	"github.com/user/sinema/internal/session"
	"github.com/user/sinema/internal/utils"
	"go.uber.org/zap"
)

// 后台的两个标签页
const (
	TabMovies   = "movies"
	TabSettings = "settings"
)

// multipartMemory 超过这个大小的上传写临时文件
const multipartMemory = 32 << 20

// ==================== 管理后台 ====================

// AdminDashboard 后台首页。
// ?tab=settings 切到设置页，?new=1 打开空白表单，?edit=id 编辑，?confirm=id 删除确认。
func (h *Handler) AdminDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	listing := h.loadListing(ctx)

	editor := service.NewMovieEditor(h.Catalog, h.Logger)
	if c.Query("new") != "" {
		editor.New()
	} else if id := c.Query("edit"); id != "" {
		if m := listing.Find(id); m != nil {
			editor.Edit(*m)
		}
	}

	var confirm *model.Movie
	if id := c.Query("confirm"); id != "" {
		confirm = listing.Find(id)
	}

	settings := service.NewSettingsEditor(h.Catalog, h.Logger, h.currentSettings(listing))
	h.renderDashboard(c, listing, editor, settings, c.Query("tab"), confirm)
}

// AdminMovieSave 新建或更新影片。表单带 id 时更新，否则新建。
func (h *Handler) AdminMovieSave(c *gin.Context) {
	ctx := c.Request.Context()
	editor := service.NewMovieEditor(h.Catalog, h.Logger)

	var form service.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		msg := utils.FormatValidationErrors(utils.ValidationMessages(err))
		editor.Reject(form, h.I18n.T("notice.invalid_form", msg))
		h.renderDashboardFailure(c, editor, nil)
		return
	}

	saved, err := editor.Submit(ctx, session.Current(c).Token(), form)
	if err != nil {
		editor.Notice = h.I18n.T("notice.save_failed", err.Error())
		h.renderDashboardFailure(c, editor, nil)
		return
	}

	// 成功后重定向，下一次 GET 就是整表重新拉取
	h.Logger.Info("影片已保存", zap.String("id", saved.ID), zap.String("title", saved.Title))
	h.notify(c, http.StatusOK, h.I18n.T("notice.saved"), DashboardPath, saved)
}

// AdminMovieDelete 删除影片（确认在页面上完成）
func (h *Handler) AdminMovieDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.DeleteMovie(c.Request.Context(), session.Current(c).Token(), id); err != nil {
		h.Logger.Warn("删除影片失败", zap.String("id", id), zap.Error(err))
		h.notify(c, statusFor(err), h.I18n.T("notice.delete_failed", err.Error()), DashboardPath, nil)
		return
	}

	h.Logger.Info("影片已删除", zap.String("id", id))
	h.notify(c, http.StatusOK, h.I18n.T("notice.deleted"), DashboardPath, gin.H{"id": id})
}

// AdminUpload 上传单个媒体文件。表单提交和拖拽都走这里，拖拽请求拿到 JSON。
func (h *Handler) AdminUpload(c *gin.Context) {
	slot, err := catalog.ParseSlot(c.Param("slot"))
	if err != nil {
		h.notify(c, http.StatusBadRequest, err.Error(), DashboardPath, nil)
		return
	}
	label := h.I18n.T("slot." + string(slot))

	maxBytes := h.Config.UploadMaxMB << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.notify(c, http.StatusRequestEntityTooLarge, h.I18n.T("notice.upload_failed", label, err.Error()), DashboardPath, nil)
		return
	}

	movieID := strings.TrimSpace(c.PostForm("movie_id"))
	back := DashboardPath
	if movieID != "" {
		back += "?edit=" + url.QueryEscape(movieID)
	}

	var (
		filename string
		content  io.Reader
	)
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			h.notify(c, http.StatusBadRequest, h.I18n.T("notice.upload_failed", label, err.Error()), back, nil)
			return
		}
		defer f.Close()
		filename, content = fh.Filename, f
	}

	uploader := service.NewUploader(h.Catalog, h.Logger)
	updated, err := uploader.Upload(c.Request.Context(), session.Current(c).Token(), movieID, slot, filename, content)
	switch {
	case errors.Is(err, service.ErrUnsavedRecord):
		h.notify(c, http.StatusBadRequest, h.I18n.T("notice.upload_unsaved"), back, nil)
	case errors.Is(err, service.ErrNoFile):
		h.notify(c, http.StatusBadRequest, h.I18n.T("notice.upload_missing"), back, nil)
	case err != nil:
		h.notify(c, statusFor(err), h.I18n.T("notice.upload_failed", label, err.Error()), back, nil)
	default:
		h.notify(c, http.StatusOK, h.I18n.T("notice.uploaded", label), back, updated)
	}
}

// AdminSettingsSave 保存站点设置。失败时页面继续使用原来的设置。
func (h *Handler) AdminSettingsSave(c *gin.Context) {
	ctx := c.Request.Context()

	current, err := h.Catalog.Settings(ctx)
	if err != nil {
		h.Logger.Warn("拉取站点设置失败", zap.Error(err))
		def := model.DefaultSettings(h.Config.SiteName)
		current = &def
	}
	editor := service.NewSettingsEditor(h.Catalog, h.Logger, *current)

	var form service.SettingsForm
	if err := c.ShouldBind(&form); err != nil {
		msg := utils.FormatValidationErrors(utils.ValidationMessages(err))
		editor.Reject(form, h.I18n.T("notice.invalid_form", msg))
		h.renderDashboardFailure(c, nil, editor)
		return
	}

	if err := editor.Save(ctx, session.Current(c).Token(), form); err != nil {
		editor.Notice = h.I18n.T("notice.settings_error", err.Error())
		h.renderDashboardFailure(c, nil, editor)
		return
	}

	h.notify(c, http.StatusOK, h.I18n.T("notice.settings_saved"), DashboardPath+"?tab="+TabSettings, editor.Current)
}

// loadListing 后台页面的数据：影片列表、类型统计、站点设置
func (h *Handler) loadListing(ctx context.Context) *service.Listing {
	listing := service.NewListing(h.Catalog, h.Logger, false)
	listing.Load(ctx)
	return listing
}

func (h *Handler) currentSettings(listing *service.Listing) model.Settings {
	if listing.Settings != nil {
		return *listing.Settings
	}
	return model.DefaultSettings(h.Config.SiteName)
}

// renderDashboardFailure 写操作失败后重新渲染后台，保留对话框和用户输入
func (h *Handler) renderDashboardFailure(c *gin.Context, editor *service.MovieEditor, settings *service.SettingsEditor) {
	if utils.WantsJSON(c) {
		msg := ""
		if editor != nil {
			msg = editor.Notice
		}
		if settings != nil {
			msg = settings.Notice
		}
		utils.Error(c, http.StatusUnprocessableEntity, msg)
		return
	}

	listing := h.loadListing(c.Request.Context())
	tab := TabMovies
	if editor == nil {
		editor = service.NewMovieEditor(h.Catalog, h.Logger)
	}
	if settings == nil {
		settings = service.NewSettingsEditor(h.Catalog, h.Logger, h.currentSettings(listing))
	} else {
		tab = TabSettings
	}
	h.renderDashboard(c, listing, editor, settings, tab, nil)
}

func (h *Handler) renderDashboard(c *gin.Context, listing *service.Listing, editor *service.MovieEditor, settings *service.SettingsEditor, tab string, confirm *model.Movie) {
	if tab != TabSettings {
		tab = TabMovies
	}

	// 页面主题始终跟随当前生效的设置
	current := settings.Current
	c.HTML(http.StatusOK, "admin_dashboard.html", h.RenderData(c, &current, gin.H{
		"Title":      h.title(&current, h.I18n.T("dashboard.title")),
		"Tab":        tab,
		"Movies":     listing.Movies,
		"Genres":     listing.Genres,
		"Editor":     editor,
		"Settings":   settings,
		"Confirm":    confirm,
		"Slots":      catalog.Slots,
		"GenreOpts":  model.Genres,
		"Countries":  model.Countries,
		"Languages":  model.Languages,
		"AgeRatings": model.AgeRatings,
	}))
}

// statusFor 后端错误对应的响应码
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrRejected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
