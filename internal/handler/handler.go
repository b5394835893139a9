package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/config"
	"github.com/user/sinema/internal/i18n"
	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/service"
	"github.com/user/sinema/internal/session"
	"github.com/user/sinema/internal/utils"
	"go.uber.org/zap"
)

// Handler HTTP 处理器
type Handler struct {
	Config  *config.Config
	Catalog *catalog.Client
	Logger  *zap.Logger
	I18n    *i18n.Translator

	// now 测试里可替换
	now func() time.Time
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, client *catalog.Client, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Config:  cfg,
		Catalog: client,
		Logger:  logger.Named("handler"),
		I18n:    i18n.New(cfg.UILocale),
		now:     time.Now,
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, settings *model.Settings, data gin.H) gin.H {
	site := model.DefaultSettings(h.Config.SiteName)
	if settings != nil {
		site = *settings
		if site.SiteName == "" {
			site.SiteName = h.Config.SiteName
		}
	}

	st := session.Current(c)

	// 基础数据
	res := gin.H{
		"SiteName":      site.SiteName,
		"Site":          site,
		"Lang":          h.I18n.Lang,
		"Path":          c.Request.URL.Path,
		"Year":          h.now().Year(),
		"Authenticated": st.Authenticated(),
		"Notices":       st.Notices(),
	}
	if st.Authenticated() {
		res["UserInfo"] = st.User()
	}

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// notify 页面提示：脚本请求直接按 code 返回 JSON，页面请求存为一次性提示后重定向
func (h *Handler) notify(c *gin.Context, code int, msg, redirect string, data interface{}) {
	if utils.WantsJSON(c) {
		switch {
		case code < http.StatusBadRequest:
			utils.SuccessWithMessage(c, msg, data)
		case code == http.StatusBadRequest:
			utils.BadRequest(c, msg)
		case code == http.StatusUnauthorized:
			utils.Unauthorized(c, msg)
		case code == http.StatusNotFound:
			utils.NotFound(c, msg)
		case code == http.StatusBadGateway:
			utils.BadGateway(c, msg)
		default:
			utils.Error(c, code, msg)
		}
		return
	}
	session.Current(c).AddNotice(msg)
	c.Redirect(http.StatusSeeOther, redirect)
}

// NotFound 404 页面，脚本请求返回 JSON
func (h *Handler) NotFound(c *gin.Context) {
	if utils.WantsJSON(c) {
		utils.NotFound(c, "")
		return
	}
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, nil, gin.H{
		"Title": "404",
	}))
}

// MediaURL 把上传文件引用转成本站代理地址，外部 URL 原样返回
func MediaURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	return "/media/" + url.PathEscape(ref)
}

// CoverSrc 封面地址：上传文件优先，其次外部 URL
func CoverSrc(m model.Movie) string {
	if m.CoverFile != "" {
		return MediaURL(m.CoverFile)
	}
	return m.CoverURL
}

// BackgroundSrc 背景图地址，没有时退回封面
func BackgroundSrc(m model.Movie) string {
	if m.BackgroundFile != "" {
		return MediaURL(m.BackgroundFile)
	}
	if m.BackgroundURL != "" {
		return m.BackgroundURL
	}
	return CoverSrc(m)
}

// Playback 模板里直接调用的播放解析
func Playback(m model.Movie) service.Playback {
	return service.ResolvePlayback(&m, MediaURL)
}
