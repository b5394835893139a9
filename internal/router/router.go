package router

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/handler"
	"github.com/user/sinema/internal/i18n"
	"github.com/user/sinema/internal/middleware"
	"github.com/user/sinema/internal/model"
	"github.com/user/sinema/internal/utils"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		utils.Success(c, gin.H{"status": "ok"})
	})

	// ==================== 公开页面 ====================
	r.GET("/", h.Home)
	r.GET("/media/*ref", h.Media)

	// ==================== 认证页面 ====================
	r.GET(middleware.LoginPath, h.LoginPage)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)

	// ==================== 管理后台 ====================
	admin := r.Group("/admin")
	admin.Use(middleware.RequireSession())
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.POST("/movies", h.AdminMovieSave)
		admin.POST("/movies/:id/delete", h.AdminMovieDelete)
		admin.POST("/uploads/:slot", h.AdminUpload)
		admin.POST("/settings", h.AdminSettingsSave)
	}

	r.NoRoute(h.NotFound)
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string, tr *i18n.Translator) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局和局部模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	for _, page := range Pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", FuncMap(tr), assemble(viewPath)...)
	}

	return r
}

// Pages 所有页面模板
var Pages = []string{"home", "login", "admin_dashboard", "404"}

// FuncMap 模板函数
func FuncMap(tr *i18n.Translator) template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"contains":   model.Contains,
		"t":          tr.T,
		"label":      tr.Label,
		"cover":      handler.CoverSrc,
		"background": handler.BackgroundSrc,
		"playback":   handler.Playback,
		"rating": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		// css 主题色只接受 #rgb / #rrggbb，其余换成缺省值
		"css": func(color, fallback string) template.CSS {
			if isHexColor(color) {
				return template.CSS(color)
			}
			return template.CSS(fallback)
		},
	}
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
