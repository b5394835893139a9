package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/config"
	"github.com/user/sinema/internal/handler"
	"github.com/user/sinema/internal/middleware"
	"github.com/user/sinema/internal/router"
	"github.com/user/sinema/internal/session"
	"github.com/user/sinema/internal/utils"
	"go.uber.org/zap"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger, err := utils.InitLogger(cfg.LogPath, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// 后端客户端
	client := catalog.NewClient(cfg.CatalogURL, catalog.SurfaceFor(cfg.APILocale), cfg.CatalogTimeout, logger)

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	// 启用 gzip，默认压缩级别；代理的媒体文件不压缩
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{"^/media/"})))

	// 设置 Session 中间件，密钥由 APP_SECRET 派生
	store := cookie.NewStore(utils.SessionKeys(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 天
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("sinema_session", store))
	r.Use(session.Inject())

	// 加载模板（使用 multitemplate 解决继承问题）
	h := handler.NewHandler(cfg, client, logger)
	r.HTMLRender = router.LoadTemplates("./web/templates", h.I18n)

	// 静态文件
	r.Static("/static", "./web/static")

	// 中间件
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Security())

	// 注册路由
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		logger.Info("服务器启动",
			zap.String("addr", "http://localhost:"+cfg.Port),
			zap.String("catalog", cfg.CatalogURL),
			zap.String("api_locale", client.Surface().Name),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	logger.Info("服务器已退出")
}
