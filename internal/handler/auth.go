package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/session"
	"go.uber.org/zap"
)

// DashboardPath 登录后的默认页面
const DashboardPath = "/admin/dashboard"

// ==================== 认证页面 ====================

// LoginPage 登录页，已登录直接进后台
func (h *Handler) LoginPage(c *gin.Context) {
	if session.Current(c).Authenticated() {
		c.Redirect(http.StatusFound, DashboardPath)
		return
	}

	c.HTML(http.StatusOK, "login.html", h.RenderData(c, nil, gin.H{
		"Title":    h.title(nil, h.I18n.T("login.title")),
		"Redirect": c.Query("redirect"),
	}))
}

// Login 登录处理：密码交给后端换令牌，令牌存进会话
func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")
	redirect := c.PostForm("redirect")

	if strings.TrimSpace(password) == "" {
		h.loginFailed(c, redirect)
		return
	}

	tok, err := h.Catalog.Login(c.Request.Context(), password)
	if err != nil {
		h.Logger.Info("登录失败", zap.Error(err))
		h.loginFailed(c, redirect)
		return
	}

	if err := session.Current(c).Login(tok.AccessToken, nil); err != nil {
		h.Logger.Error("保存会话失败", zap.Error(err))
		h.loginFailed(c, redirect)
		return
	}

	// 登录后固定进后台首页，redirect 只随表单回显
	c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout 退出：清除令牌回到登录页
func (h *Handler) Logout(c *gin.Context) {
	if err := session.Current(c).Logout(); err != nil {
		h.Logger.Warn("清除会话失败", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) loginFailed(c *gin.Context, redirect string) {
	c.HTML(http.StatusOK, "login.html", h.RenderData(c, nil, gin.H{
		"Title":    h.title(nil, h.I18n.T("login.title")),
		"Error":    h.I18n.T("login.failed"),
		"Redirect": redirect,
	}))
}
