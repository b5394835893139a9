package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/user/sinema/internal/session"
	"github.com/user/sinema/internal/utils"
)

// LoginPath 登录页
const LoginPath = "/admin"

// RequireSession 后台路由守卫：会话里没有令牌就跳转登录页，并带上原本请求的地址。
// 令牌本身不做任何校验，过期令牌会在调用后端时失败。
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Authenticated() {
			c.Next()
			return
		}

		// 页面请求重定向到登录页
		if !utils.WantsJSON(c) {
			target := c.Request.URL.Path
			if c.Request.URL.RawQuery != "" {
				target += "?" + c.Request.URL.RawQuery
			}
			c.Redirect(http.StatusFound, LoginPath+"?redirect="+url.QueryEscape(target))
			c.Abort()
			return
		}

		// 脚本请求返回 401
		utils.Unauthorized(c, "")
		c.Abort()
	}
}
