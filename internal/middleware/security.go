package middleware

import "github.com/gin-gonic/gin"

// Security 基础安全响应头。YouTube 播放需要允许 youtube.com 的 iframe，
// 外部封面和视频链接可以是任意 http/https 地址。
func Security() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy",
			"default-src 'self'; img-src 'self' http: https: data:; media-src 'self' http: https: blob:; "+
				"frame-src https://www.youtube.com; style-src 'self' 'unsafe-inline'; script-src 'self'")
		c.Next()
	}
}
