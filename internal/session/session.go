// Package session 管理后台会话：保存 bearer 令牌，并按请求注入到需要它的处理器中。
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/user/sinema/internal/model"
)

const (
	// TokenKey 令牌在会话中的固定键名
	TokenKey = "token"
	userKey  = "userinfo"

	contextKey = "session.store"
)

func init() {
	// cookie 存储用 gob 编码会话值
	gob.Register(model.SessionUser{})
}

// Store 会话存储。令牌是不透明字符串，不校验格式也不检查过期。
type Store struct {
	s sessions.Session
}

// New 包装一个 gin-contrib 会话
func New(s sessions.Session) *Store {
	return &Store{s: s}
}

// Inject 中间件：为每个请求创建 Store 并放进上下文，必须注册在 sessions.Sessions 之后
func Inject() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, New(sessions.Default(c)))
		c.Next()
	}
}

// Current 取出当前请求的 Store
func Current(c *gin.Context) *Store {
	if v, ok := c.Get(contextKey); ok {
		if st, ok := v.(*Store); ok {
			return st
		}
	}
	st := New(sessions.Default(c))
	c.Set(contextKey, st)
	return st
}

// Login 保存令牌并标记为已登录。user 为空时尝试从令牌里读出展示用的信息。
func (st *Store) Login(token string, user *model.SessionUser) error {
	st.s.Set(TokenKey, token)
	if user == nil {
		u := userFromToken(token)
		user = &u
	}
	st.s.Set(userKey, *user)
	return st.s.Save()
}

// Logout 清除令牌和用户信息
func (st *Store) Logout() error {
	st.s.Delete(TokenKey)
	st.s.Delete(userKey)
	return st.s.Save()
}

// Token 当前令牌，未登录时为空
func (st *Store) Token() string {
	if v, ok := st.s.Get(TokenKey).(string); ok {
		return v
	}
	return ""
}

// Authenticated 是否持有令牌
func (st *Store) Authenticated() bool {
	return st.Token() != ""
}

// User 展示用的用户信息
func (st *Store) User() model.SessionUser {
	if u, ok := st.s.Get(userKey).(model.SessionUser); ok {
		return u
	}
	return model.SessionUser{}
}

// AddNotice 添加一条一次性提示（重定向后在页面上显示）
func (st *Store) AddNotice(msg string) {
	st.s.AddFlash(msg)
	_ = st.s.Save()
}

// Notices 取出并清空一次性提示
func (st *Store) Notices() []string {
	flashes := st.s.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	_ = st.s.Save()
	return out
}

// userFromToken 令牌恰好是 JWT 时读取 sub/role 用于展示，不验证签名
func userFromToken(token string) model.SessionUser {
	user := model.SessionUser{Username: "admin", Role: "admin"}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return user
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		user.Username = sub
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		user.Role = role
	}
	return user
}
