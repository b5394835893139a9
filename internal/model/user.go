package model

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	Username string
	Role     string
}

// LoginToken 登录接口返回
type LoginToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
