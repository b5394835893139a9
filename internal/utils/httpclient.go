package utils

import (
	"net/http"
	"time"
)

// UserAgent 访问后端时使用的 UA
const UserAgent = "sinema-console/1.0"

// NewHTTPClient 创建访问目录后端的 HTTP 客户端。
// timeout 为 0 表示不设超时，大文件上传可能持续很久。
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{
		Timeout:   timeout,
		Transport: &uaTransport{base: transport},
	}
}

// uaTransport 给没有 User-Agent 的请求补上默认值
type uaTransport struct {
	base http.RoundTripper
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.base.RoundTrip(req)
}
