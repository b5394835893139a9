package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized 密码错误、令牌缺失或过期（401/403）
	ErrUnauthorized = errors.New("catalog: unauthorized")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("catalog: not found")
	// ErrRejected 后端校验拒绝（400/422）
	ErrRejected = errors.New("catalog: rejected")
)

// APIError 后端返回的非 2xx 响应
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Status)
}

// Is 让 errors.Is 能按状态码分类
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrRejected:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// newAPIError 从响应体里尽量取出可读的错误信息（detail / message / error）
func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, Status: status}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error", "mesaj", "hata"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				apiErr.Message = msg
				return apiErr
			}
		}
	}
	if text := strings.TrimSpace(string(body)); len(text) > 0 && len(text) <= 200 {
		apiErr.Message = text
	}
	return apiErr
}
