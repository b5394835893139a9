package catalog

import (
	"encoding/json"
	"fmt"
)

// encode 把规范结构体编码成本套接口的 JSON（只改顶层字段名）
func (s *Surface) encode(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("编码请求失败: %w", err)
	}
	if len(s.Fields) == 0 {
		return raw, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		// 非对象（数组、标量）原样发送
		return raw, nil
	}
	out := make(map[string]json.RawMessage, len(obj))
	for k, val := range obj {
		out[s.field(k)] = val
	}
	return json.Marshal(out)
}

// decode 把本套接口的 JSON 还原为规范字段名后解码到 target。
// 支持对象和对象数组。
func (s *Surface) decode(body []byte, target interface{}) error {
	if len(s.Fields) > 0 {
		renamed, err := s.renameToCanonical(body)
		if err != nil {
			return err
		}
		body = renamed
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("解析JSON失败: %w", err)
	}
	return nil
}

func (s *Surface) renameToCanonical(body []byte) ([]byte, error) {
	var generic interface{}
	if err := json.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}

	switch v := generic.(type) {
	case map[string]interface{}:
		return json.Marshal(s.renameObject(v))
	case []interface{}:
		for i, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				v[i] = s.renameObject(obj)
			}
		}
		return json.Marshal(v)
	default:
		return body, nil
	}
}

func (s *Surface) renameObject(obj map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(obj))
	for k, val := range obj {
		out[s.canonical(k)] = val
	}
	return out
}
