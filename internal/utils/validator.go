package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages 把 gin 绑定返回的校验错误转成 字段 -> 提示 的映射。
// 非校验错误（比如数字解析失败）放在 "_" 键下。
func ValidationMessages(err error) map[string]string {
	if err == nil {
		return nil
	}

	msgs := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msgs[fe.Field()] = fieldMessage(fe)
		}
		return msgs
	}
	msgs["_"] = err.Error()
	return msgs
}

// FormatValidationErrors 合并为一行
func FormatValidationErrors(msgs map[string]string) string {
	parts := make([]string, 0, len(msgs))
	for field, msg := range msgs {
		if field == "_" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("invalid value (%s)", fe.Tag())
	}
}
