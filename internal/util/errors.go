package util

import "errors"

// 目录存储抛出的类型化错误，由 API 边界翻译为状态码。
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("incorrect credentials please try again")
)
