package pkg

import "errors"

// 业务错误分类，handler 层统一映射为 HTTP 状态码
var (
	ErrValidation         = errors.New("invalid params")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
)
