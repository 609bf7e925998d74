package json

import "errors"

// 拒绝原因，调用方使用 errors.Is 判断
var (
	// ErrInvalidChar 控制字符或输入结束标记
	ErrInvalidChar = errors.New("invalid input character")
	// ErrUnexpectedChar 当前状态下该字符无合法转移
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrTooDeep 嵌套超过最大层数
	ErrTooDeep = errors.New("nesting too deep")
	// ErrMismatch 括号不配对或上下文不符
	ErrMismatch = errors.New("mismatched nesting")
)
