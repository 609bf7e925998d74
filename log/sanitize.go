package log

import (
	"regexp"
	"strings"
)

// 被校验的文本会以预览形式进入日志，其中可能带有凭据
var (
	// "password": "xxx" 一类字段，只保留字段名
	secretFieldPattern = regexp.MustCompile(`(?i)("(?:password|passwd|secret|token|access_token|refresh_token|api_key|apikey|authorization)"\s*:\s*)"(?:[^"\\]|\\.)*"`)
	// 常见 API 密钥前缀
	keyPattern = regexp.MustCompile(`\b((?:sk-|sk_|pk_|ghp_|xai-|hf_|gsk_|AIza|Bearer\s))[A-Za-z0-9\-_]{8,}`)
	// 网址只保留协议和路径
	urlPattern = regexp.MustCompile(`(https?://)[^/\s"]+(/[^\s"]*)?`)
)

// SanitizeSensitiveInfo 脱敏 JSON 中的凭据字段、API 密钥和网址主机
func SanitizeSensitiveInfo(text string) string {
	if text == "" {
		return ""
	}
	text = secretFieldPattern.ReplaceAllString(text, `$1"***"`)
	text = keyPattern.ReplaceAllString(text, "$1***")
	text = urlPattern.ReplaceAllString(text, "$1***$2")
	return strings.TrimSpace(text)
}

// Preview 截取输入开头用于日志，超长时追加省略号
func Preview(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	// 不截断在多字节字符中间
	cut := limit
	for cut > 0 && cut < len(text) && text[cut]&0xc0 == 0x80 {
		cut--
	}
	return text[:cut] + "..."
}
