// Package configutil 配置相关的路径工具
package configutil

import (
	"os"
	"strings"
)

// ExpandPath 展开路径中的 ~ 和环境变量
// 只展开开头的 "~" 与 "~/"，"~user" 保持原样
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		// 获取用户家目录
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = homeDir + path[1:]
		}
	}
	// 展开环境变量
	return os.ExpandEnv(path)
}
