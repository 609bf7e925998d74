//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package app

// 其他平台不输出颜色
func isTerminalFd(fd uintptr) bool {
	return false
}
