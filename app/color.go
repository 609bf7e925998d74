package app

import (
	"io"
	"os"
)

// 定义颜色常量
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// painter 只在终端上输出颜色
type painter struct {
	enabled bool
}

func newPainter(w io.Writer, noColor bool) painter {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return painter{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return painter{}
	}
	return painter{enabled: isTerminalFd(f.Fd())}
}

func (p painter) paint(color string, text string) string {
	if !p.enabled {
		return text
	}
	return colorBold + color + text + colorReset
}
