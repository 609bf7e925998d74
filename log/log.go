// Package log 日志模块
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cxykevin/jsoncheck/internal/configutil"
)

const defaultLogPath = "~/.config/jsoncheck/log.log"
const envLogName = "JSONCHECK_LOG_PATH"

// Logger 日志对象
var Logger *log.Logger

var loggerInited bool = false
var initLck sync.Mutex

// 异步日志相关
type logMessage struct {
	level      string
	moduleName string
	message    string
}

var logChannel chan logMessage
var logWaitGroup sync.WaitGroup
var logFlushMutex sync.Mutex
var droppedLogCount uint64
var isShutdown uint32

// 日志内容压成一行
var lineEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
)

// Load 初始化日志文件
func Load() {
	initLck.Lock()
	defer initLck.Unlock()
	if loggerInited {
		return
	}

	logPath := defaultLogPath
	// 读取环境变量
	if path := os.Getenv(envLogName); path != "" {
		logPath = path
	}

	// 展开用户目录路径
	expandedPath := configutil.ExpandPath(logPath)

	// 确保目录存在
	dir := filepath.Dir(expandedPath)
	var out io.Writer = io.Discard
	if err := os.MkdirAll(dir, 0755); err == nil {
		// 新建/清空日志
		file, err := os.OpenFile(expandedPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			// 直接 panic
			panic(err)
		}
		out = file
	}

	// 创建logger，输出到文件
	Logger = log.New(out, "", log.LstdFlags)

	// 初始化异步日志channel
	logChannel = make(chan logMessage, 1000) // 缓冲1000条日志
	atomic.StoreUint32(&isShutdown, 0)

	// 启动日志处理goroutine
	go logWorker(logChannel)

	loggerInited = true

	Logger.Printf("[INFO][log] log inited")
}

// logWorker 异步日志处理worker
func logWorker(ch chan logMessage) {
	for msg := range ch {
		Logger.Printf("[%s][%s] %s", msg.level, msg.moduleName, msg.message)
		logWaitGroup.Done()
	}
}

// flushLogs 等待所有pending的日志写入完成
func flushLogs() {
	logFlushMutex.Lock()
	defer logFlushMutex.Unlock()
	logWaitGroup.Wait()
}

// Shutdown 写完剩余日志并停止 worker
func Shutdown() {
	initLck.Lock()
	defer initLck.Unlock()
	if !loggerInited {
		return
	}
	atomic.StoreUint32(&isShutdown, 1)
	flushLogs()
	close(logChannel)
}

// LogsObj 模块日志对象
type LogsObj struct {
	moduleName string
}

func format(msg string, v ...any) string {
	return lineEscaper.Replace(SanitizeSensitiveInfo(fmt.Sprintf(msg, v...)))
}

func (l *LogsObj) log(level string, msg string, v ...any) {
	str := format(msg, v...)

	if atomic.LoadUint32(&isShutdown) == 1 {
		Logger.Printf("[%s][%s] %s", level, l.moduleName, str)
		return
	}

	// 异步写入日志
	logFlushMutex.Lock()
	logWaitGroup.Add(1)
	logFlushMutex.Unlock()

	select {
	case logChannel <- logMessage{
		level:      level,
		moduleName: l.moduleName,
		message:    str,
	}:
	default:
		logWaitGroup.Done()
		atomic.AddUint64(&droppedLogCount, 1)
		l.logSync("WARN", "log channel full, drop log (total dropped: %d)", atomic.LoadUint64(&droppedLogCount))
	}
}

func (l *LogsObj) logSync(level string, msg string, v ...any) {
	// 同步写入日志
	Logger.Printf("[%s][%s] %s", level, l.moduleName, format(msg, v...))
}

// Info 打印日志
func (l *LogsObj) Info(msg string, v ...any) {
	l.log("INFO", msg, v...)
}

// Warn 打印警告
func (l *LogsObj) Warn(msg string, v ...any) {
	l.log("WARN", msg, v...)
}

// Error 打印错误 - 强制同步写入
func (l *LogsObj) Error(msg string, v ...any) {
	// 先flush所有pending的日志
	flushLogs()
	// 然后同步写入error日志
	l.logSync("ERROR", msg, v...)
}

// Debug 打印调试
func (l *LogsObj) Debug(msg string, v ...any) {
	l.log("DEBUG", msg, v...)
}

// New 创建日志对象
func New(moduleName string) *LogsObj {
	Load()
	return &LogsObj{moduleName: moduleName}
}
