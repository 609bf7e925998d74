package storage

import (
	"context"
	"errors"
	"time"

	alog "github.com/cxykevin/jsoncheck/log"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Logger 将 GORM 日志转发到模块日志，支持级别与慢查询阈值
type Logger struct {
	out   *alog.LogsObj
	level gormLogger.LogLevel
	slow  time.Duration
}

// NewLogger 创建日志器
func NewLogger() gormLogger.Interface {
	return &Logger{
		out:   alog.New("gorm"),
		level: gormLogger.Warn,
		slow:  time.Millisecond * 300,
	}
}

// LogMode 设置日志级别
func (l *Logger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	n := *l
	n.level = level
	return &n
}

// Info 打印信息级别日志
func (l *Logger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Info {
		l.out.Info(msg, data...)
	}
}

// Warn 打印警告级别日志
func (l *Logger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Warn {
		l.out.Warn(msg, data...)
	}
}

// Error 打印错误级别日志
func (l *Logger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Error {
		l.out.Error(msg, data...)
	}
}

// Trace 跟踪 SQL 执行耗时与错误
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	elapsedMs := float64(elapsed.Nanoseconds()) / 1e6

	// 错误优先级比慢查询与普通日志高，未找到记录不算错误
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormLogger.Error {
		sql, rows := fc()
		l.out.Error("[%.3fms] rows:%d %s; error: %v", elapsedMs, rows, sql, err)
		return
	}

	// 慢查询判定
	if l.slow > 0 && elapsed > l.slow && l.level >= gormLogger.Warn {
		sql, rows := fc()
		l.out.Warn("slow query > %s [%.3fms] rows:%d %s", l.slow, elapsedMs, rows, sql)
		return
	}

	// 普通查询日志
	if l.level >= gormLogger.Info {
		sql, rows := fc()
		l.out.Debug("[%.3fms] rows:%d %s", elapsedMs, rows, sql)
	}
}
