package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options 日志初始化选项
type Options struct {
	Level     string // debug/info/warn/error
	Output    string // console/file
	Format    string // text/json
	FilePath  string // Output 为 file 时的日志文件路径
	Colorize  bool   // 控制台文本输出是否着色（json 格式下忽略）
	AddSource bool   // 是否附带调用位置
}

var (
	mu       sync.RWMutex
	levelVar = new(slog.LevelVar)
	base     = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: levelVar}))
)

// Init 初始化全局日志器。重复调用会替换当前日志器。
func Init(opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	var w io.Writer
	switch opts.Output {
	case "", "console":
		w = os.Stdout
	case "file":
		if opts.FilePath == "" {
			return fmt.Errorf("log output is file but file_path is empty")
		}
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
	default:
		return fmt.Errorf("unknown log output: %s", opts.Output)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: opts.AddSource,
	}

	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	mu.Lock()
	levelVar.Set(level)
	base = slog.New(handler)
	mu.Unlock()
	return nil
}

// SetLevel 动态调整日志级别
func SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	levelVar.Set(l)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug 输出调试日志，args 为交替的键值对
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info 输出信息日志
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn 输出警告日志
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error 输出错误日志
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}
