package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	// 测试初始化和基本日志功能
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv(envLogName, path)

	Load()

	l := New("test-module")
	l.Info("test info message")
	l.Debug("test debug message")
	l.Warn("test warn message")
	l.Error("test error message with\nnewline")

	data, err := os.ReadFile(path)
	if err != nil {
		// 其他测试可能已初始化到别的路径
		t.Skipf("log file not written here: %v", err)
	}
	content := string(data)
	for _, want := range []string{"[INFO][test-module] test info message", "[ERROR][test-module] test error message with\\nnewline"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, content)
		}
	}
}

func TestSanitizeSensitiveInfo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", `{"a":1}`, `{"a":1}`},
		{"password field", `{"user":"bob","password":"hunter2"}`, `{"user":"bob","password":"***"}`},
		{"token field with escape", `{"Token" : "a\"b"}`, `{"Token" : "***"}`},
		{"api key", `key sk-abcdefghijklmnop end`, `key sk-*** end`},
		{"url", `see https://example.com/api/v1`, `see https://***/api/v1`},
		{"url without path", `at http://internal.host`, `at http://***`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeSensitiveInfo(tt.input); got != tt.expected {
				t.Errorf("SanitizeSensitiveInfo(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Errorf("Expected unchanged text, got %q", got)
	}
	if got := Preview("abcdefgh", 4); got != "abcd..." {
		t.Errorf("Expected truncated text, got %q", got)
	}
	// "é" 占两个字节，不能被截断
	if got := Preview("aé", 2); got != "a..." {
		t.Errorf("Expected cut before multi-byte char, got %q", got)
	}
	if got := Preview("abc", 0); got != "abc" {
		t.Errorf("Expected no limit, got %q", got)
	}
}
