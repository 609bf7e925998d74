package json

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

func feedString(c *Checker, s string) bool {
	for i := 0; i < len(s); i++ {
		if !c.Feed(int(s[i])) {
			return false
		}
	}
	return true
}

func TestRejectCause(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		in    string
		want  error
	}{
		{"control char", DefaultMaxDepth, "[\x01]", ErrInvalidChar},
		{"control char in string", DefaultMaxDepth, "[\"\x1f\"]", ErrInvalidChar},
		{"no transition", DefaultMaxDepth, "[,]", ErrUnexpectedChar},
		{"bad literal", DefaultMaxDepth, "[True]", ErrUnexpectedChar},
		{"lone closer", DefaultMaxDepth, "]", ErrUnexpectedChar},
		{"overflow array", 2, "[[[", ErrTooDeep},
		{"overflow object", 1, `{"a":{`, ErrTooDeep},
		{"array closed as object", DefaultMaxDepth, "[1}", ErrMismatch},
		{"object closed as array", DefaultMaxDepth, `{"a":1]`, ErrMismatch},
		{"closer past root", DefaultMaxDepth, "[]]", ErrMismatch},
		{"comma past root", DefaultMaxDepth, "[],", ErrMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithDepth(tt.depth)
			if feedString(c, tt.in) {
				t.Fatalf("Expected %q to be rejected", tt.in)
			}
			if !errors.Is(c.Err(), tt.want) {
				t.Errorf("Err() = %v; want %v", c.Err(), tt.want)
			}
		})
	}
}

func TestEndOfInputMarker(t *testing.T) {
	c := New()
	if !c.Feed('[') {
		t.Fatal("Expected '[' to be accepted")
	}
	if c.Feed(-1) {
		t.Fatal("Expected negative unit to be rejected")
	}
	if !errors.Is(c.Err(), ErrInvalidChar) {
		t.Errorf("Err() = %v; want %v", c.Err(), ErrInvalidChar)
	}
}

func TestStickyReject(t *testing.T) {
	c := New()
	if c.Feed(']') {
		t.Fatal("Expected ']' to be rejected")
	}
	cause := c.Err()
	for _, ch := range "[]{} \"a\"" {
		if c.Feed(int(ch)) {
			t.Fatalf("Expected Feed(%q) to stay rejected", ch)
		}
	}
	if c.Err() != cause {
		t.Errorf("Expected cause to stay %v, got %v", cause, c.Err())
	}
	if c.IsComplete() {
		t.Error("Expected rejected checker to be incomplete")
	}
	if c.Offset() != 0 {
		t.Errorf("Expected offset 0, got %d", c.Offset())
	}
}

func TestStringEndOnSentinel(t *testing.T) {
	// 只有栈底哨兵时不可能合法地结束字符串
	c := New()
	c.state = stateString
	if c.Feed('"') {
		t.Fatal("Expected string end on sentinel to be rejected")
	}
	if !errors.Is(c.Err(), ErrMismatch) {
		t.Errorf("Err() = %v; want %v", c.Err(), ErrMismatch)
	}
}

func TestIsComplete(t *testing.T) {
	c := New()
	if c.IsComplete() {
		t.Error("Expected fresh checker to be incomplete")
	}

	feedString(c, `[{}`)
	// 状态为 ok 但仍在数组中
	if c.state != stateOK {
		t.Fatalf("Expected state ok, got %s", c.state)
	}
	if c.IsComplete() {
		t.Error("Expected nested checker to be incomplete")
	}
	if c.Depth() != 1 {
		t.Errorf("Expected depth 1, got %d", c.Depth())
	}

	feedString(c, "]")
	if !c.IsComplete() {
		t.Error("Expected checker to be complete after closing array")
	}
	if !c.IsComplete() {
		t.Error("Expected IsComplete to be repeatable")
	}
	if c.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", c.Depth())
	}

	feedString(c, " \n")
	if !c.IsComplete() {
		t.Error("Expected trailing whitespace to keep checker complete")
	}
}

func TestNewWithDepthClamp(t *testing.T) {
	c := NewWithDepth(0)
	if c.MaxDepth() != 1 {
		t.Errorf("Expected depth clamped to 1, got %d", c.MaxDepth())
	}
	if !feedString(c, "[]") || !c.IsComplete() {
		t.Error("Expected one level to fit")
	}
	if New().MaxDepth() != DefaultMaxDepth {
		t.Errorf("Expected default depth %d, got %d", DefaultMaxDepth, New().MaxDepth())
	}
}

func TestWrite(t *testing.T) {
	c := New()
	n, err := io.Copy(c, strings.NewReader(`{"a":[1,2,{"b":3}]}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 19 {
		t.Errorf("Expected 19 bytes, got %d", n)
	}
	if !c.IsComplete() {
		t.Error("Expected document to be complete")
	}

	c = New()
	_, err = c.Write([]byte(`[1,2}`))
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Expected mismatch error, got %v", err)
	}
	if c.Offset() != 4 {
		t.Errorf("Expected offset 4, got %d", c.Offset())
	}
	if n, err := c.Write([]byte("]")); n != 0 || err == nil {
		t.Errorf("Expected write after reject to fail, got %d, %v", n, err)
	}
	if n, err := c.Write(nil); n != 0 || err == nil {
		t.Errorf("Expected empty write after reject to fail, got %d, %v", n, err)
	}
}

func TestWriteChunks(t *testing.T) {
	doc := `{"key":42, "k2":"value", "a1":[1,2,3], "u":"\u0041" }`
	for size := 1; size <= len(doc); size++ {
		c := New()
		for i := 0; i < len(doc); i += size {
			end := i + size
			if end > len(doc) {
				end = len(doc)
			}
			if _, err := c.Write([]byte(doc[i:end])); err != nil {
				t.Fatalf("chunk size %d: unexpected error %v", size, err)
			}
		}
		if !c.IsComplete() {
			t.Errorf("chunk size %d: expected complete document", size)
		}
	}
}

func TestConcurrentCheckers(t *testing.T) {
	docs := []struct {
		in   string
		want bool
	}{
		{`{"a":[1,2,{"b":3}]}`, true},
		{`[1,2,3]`, true},
		{`{]`, false},
		{`[,]`, false},
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		for _, d := range docs {
			wg.Add(1)
			go func(in string, want bool) {
				defer wg.Done()
				if got := ValidString(in); got != want {
					t.Errorf("ValidString(%q) = %v; want %v", in, got, want)
				}
			}(d.in, d.want)
		}
	}
	wg.Wait()
}
