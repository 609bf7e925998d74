// Package json 基于状态转移表的 JSON 语法校验
//
// 字符先被映射到类别，再由状态转移表给出下一状态或结构动作；
// 嵌套栈负责括号配对以及对象和数组中逗号的区分。
// 只回答"是否为合法 JSON 文本"，不构建任何值。
package json

import (
	"fmt"

	"github.com/cxykevin/jsoncheck/library/stack"
)

// Checker JSON 校验器，一个实例只用于一段输入
// 转移表只读，多个 Checker 可以在不同 goroutine 中并发使用
type Checker struct {
	state    state
	modes    *stack.Stack[mode]
	maxDepth int
	offset   int64
	err      error
}

// New 使用默认嵌套层数创建校验器
func New() *Checker {
	return NewWithDepth(DefaultMaxDepth)
}

// NewWithDepth 创建校验器，maxDepth 为允许的最大对象/数组嵌套层数
// 栈底哨兵不计入层数
func NewWithDepth(maxDepth int) *Checker {
	if maxDepth < 1 {
		maxDepth = 1
	}
	c := &Checker{
		state:    stateStart,
		modes:    stack.New[mode](maxDepth + 1),
		maxDepth: maxDepth,
	}
	c.modes.Push(modeDone)
	return c
}

// MaxDepth 返回最大嵌套层数
func (c *Checker) MaxDepth() int {
	return c.maxDepth
}

// Depth 返回当前嵌套层数
func (c *Checker) Depth() int {
	if c.modes.Size() == 0 {
		return 0
	}
	return c.modes.Size() - 1
}

// Err 返回拒绝原因，仍然合法时为 nil
func (c *Checker) Err() error {
	return c.err
}

// Offset 返回已接受的字符数
func (c *Checker) Offset() int64 {
	return c.offset
}

// Write 实现 io.Writer，逐字节喂入
// 被拒绝后返回带偏移量的错误，io.Copy 随之停止
func (c *Checker) Write(p []byte) (int, error) {
	for i, b := range p {
		if !c.Feed(int(b)) {
			return i, fmt.Errorf("json: offset %d: %w", c.offset, c.err)
		}
	}
	if c.err != nil {
		return 0, fmt.Errorf("json: offset %d: %w", c.offset, c.err)
	}
	return len(p), nil
}

// Valid 判断 data 是否为合法 JSON 文本
func Valid(data []byte) bool {
	return ValidDepth(data, DefaultMaxDepth)
}

// ValidString 判断字符串是否为合法 JSON 文本
func ValidString(s string) bool {
	c := New()
	for i := 0; i < len(s); i++ {
		if !c.Feed(int(s[i])) {
			return false
		}
	}
	return c.IsComplete()
}

// ValidDepth 以指定最大嵌套层数判断 data
func ValidDepth(data []byte, maxDepth int) bool {
	c := NewWithDepth(maxDepth)
	for _, b := range data {
		if !c.Feed(int(b)) {
			return false
		}
	}
	return c.IsComplete()
}
