// Package stack 定长栈
package stack

// Stack 结构体表示一个容量固定的栈
type Stack[T comparable] struct {
	items []T
	top   int
}

// New 创建并返回一个容量为 capacity 的栈，底层数组只分配一次
func New[T comparable](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{
		items: make([]T, capacity),
	}
}

// Push 将元素压入栈顶，栈满时返回 false 且不修改内容
func (s *Stack[T]) Push(item T) bool {
	if s.top >= len(s.items) {
		return false
	}
	s.items[s.top] = item
	s.top++
	return true
}

// Pop 弹出栈顶元素
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	s.top--
	item := s.items[s.top]
	s.items[s.top] = zero
	return item, true
}

// PopExpect 仅当栈顶等于 want 时弹出
// 栈空或不匹配返回 false
func (s *Stack[T]) PopExpect(want T) bool {
	if s.top == 0 || s.items[s.top-1] != want {
		return false
	}
	_, ok := s.Pop()
	return ok
}

// Top 查看栈顶元素但不移除
func (s *Stack[T]) Top() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	return s.items[s.top-1], true
}

// Bottom 查看栈底元素（最先入栈的元素）
func (s *Stack[T]) Bottom() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	return s.items[0], true
}

// IsEmpty 检查栈是否为空
func (s *Stack[T]) IsEmpty() bool {
	return s.top == 0
}

// Size 返回栈中元素的数量
func (s *Stack[T]) Size() int {
	return s.top
}

// Cap 返回栈容量
func (s *Stack[T]) Cap() int {
	return len(s.items)
}
