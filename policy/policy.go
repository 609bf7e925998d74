// Package policy 根据校验结果计算是否通过
//
// 规则是一条 expr 布尔表达式，例如 `valid && size < 1048576`。
package policy

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultRule 只看语法是否合法
const DefaultRule = "valid"

// Env 规则中可用的变量
type Env struct {
	Valid    bool   `expr:"valid"`    // 语法是否合法
	Size     int64  `expr:"size"`     // 已读取的字节数
	Source   string `expr:"source"`   // 输入来源
	Encoding string `expr:"encoding"` // 输入编码
	Cause    string `expr:"cause"`    // 拒绝原因，合法时为空
	Depth    int    `expr:"depth"`    // 最大嵌套层数配置
}

// Rule 编译后的规则
type Rule struct {
	source  string
	program *vm.Program
}

// Compile 编译规则，空字符串使用 DefaultRule
func Compile(rule string) (*Rule, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		rule = DefaultRule
	}
	program, err := expr.Compile(rule, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", rule, err)
	}
	return &Rule{source: rule, program: program}, nil
}

// String 返回规则原文
func (r *Rule) String() string {
	return r.source
}

// Eval 计算规则
func (r *Rule) Eval(env Env) (bool, error) {
	out, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("eval rule %q: %w", r.source, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("eval rule %q: result is %T, not bool", r.source, out)
	}
	return ok, nil
}
