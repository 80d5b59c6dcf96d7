// Package dsl 提供基于 CEL (Common Expression Language) 的候选过滤表达式。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// getCELEnv 获取或创建 CEL 环境，定义变量
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("target", cel.IntType),
			cel.Variable("item", cel.IntType),
			cel.Variable("score", cel.DoubleType),
			cel.Variable("support", cel.IntType),
		)
	})
	return celEnv, celEnvErr
}

// Predicate 是编译后的候选过滤表达式，编译一次后可对任意条候选重复求值。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：score > 0.97 / support >= 50
//   - 逻辑：score > 0.9 && support > 10
//   - 物品：item != 50 / item in [1, 2, 3]
//
// 示例：
//   - `score > 0.97 && support > 50` → 原始 MovieLens 驱动的阈值组合
//   - `item != target` → 恒真（查询结果不含目标自身，仅作演示）
type Predicate struct {
	expr string
	prg  cel.Program
}

// Compile 编译一个候选过滤表达式。表达式必须返回布尔值。
func Compile(expr string) (*Predicate, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	return &Predicate{expr: expr, prg: prg}, nil
}

// String 返回原始表达式文本。
func (p *Predicate) String() string { return p.expr }

// Match 对一条候选求值，返回表达式结果。
func (p *Predicate) Match(target, item int64, score float64, support int64) (bool, error) {
	out, _, err := p.prg.Eval(map[string]interface{}{
		"target":  target,
		"item":    item,
		"score":   score,
		"support": support,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}
