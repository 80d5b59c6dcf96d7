// Package query 对冻结后的相似度表做 Top-N 推荐查询。
// 查询是无状态的纯读取：每次调用彼此独立，可随时放弃，不影响表本身。
package query

import (
	"fmt"
	"sort"

	"github.com/rushteam/simkit/core"
	"github.com/rushteam/simkit/pkg/dsl"
	"github.com/rushteam/simkit/pkg/utils"
)

// Options 控制一次推荐查询。
type Options struct {
	// ScoreThreshold 相似度分数阈值（严格大于才保留）。
	ScoreThreshold float64

	// MinSupport 最小共同用户数（严格大于才保留）。
	MinSupport int64

	// TopN 每个视图返回的最大条数。<= 0 时使用默认值 10。
	TopN int

	// Predicate 可选的 CEL 过滤表达式，在阈值过滤之后逐条求值。
	Predicate *dsl.Predicate
}

// DefaultOptions 按配置接口的默认值构建查询参数（MovieLens 经验值：
// score > 0.97 且 support > 50，Top 10）。cfg 为 nil 时使用内置默认值。
func DefaultOptions(cfg core.EngineConfig) Options {
	if cfg == nil {
		cfg = &core.DefaultEngineConfig{}
	}
	return Options{
		ScoreThreshold: cfg.DefaultScoreThreshold(),
		MinSupport:     cfg.DefaultMinSupport(),
		TopN:           cfg.DefaultTopN(),
	}
}

// Result 是两个独立排序的 Top-N 视图。
// 两个视图来自同一批候选，只是排序依据不同。
type Result struct {
	// ByScore 按相似度分数降序。
	ByScore []core.Neighbor

	// BySupport 按共同用户数降序。
	BySupport []core.Neighbor
}

// Empty 判断两个视图是否都为空。空结果是合法输出，不是错误。
func (r *Result) Empty() bool {
	return len(r.ByScore) == 0 && len(r.BySupport) == 0
}

// Table 是查询所需的表能力（由 similarity.Table 实现）。
type Table interface {
	PairsOf(itemID int64) []core.ScoredPair
}

// Recommend 对目标物品做一次查询。
//
// 步骤：
//  1. 取出含目标物品的评分对，保留 score > ScoreThreshold 且
//     support > MinSupport 的；
//  2. 对每个保留的评分对取出相对目标的另一个物品；
//  3. 产出两个各自排序截断的 Top-N 视图，
//     同分/同支持度时较小的 itemID 在前（保证可复现）。
//
// 目标物品从未出现在任何评分对中时返回两个空视图，不报错。
func Recommend(t Table, target int64, opts Options) (*Result, error) {
	topN := opts.TopN
	if topN <= 0 {
		topN = 10
	}

	type candidate struct {
		itemID  int64
		score   float64
		support int64
	}

	var candidates []candidate
	for _, sp := range t.PairsOf(target) {
		if sp.Score <= opts.ScoreThreshold || sp.Support <= opts.MinSupport {
			continue
		}
		other, ok := sp.Key.Other(target)
		if !ok {
			continue
		}

		if opts.Predicate != nil {
			match, err := opts.Predicate.Match(target, other, sp.Score, sp.Support)
			if err != nil {
				return nil, fmt.Errorf("query predicate: %w", err)
			}
			if !match {
				continue
			}
		}

		candidates = append(candidates, candidate{
			itemID:  other,
			score:   sp.Score,
			support: sp.Support,
		})
	}

	build := func(basis string, less func(i, j candidate) bool) []core.Neighbor {
		sorted := make([]candidate, len(candidates))
		copy(sorted, candidates)
		sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		if len(sorted) > topN {
			sorted = sorted[:topN]
		}

		out := make([]core.Neighbor, 0, len(sorted))
		for _, c := range sorted {
			n := core.Neighbor{ItemID: c.itemID, Score: c.score, Support: c.support}
			n.PutLabel("rank_basis", utils.Label{Value: basis, Source: "query"})
			if opts.Predicate != nil {
				n.PutLabel("predicate", utils.Label{Value: opts.Predicate.String(), Source: "query"})
			}
			out = append(out, n)
		}
		return out
	}

	return &Result{
		ByScore: build("score", func(i, j candidate) bool {
			if i.score != j.score {
				return i.score > j.score
			}
			return i.itemID < j.itemID
		}),
		BySupport: build("support", func(i, j candidate) bool {
			if i.support != j.support {
				return i.support > j.support
			}
			return i.itemID < j.itemID
		}),
	}, nil
}
