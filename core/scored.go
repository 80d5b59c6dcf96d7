package core

import "github.com/rushteam/simkit/pkg/utils"

// ScoredPair 是由冻结后的 PairAggregate 派生的只读评分对。
// Score 为余弦相似度，取值 [0,1]；分母为 0 时为 0。
type ScoredPair struct {
	Key     PairKey
	Score   float64
	Support int64
}

// Neighbor 是针对某个目标物品的一条推荐结果。
// Labels 用于解释与观测（排序依据、命中的过滤条件等）。
type Neighbor struct {
	ItemID  int64
	Score   float64
	Support int64
	Labels  map[string]utils.Label
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (n *Neighbor) PutLabel(key string, lbl utils.Label) {
	if n.Labels == nil {
		n.Labels = make(map[string]utils.Label)
	}
	if old, ok := n.Labels[key]; ok {
		n.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	n.Labels[key] = lbl
}
