package similarity

import (
	"sort"

	"github.com/rushteam/simkit/core"
)

// Table 是冻结后的 ScoredPair 全集。构建完成后只读，可被任意多个
// goroutine 无同步并发查询。
type Table struct {
	pairs  map[core.PairKey]core.ScoredPair
	byItem map[int64][]core.ScoredPair // itemID -> 含该物品的全部评分对
}

// NewTable 对聚合映射逐对打分并冻结为表。
func NewTable(aggs map[core.PairKey]*core.PairAggregate) *Table {
	t := &Table{
		pairs:  make(map[core.PairKey]core.ScoredPair, len(aggs)),
		byItem: make(map[int64][]core.ScoredPair),
	}
	for key, agg := range aggs {
		sp := core.ScoredPair{
			Key:     key,
			Score:   Score(*agg),
			Support: agg.Support,
		}
		t.pairs[key] = sp
		t.byItem[key.ItemA] = append(t.byItem[key.ItemA], sp)
		t.byItem[key.ItemB] = append(t.byItem[key.ItemB], sp)
	}
	return t
}

// Len 返回表中评分对的数量。
func (t *Table) Len() int {
	return len(t.pairs)
}

// Get 查询某个物品对的评分；不存在时返回 (zero, false)。
func (t *Table) Get(a, b int64) (core.ScoredPair, bool) {
	sp, ok := t.pairs[core.NewPairKey(a, b)]
	return sp, ok
}

// PairsOf 返回包含目标物品的全部评分对。目标从未出现在任何物品对中时
// 返回空，这不是错误。
func (t *Table) PairsOf(itemID int64) []core.ScoredPair {
	return t.byItem[itemID]
}

// All 返回全部评分对，按 (ItemA, ItemB) 升序排列，用于落盘与结果比对。
func (t *Table) All() []core.ScoredPair {
	out := make([]core.ScoredPair, 0, len(t.pairs))
	for _, sp := range t.pairs {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.ItemA != out[j].Key.ItemA {
			return out[i].Key.ItemA < out[j].Key.ItemA
		}
		return out[i].Key.ItemB < out[j].Key.ItemB
	})
	return out
}
