package core

import "math"

// PairKey 标识一个无序物品对，恒有 ItemA < ItemB（规范序，避免 (A,B)/(B,A) 重复计数）。
type PairKey struct {
	ItemA int64
	ItemB int64
}

// NewPairKey 构造规范序的 PairKey：较小的 itemID 放在 ItemA。
func NewPairKey(a, b int64) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{ItemA: a, ItemB: b}
}

// Other 返回物品对中相对 target 的另一个物品。
// target 不在物品对中时返回 (0, false)。
func (k PairKey) Other(target int64) (int64, bool) {
	switch target {
	case k.ItemA:
		return k.ItemB, true
	case k.ItemB:
		return k.ItemA, true
	}
	return 0, false
}

// Contains 判断 target 是否出现在物品对中。
func (k PairKey) Contains(target int64) bool {
	return k.ItemA == target || k.ItemB == target
}

// PairContribution 是单个用户对某个物品对的一次贡献（瞬时值，不批量存储）。
// ValueA/ValueB 分别对应 Key.ItemA/Key.ItemB 的评分。
type PairContribution struct {
	Key    PairKey
	ValueA int64
	ValueB int64
}

// PairAggregate 是按物品对累积的统计量，是聚合引擎唯一的持久累积单元。
//
// 合并操作满足结合律与交换律：贡献可以任意顺序到达，也可以先在分片/worker
// 内局部累积再两两 Merge，最终结果不变。这是并行聚合的正确性依据。
// 四个字段随贡献到达单调增长；输入耗尽后冻结为只读。
type PairAggregate struct {
	SumProduct float64
	SumSqA     float64
	SumSqB     float64
	Support    int64
}

// Add 吸收一条贡献。
func (agg *PairAggregate) Add(c PairContribution) {
	va := float64(c.ValueA)
	vb := float64(c.ValueB)
	agg.SumProduct += va * vb
	agg.SumSqA += va * va
	agg.SumSqB += vb * vb
	agg.Support++
}

// Merge 合并另一个局部聚合（用于分片并行后的归并）。
func (agg *PairAggregate) Merge(other PairAggregate) {
	agg.SumProduct += other.SumProduct
	agg.SumSqA += other.SumSqA
	agg.SumSqB += other.SumSqB
	agg.Support += other.Support
}

// Overflowed 检查累加器是否溢出（Inf/NaN）。
// 溢出是致命错误：整轮聚合必须废弃重跑，中间状态不可恢复。
func (agg *PairAggregate) Overflowed() bool {
	return math.IsInf(agg.SumProduct, 0) || math.IsNaN(agg.SumProduct) ||
		math.IsInf(agg.SumSqA, 0) || math.IsNaN(agg.SumSqA) ||
		math.IsInf(agg.SumSqB, 0) || math.IsNaN(agg.SumSqB) ||
		agg.Support < 0
}
