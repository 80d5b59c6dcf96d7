package cooccur

import (
	"sort"

	"github.com/rushteam/simkit/core"
)

// PairExpander 对单个用户档案做组合展开：k 条评分产出恰好 C(k,2) 条
// PairContribution，覆盖该用户评过的每一对不同物品，较小的 itemID 放在 ItemA。
//
// 复杂度对单个用户是二次的：评分特别多的用户会产出相应规模的扇出，
// 这里不做截断或特殊处理，扇出上限由部署侧控制输入数据决定。
// 不做任何过滤或打分，纯组合展开。
type PairExpander struct{}

// Expand 展开一个用户档案。k <= 1 时返回空。
func (e *PairExpander) Expand(p *core.UserProfile) []core.PairContribution {
	if p == nil || len(p.Items) < 2 {
		return nil
	}

	// 物品 ID 升序排列后取上三角，天然满足 ItemA < ItemB 的规范序。
	ids := make([]int64, 0, len(p.Items))
	for itemID := range p.Items {
		ids = append(ids, itemID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	k := len(ids)
	out := make([]core.PairContribution, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			out = append(out, core.PairContribution{
				Key:    core.PairKey{ItemA: ids[i], ItemB: ids[j]},
				ValueA: p.Items[ids[i]],
				ValueB: p.Items[ids[j]],
			})
		}
	}
	return out
}
