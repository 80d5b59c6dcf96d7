package cooccur

import "github.com/rushteam/simkit/core"

// UserGrouper 按 userID 把过滤后的评分分组为 UserProfile。
//
// 输入序列没有顺序约定，因此采用全量一次分组：所有用户的档案在内存中同时
// 驻留，直到分组完成才向下游输出。这是整条链路唯一真正有内存压力的位置；
// 若上游能保证同一用户的记录连续出现，可以改为单用户驻留的流式分组。
//
// 同一 (userID, itemID) 出现多条评分时，以后到达的为准（last-write-wins）。
type UserGrouper struct{}

// Group 返回每个出现过的用户一个档案，顺序任意。
func (g *UserGrouper) Group(in []core.Rating) []*core.UserProfile {
	byUser := make(map[int64]*core.UserProfile)
	order := make([]int64, 0)

	for _, r := range in {
		p, ok := byUser[r.UserID]
		if !ok {
			p = core.NewUserProfile(r.UserID)
			byUser[r.UserID] = p
			order = append(order, r.UserID)
		}
		p.Put(r.ItemID, r.Value)
	}

	out := make([]*core.UserProfile, 0, len(byUser))
	for _, userID := range order {
		out = append(out, byUser[userID])
	}
	return out
}
