package core

// Rating 是一条用户-物品评分记录（不可变三元组）。
// 由 ingest 层产出，被分组阶段消费一次，之后不再修改。
type Rating struct {
	UserID int64
	ItemID int64
	Value  int64
}

// UserProfile 聚合单个用户的全部有效评分。
// itemID 在单个用户内唯一；重复写入时以后写入的为准（last-write-wins）。
// 档案只在配对展开前短暂存在，展开后即可丢弃。
type UserProfile struct {
	UserID int64
	Items  map[int64]int64 // itemID -> 评分值
}

func NewUserProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID: userID,
		Items:  make(map[int64]int64),
	}
}

// Put 写入一条评分；同一 itemID 重复写入时覆盖旧值。
func (p *UserProfile) Put(itemID, value int64) {
	if p.Items == nil {
		p.Items = make(map[int64]int64)
	}
	p.Items[itemID] = value
}

// Len 返回该用户的有效评分数量。
func (p *UserProfile) Len() int {
	return len(p.Items)
}
