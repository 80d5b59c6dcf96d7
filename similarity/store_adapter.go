package similarity

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/rushteam/simkit/core"
)

// StoreTableAdapter 把冻结后的相似度表写入 core.Store（Redis/内存等），
// 并支持从存储重新加载——重算代价高的表可以离线产出、在线直接服务。
type StoreTableAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀。
	// 全量评分对：{KeyPrefix}:pairs
	KeyPrefix string
}

// NewStoreTableAdapter 创建一个表存储适配器。
func NewStoreTableAdapter(s core.Store, keyPrefix string) *StoreTableAdapter {
	if keyPrefix == "" {
		keyPrefix = "sim"
	}
	return &StoreTableAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// pairRecord 是评分对的序列化形态。
type pairRecord struct {
	ItemA   int64   `json:"item_a"`
	ItemB   int64   `json:"item_b"`
	Score   float64 `json:"score"`
	Support int64   `json:"support"`
}

// Save 持久化整张表。
func (a *StoreTableAdapter) Save(ctx context.Context, t *Table) error {
	records := make([]pairRecord, 0, t.Len())
	for _, sp := range t.All() {
		records = append(records, pairRecord{
			ItemA:   sp.Key.ItemA,
			ItemB:   sp.Key.ItemB,
			Score:   sp.Score,
			Support: sp.Support,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, a.KeyPrefix+":pairs", data)
}

// Load 从存储加载整张表。key 不存在时返回 NOT_FOUND。
func (a *StoreTableAdapter) Load(ctx context.Context) (*Table, error) {
	data, err := a.store.Get(ctx, a.KeyPrefix+":pairs")
	if err != nil {
		return nil, err
	}

	var records []pairRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	t := &Table{
		pairs:  make(map[core.PairKey]core.ScoredPair, len(records)),
		byItem: make(map[int64][]core.ScoredPair),
	}
	for _, r := range records {
		sp := core.ScoredPair{
			Key:     core.NewPairKey(r.ItemA, r.ItemB),
			Score:   r.Score,
			Support: r.Support,
		}
		t.pairs[sp.Key] = sp
		t.byItem[sp.Key.ItemA] = append(t.byItem[sp.Key.ItemA], sp)
		t.byItem[sp.Key.ItemB] = append(t.byItem[sp.Key.ItemB], sp)
	}
	return t, nil
}
