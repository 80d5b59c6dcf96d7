package ingest

import (
	"context"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/rushteam/simkit/core"
)

// StoreSource 是基于 core.Store 接口的评分数据源。
// 评分序列和名称表由离线任务预先写入 Redis/内存存储，在线侧只读。
type StoreSource struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀。
	// 评分序列：{KeyPrefix}:ratings
	// 名称表：  {KeyPrefix}:names
	KeyPrefix string
}

// NewStoreSource 创建一个基于 core.Store 的评分数据源。
func NewStoreSource(s core.Store, keyPrefix string) *StoreSource {
	if keyPrefix == "" {
		keyPrefix = "ratings"
	}
	return &StoreSource{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// ratingRecord 是评分的序列化形态。
type ratingRecord struct {
	UserID int64 `json:"user_id"`
	ItemID int64 `json:"item_id"`
	Value  int64 `json:"value"`
}

func (s *StoreSource) Ratings(ctx context.Context) ([]core.Rating, error) {
	data, err := s.store.Get(ctx, s.KeyPrefix+":ratings")
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []ratingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, core.NewDomainError(
			core.ModuleIngest,
			core.ErrorCodeMalformedInput,
			fmt.Sprintf("ingest: decode ratings: %v", err),
		)
	}

	out := make([]core.Rating, 0, len(records))
	for _, r := range records {
		out = append(out, core.Rating{UserID: r.UserID, ItemID: r.ItemID, Value: r.Value})
	}
	return out, nil
}

// SaveRatings 把评分序列写入存储（离线装载用）。
func (s *StoreSource) SaveRatings(ctx context.Context, ratings []core.Rating) error {
	records := make([]ratingRecord, 0, len(ratings))
	for _, r := range ratings {
		records = append(records, ratingRecord{UserID: r.UserID, ItemID: r.ItemID, Value: r.Value})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.KeyPrefix+":ratings", data)
}

// Name 实现 NameLookup：名称表整体存为一个 JSON 对象。
func (s *StoreSource) Name(ctx context.Context, itemID int64) (string, error) {
	names, err := s.loadNames(ctx)
	if err != nil {
		return "", err
	}
	name, ok := names[strconv.FormatInt(itemID, 10)]
	if !ok {
		return "", core.NewDomainError(
			core.ModuleIngest,
			core.ErrorCodeNotFound,
			fmt.Sprintf("ingest: no name for item %d", itemID),
		)
	}
	return name, nil
}

// SaveNames 把名称表写入存储。
func (s *StoreSource) SaveNames(ctx context.Context, names MapNames) error {
	m := make(map[string]string, len(names))
	for itemID, name := range names {
		m[strconv.FormatInt(itemID, 10)] = name
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.KeyPrefix+":names", data)
}

func (s *StoreSource) loadNames(ctx context.Context) (map[string]string, error) {
	data, err := s.store.Get(ctx, s.KeyPrefix+":names")
	if err != nil {
		return nil, err
	}
	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	return names, nil
}
