// Package ingest 定义评分数据与物品名称的接入接口，以及常用实现
// （内存切片、MovieLens 文本格式、core.Store 后端）。
package ingest

import (
	"context"
	"fmt"

	"github.com/rushteam/simkit/core"
)

// RatingSource 提供一段有限的评分序列。
// 序列可以惰性产出，但必须有限；除分组阶段自身的要求外没有顺序约定。
type RatingSource interface {
	Ratings(ctx context.Context) ([]core.Rating, error)
}

// NameLookup 按物品 ID 查展示名。
// 未知 ID 返回 NOT_FOUND，由展示侧的调用方处理，引擎内部不关心名称。
type NameLookup interface {
	Name(ctx context.Context, itemID int64) (string, error)
}

// SliceSource 是内存切片实现的 RatingSource，用于测试/原型。
type SliceSource struct {
	Items []core.Rating
}

func (s *SliceSource) Ratings(_ context.Context) ([]core.Rating, error) {
	return s.Items, nil
}

// MapNames 是内存 map 实现的 NameLookup。
type MapNames map[int64]string

func (m MapNames) Name(_ context.Context, itemID int64) (string, error) {
	name, ok := m[itemID]
	if !ok {
		return "", core.NewDomainError(
			core.ModuleIngest,
			core.ErrorCodeNotFound,
			fmt.Sprintf("ingest: no name for item %d", itemID),
		)
	}
	return name, nil
}
