// Package pipeline 把过滤 → 分组 → 展开 → 聚合四个阶段串成一条可配置的
// 引擎链路，并产出冻结的相似度表。数据严格单向流动，没有阶段回读下游。
package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/simkit/cooccur"
	"github.com/rushteam/simkit/core"
	"github.com/rushteam/simkit/ingest"
	"github.com/rushteam/simkit/similarity"
)

// Engine 是一次完整聚合运行的入口。
//
// 等价于一个显式的 map-reduce：map 侧是 过滤→分组→展开（按用户生成带键
// 贡献），reduce 侧是 PairAggregator 的可结合合并。失败的运行只能整体
// 重跑，中间累积状态不提供恢复保证。
type Engine struct {
	// MinRating 评分过滤阈值（含）。<= 0 时使用默认值 3。
	MinRating int64

	// Workers 聚合并行度。<= 0 时按 CPU 核数；1 为单线程。
	Workers int
}

// NewEngine 按配置接口的默认值构建引擎。cfg 为 nil 时使用内置默认值。
func NewEngine(cfg core.EngineConfig) *Engine {
	if cfg == nil {
		cfg = &core.DefaultEngineConfig{}
	}
	return &Engine{
		MinRating: cfg.DefaultMinRating(),
		Workers:   cfg.DefaultShards(),
	}
}

// BuildTable 消费数据源的全部评分，返回冻结后的相似度表。
func (e *Engine) BuildTable(ctx context.Context, src ingest.RatingSource) (*similarity.Table, error) {
	ratings, err := src.Ratings(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read ratings: %w", err)
	}
	return e.BuildTableFromRatings(ctx, ratings)
}

// BuildTableFromRatings 对已在内存中的评分序列执行同样的链路。
func (e *Engine) BuildTableFromRatings(ctx context.Context, ratings []core.Rating) (*similarity.Table, error) {
	filter := &cooccur.RatingFilter{MinRating: e.MinRating}
	grouper := &cooccur.UserGrouper{}
	aggregator := &cooccur.PairAggregator{Workers: e.Workers}

	profiles := grouper.Group(filter.Apply(ratings))

	aggs, err := aggregator.Aggregate(ctx, profiles)
	if err != nil {
		return nil, err
	}
	return similarity.NewTable(aggs), nil
}
