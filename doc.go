// Package simkit 是一个物品相似度工具包（Similarity Kit）。
//
// 设计要点：
// - Pipeline-first: 过滤 → 分组 → 展开 → 聚合 严格单向串联，不回读下游
// - Combine 可结合可交换：聚合天然支持分片并行与两两归并
// - 冻结后只读：相似度表构建完成后可无同步并发查询
package simkit

import (
	"github.com/rushteam/simkit/pipeline"
	"github.com/rushteam/simkit/query"
	"github.com/rushteam/simkit/similarity"
)

// 轻量 facade：便于用户直接 import "simkit" 使用核心抽象。
type Engine = pipeline.Engine
type Table = similarity.Table
type QueryOptions = query.Options
type QueryResult = query.Result
