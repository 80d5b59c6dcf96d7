package core

// EngineConfig 是聚合/查询相关的配置接口，用于提供默认值。
type EngineConfig interface {
	// DefaultMinRating 返回默认的评分过滤阈值（含）
	DefaultMinRating() int64

	// DefaultShards 返回默认的聚合分片数；0 表示按 CPU 核数
	DefaultShards() int

	// DefaultScoreThreshold 返回默认的相似度分数阈值（严格大于）
	DefaultScoreThreshold() float64

	// DefaultMinSupport 返回默认的最小共同用户数（严格大于）
	DefaultMinSupport() int64

	// DefaultTopN 返回默认返回的推荐条数
	DefaultTopN() int
}

// DefaultEngineConfig 是默认的配置实现，取值沿用 MovieLens 场景的经验值。
type DefaultEngineConfig struct{}

func (c *DefaultEngineConfig) DefaultMinRating() int64 {
	return 3
}

func (c *DefaultEngineConfig) DefaultShards() int {
	return 0
}

func (c *DefaultEngineConfig) DefaultScoreThreshold() float64 {
	return 0.97
}

func (c *DefaultEngineConfig) DefaultMinSupport() int64 {
	return 50
}

func (c *DefaultEngineConfig) DefaultTopN() int {
	return 10
}
