package cooccur

import "github.com/rushteam/simkit/core"

// RatingFilter 丢弃低信号评分：value < MinRating 的记录不进入后续阶段。
// 无副作用；除阈值比较外不做字段校验（格式问题由 ingest 层负责）。
type RatingFilter struct {
	// MinRating 评分过滤阈值（含）。<= 0 时使用默认值 3。
	MinRating int64
}

// Apply 返回满足阈值的子序列，顺序对下游无意义。
func (f *RatingFilter) Apply(in []core.Rating) []core.Rating {
	minRating := f.MinRating
	if minRating <= 0 {
		minRating = 3
	}

	out := make([]core.Rating, 0, len(in))
	for _, r := range in {
		if r.Value >= minRating {
			out = append(out, r)
		}
	}
	return out
}
