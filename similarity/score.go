// Package similarity 把冻结后的共现聚合转换为余弦相似度，并以只读表的
// 形式对外提供查询。
package similarity

import (
	"math"

	"github.com/rushteam/simkit/core"
)

// Score 计算单个冻结聚合的余弦相似度：
//
//	denominator = sqrt(sumSqA) * sqrt(sumSqB)
//	score = 0                      denominator == 0 时
//	      = sumProduct/denominator 其余情况
//
// 分母为 0（某一侧平方和为 0）在正整数评分下正常不会出现，这里按原始
// 策略返回 0 而不是报错。纯函数，无副作用。
func Score(agg core.PairAggregate) float64 {
	denominator := math.Sqrt(agg.SumSqA) * math.Sqrt(agg.SumSqB)
	if denominator == 0 {
		return 0
	}
	return agg.SumProduct / denominator
}
