package cooccur

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/simkit/core"
)

// PairAggregator 把贡献流按 (itemA, itemB) 归并为 PairAggregate 映射，
// 是整条链路的核心累积引擎。
//
// 正确性保证：每个 (用户, 无序物品对) 恰好贡献一次——同一用户不会对同一
// 物品对重复计数，也不会漏算。依据是：每个用户档案只被一个 worker 处理，
// 而 PairExpander 对每个档案的每个物品对恰好产出一条贡献。
//
// 并行模型：Workers 个 worker 各自持有局部映射（无共享写、无全局锁），
// 处理完毕后依赖 Merge 的结合律/交换律两两归并。顺序执行与并行执行
// 产出的最终映射逐键相等。
//
// 结果在所有输入消费完之后一次性物化：任何后到的贡献都可能更新任何已有
// 的键，所以不存在真正的流式提前输出。
type PairAggregator struct {
	// Workers 并行 worker 数。<= 0 时取 CPU 核数；1 时退化为单线程。
	Workers int
}

// Aggregate 消费全部用户档案，返回冻结前的完整聚合映射。
// 累加器溢出（Inf/NaN）是致命错误，整轮聚合作废。
func (a *PairAggregator) Aggregate(
	ctx context.Context,
	profiles []*core.UserProfile,
) (map[core.PairKey]*core.PairAggregate, error) {
	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(profiles) {
		workers = len(profiles)
	}

	if workers <= 1 {
		return a.aggregateSerial(ctx, profiles)
	}
	return a.aggregateParallel(ctx, profiles, workers)
}

func (a *PairAggregator) aggregateSerial(
	ctx context.Context,
	profiles []*core.UserProfile,
) (map[core.PairKey]*core.PairAggregate, error) {
	expander := &PairExpander{}
	out := make(map[core.PairKey]*core.PairAggregate)

	for _, p := range profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := absorb(out, expander.Expand(p)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (a *PairAggregator) aggregateParallel(
	ctx context.Context,
	profiles []*core.UserProfile,
	workers int,
) (map[core.PairKey]*core.PairAggregate, error) {
	partials := make([]map[core.PairKey]*core.PairAggregate, workers)
	eg, egCtx := errgroup.WithContext(ctx)

	// 用户按 worker 轮转切分：单个用户的全部贡献落在同一个局部映射里，
	// 跨用户顺序无关紧要（合并操作可交换）。
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			expander := &PairExpander{}
			local := make(map[core.PairKey]*core.PairAggregate)
			for i := w; i < len(profiles); i += workers {
				if err := egCtx.Err(); err != nil {
					return err
				}
				if err := absorb(local, expander.Expand(profiles[i])); err != nil {
					return err
				}
			}
			partials[w] = local
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 两两归并局部映射；Merge 满足结合律，归并顺序不影响结果。
	out := partials[0]
	for _, partial := range partials[1:] {
		for key, agg := range partial {
			if existing, ok := out[key]; ok {
				existing.Merge(*agg)
				if existing.Overflowed() {
					return nil, overflowErr(key)
				}
				continue
			}
			out[key] = agg
		}
	}
	return out, nil
}

// absorb 把一个用户的全部贡献吸收进映射，逐条检查溢出。
func absorb(
	into map[core.PairKey]*core.PairAggregate,
	contributions []core.PairContribution,
) error {
	for _, c := range contributions {
		agg, ok := into[c.Key]
		if !ok {
			agg = &core.PairAggregate{}
			into[c.Key] = agg
		}
		agg.Add(c)
		if agg.Overflowed() {
			return overflowErr(c.Key)
		}
	}
	return nil
}

func overflowErr(key core.PairKey) error {
	return core.NewDomainError(
		core.ModuleCooccur,
		core.ErrorCodeOverflow,
		fmt.Sprintf("cooccur: accumulator overflow on pair (%d,%d)", key.ItemA, key.ItemB),
	)
}
