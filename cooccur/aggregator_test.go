package cooccur

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rushteam/simkit/core"
)

// 三个用户的经典场景：u3 被评分过滤剔除后，(A,B) 的聚合为
// sumProduct=41, sumSqA=41, sumSqB=41, support=2。
func TestAggregateScenario(t *testing.T) {
	filter := &RatingFilter{MinRating: 3}
	grouper := &UserGrouper{}
	aggregator := &PairAggregator{Workers: 1}

	ratings := []core.Rating{
		{UserID: 1, ItemID: 1, Value: 5}, {UserID: 1, ItemID: 2, Value: 5},
		{UserID: 2, ItemID: 1, Value: 4}, {UserID: 2, ItemID: 2, Value: 4},
		{UserID: 3, ItemID: 1, Value: 1}, {UserID: 3, ItemID: 2, Value: 1},
	}

	aggs, err := aggregator.Aggregate(context.Background(), grouper.Group(filter.Apply(ratings)))
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	agg := aggs[core.NewPairKey(1, 2)]
	require.NotNil(t, agg)
	require.Equal(t, float64(5*5+4*4), agg.SumProduct)
	require.Equal(t, float64(25+16), agg.SumSqA)
	require.Equal(t, float64(25+16), agg.SumSqB)
	require.Equal(t, int64(2), agg.Support)
}

// support 必须等于同时评过两个物品的去重用户数；与暴力参考实现对拍。
func TestAggregateAgainstBruteForce(t *testing.T) {
	profiles := syntheticProfiles(40, 12, 42)

	aggregator := &PairAggregator{Workers: 1}
	aggs, err := aggregator.Aggregate(context.Background(), profiles)
	require.NoError(t, err)

	want := bruteForce(profiles)
	require.Equal(t, len(want), len(aggs))
	for key, wantAgg := range want {
		got := aggs[key]
		require.NotNil(t, got, "missing pair %+v", key)
		require.InDelta(t, wantAgg.SumProduct, got.SumProduct, 1e-9)
		require.InDelta(t, wantAgg.SumSqA, got.SumSqA, 1e-9)
		require.InDelta(t, wantAgg.SumSqB, got.SumSqB, 1e-9)
		require.Equal(t, wantAgg.Support, got.Support)
	}
}

// 并行聚合与单线程聚合的最终映射必须逐键相等（任意内部处理顺序）。
func TestAggregateParallelMatchesSerial(t *testing.T) {
	profiles := syntheticProfiles(60, 15, 7)

	serial, err := (&PairAggregator{Workers: 1}).Aggregate(context.Background(), profiles)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		parallel, err := (&PairAggregator{Workers: workers}).Aggregate(context.Background(), profiles)
		require.NoError(t, err)
		require.Equal(t, len(serial), len(parallel), "workers=%d", workers)
		for key, wantAgg := range serial {
			got := parallel[key]
			require.NotNil(t, got, "workers=%d missing pair %+v", workers, key)
			require.InDelta(t, wantAgg.SumProduct, got.SumProduct, 1e-9)
			require.InDelta(t, wantAgg.SumSqA, got.SumSqA, 1e-9)
			require.InDelta(t, wantAgg.SumSqB, got.SumSqB, 1e-9)
			require.Equal(t, wantAgg.Support, got.Support)
		}
	}
}

func TestAggregateContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles := syntheticProfiles(10, 5, 1)
	_, err := (&PairAggregator{Workers: 1}).Aggregate(ctx, profiles)
	require.ErrorIs(t, err, context.Canceled)
}

// syntheticProfiles 生成确定性的合成档案：users 个用户，每人至多 maxItems 条评分。
func syntheticProfiles(users, maxItems int, seed int64) []*core.UserProfile {
	rng := rand.New(rand.NewSource(seed))
	out := make([]*core.UserProfile, 0, users)
	for u := 1; u <= users; u++ {
		p := core.NewUserProfile(int64(u))
		n := rng.Intn(maxItems) + 1
		for i := 0; i < n; i++ {
			p.Put(int64(rng.Intn(30)+1), int64(rng.Intn(3)+3))
		}
		out = append(out, p)
	}
	return out
}

// bruteForce 是不依赖展开/聚合实现的朴素参考计算。
func bruteForce(profiles []*core.UserProfile) map[core.PairKey]*core.PairAggregate {
	out := make(map[core.PairKey]*core.PairAggregate)
	for _, p := range profiles {
		for a, va := range p.Items {
			for b, vb := range p.Items {
				if a >= b {
					continue
				}
				key := core.NewPairKey(a, b)
				agg, ok := out[key]
				if !ok {
					agg = &core.PairAggregate{}
					out[key] = agg
				}
				agg.Add(core.PairContribution{Key: key, ValueA: va, ValueB: vb})
			}
		}
	}
	return out
}
