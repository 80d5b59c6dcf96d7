package cooccur

import (
	"testing"

	"github.com/rushteam/simkit/core"
)

func TestPairExpanderFanout(t *testing.T) {
	e := &PairExpander{}

	// k 条评分恰好产出 C(k,2) 条贡献
	tests := []struct {
		k    int
		want int
	}{
		{k: 0, want: 0},
		{k: 1, want: 0}, // 只有一条有效评分的用户不产出任何配对
		{k: 2, want: 1},
		{k: 3, want: 3},
		{k: 5, want: 10},
	}

	for _, tt := range tests {
		p := core.NewUserProfile(1)
		for i := 0; i < tt.k; i++ {
			p.Put(int64(100+i), int64(i%5+1))
		}
		got := e.Expand(p)
		if len(got) != tt.want {
			t.Errorf("k=%d: got %d contributions, want C(%d,2)=%d", tt.k, len(got), tt.k, tt.want)
		}
	}
}

func TestPairExpanderCanonicalOrder(t *testing.T) {
	e := &PairExpander{}
	p := core.NewUserProfile(7)
	p.Put(30, 5)
	p.Put(10, 4)
	p.Put(20, 3)

	contributions := e.Expand(p)
	if len(contributions) != 3 {
		t.Fatalf("got %d contributions, want 3", len(contributions))
	}

	seen := make(map[core.PairKey]bool)
	for _, c := range contributions {
		if c.Key.ItemA >= c.Key.ItemB {
			t.Errorf("key %+v violates ItemA < ItemB", c.Key)
		}
		if seen[c.Key] {
			t.Errorf("duplicate pair %+v from one profile", c.Key)
		}
		seen[c.Key] = true

		// 评分值必须与键的两侧对齐
		if c.ValueA != p.Items[c.Key.ItemA] || c.ValueB != p.Items[c.Key.ItemB] {
			t.Errorf("contribution %+v values misaligned with profile", c)
		}
	}
}

func TestPairExpanderNilProfile(t *testing.T) {
	e := &PairExpander{}
	if got := e.Expand(nil); got != nil {
		t.Errorf("Expand(nil) = %v, want nil", got)
	}
}
