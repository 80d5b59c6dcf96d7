package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	content := `
engine:
  min_rating: 4
  workers: 2
query:
  score_threshold: 0.97
  min_support: 50
  top_n: 10
  predicate: "score > 0.97 && support > 50"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromYAML(path)
	require.NoError(t, err)

	engine := cfg.BuildEngine()
	require.Equal(t, int64(4), engine.MinRating)
	require.Equal(t, 2, engine.Workers)

	opts, err := cfg.QueryOptions()
	require.NoError(t, err)
	require.Equal(t, 0.97, opts.ScoreThreshold)
	require.Equal(t, int64(50), opts.MinSupport)
	require.Equal(t, 10, opts.TopN)
	require.NotNil(t, opts.Predicate)
}

func TestLoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	content := `{"engine":{"min_rating":3,"workers":1},"query":{"top_n":5}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromJSON(path)
	require.NoError(t, err)
	require.Equal(t, int64(3), cfg.Engine.MinRating)
	require.Equal(t, 5, cfg.Query.TopN)

	opts, err := cfg.QueryOptions()
	require.NoError(t, err)
	require.Nil(t, opts.Predicate)
}

func TestQueryOptionsBadPredicate(t *testing.T) {
	var cfg Config
	cfg.Query.Predicate = "score >" // 不完整的表达式
	_, err := cfg.QueryOptions()
	require.Error(t, err)
}
