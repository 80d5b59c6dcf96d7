package pipeline

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/simkit/pkg/dsl"
	"github.com/rushteam/simkit/query"
)

// Config 是引擎与查询的配置结构（支持 YAML/JSON）。
type Config struct {
	Engine struct {
		MinRating int64 `yaml:"min_rating" json:"min_rating"`
		Workers   int   `yaml:"workers" json:"workers"`
	} `yaml:"engine" json:"engine"`

	Query struct {
		ScoreThreshold float64 `yaml:"score_threshold" json:"score_threshold"`
		MinSupport     int64   `yaml:"min_support" json:"min_support"`
		TopN           int     `yaml:"top_n" json:"top_n"`
		Predicate      string  `yaml:"predicate" json:"predicate"` // 可选 CEL 表达式
	} `yaml:"query" json:"query"`
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// BuildEngine 根据配置构建引擎。
func (c *Config) BuildEngine() *Engine {
	return &Engine{
		MinRating: c.Engine.MinRating,
		Workers:   c.Engine.Workers,
	}
}

// QueryOptions 根据配置构建查询参数；Predicate 非空时在此编译。
func (c *Config) QueryOptions() (query.Options, error) {
	opts := query.Options{
		ScoreThreshold: c.Query.ScoreThreshold,
		MinSupport:     c.Query.MinSupport,
		TopN:           c.Query.TopN,
	}
	if c.Query.Predicate != "" {
		predicate, err := dsl.Compile(c.Query.Predicate)
		if err != nil {
			return query.Options{}, fmt.Errorf("build predicate: %w", err)
		}
		opts.Predicate = predicate
	}
	return opts, nil
}
