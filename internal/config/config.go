// Package config loads graphsim settings from an optional YAML file and
// GRAPHSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GRAPHSIM_GRAPH_NODES.
const EnvPrefix = "GRAPHSIM"

// Config holds all application configuration.
type Config struct {
	Graph     GraphConfig     `mapstructure:"graph"`
	Hits      HitsConfig      `mapstructure:"hits"`
	Path      PathConfig      `mapstructure:"path"`
	Flow      FlowConfig      `mapstructure:"flow"`
	Run       RunConfig       `mapstructure:"run"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GraphConfig sizes the random graphs.
type GraphConfig struct {
	Nodes       int   `mapstructure:"nodes"`
	Edges       int   `mapstructure:"edges"`
	MaxCapacity int64 `mapstructure:"max_capacity"`
	Seed        int64 `mapstructure:"seed"`
}

type HitsConfig struct {
	Steps     int     `mapstructure:"steps"`
	Normalize bool    `mapstructure:"normalize"`
	Tolerance float64 `mapstructure:"tolerance"`
	RTol      float64 `mapstructure:"rtol"`
	ATol      float64 `mapstructure:"atol"`
}

// PathConfig tunes the shortest-path drain. MaxIterations 0 means |matching|².
// Metric is "euclidean" or "dtw"; WarpWindow and WarpPenalty only apply to dtw.
// ImpassableCapacity 0 leaves every edge passable.
type PathConfig struct {
	MaxIterations      int     `mapstructure:"max_iterations"`
	Weighted           bool    `mapstructure:"weighted"`
	DrainRemainder     bool    `mapstructure:"drain_remainder"`
	Metric             string  `mapstructure:"metric"`
	WarpWindow         int     `mapstructure:"warp_window"`
	WarpPenalty        float64 `mapstructure:"warp_penalty"`
	ImpassableCapacity int64   `mapstructure:"impassable_capacity"`
}

// FlowConfig picks the max-flow algorithm: dinic, edmonds-karp or ford-fulkerson.
type FlowConfig struct {
	Algorithm string `mapstructure:"algorithm"`
}

type RunConfig struct {
	Trials      int `mapstructure:"trials"`
	Parallelism int `mapstructure:"parallelism"`
}

// OutputConfig names report files; empty disables that report.
type OutputConfig struct {
	NeighborsCSV string `mapstructure:"neighbors_csv"`
	SummaryCSV   string `mapstructure:"summary_csv"`
	JSON         string `mapstructure:"json"`
	MetricsFile  string `mapstructure:"metrics_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig selects the trace exporter: "none" or "stdout".
type TelemetryConfig struct {
	TraceExporter string `mapstructure:"trace_exporter"`
	ServiceName   string `mapstructure:"service_name"`
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.nodes", 20)
	v.SetDefault("graph.edges", 40)
	v.SetDefault("graph.max_capacity", 5)
	v.SetDefault("graph.seed", 0)

	v.SetDefault("hits.steps", 40)
	v.SetDefault("hits.normalize", true)
	v.SetDefault("hits.tolerance", 0.0)
	v.SetDefault("hits.rtol", 1e-5)
	v.SetDefault("hits.atol", 1e-8)

	v.SetDefault("path.max_iterations", 0)
	v.SetDefault("path.weighted", false)
	v.SetDefault("path.drain_remainder", false)
	v.SetDefault("path.metric", "euclidean")
	v.SetDefault("path.warp_window", 0)
	v.SetDefault("path.warp_penalty", 0.0)
	v.SetDefault("path.impassable_capacity", 0)

	v.SetDefault("flow.algorithm", "dinic")

	v.SetDefault("run.trials", 1)
	v.SetDefault("run.parallelism", 4)

	v.SetDefault("output.neighbors_csv", "closest_neighbor.csv")
	v.SetDefault("output.summary_csv", "")
	v.SetDefault("output.json", "")
	v.SetDefault("output.metrics_file", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("telemetry.trace_exporter", "none")
	v.SetDefault("telemetry.service_name", "graphsim")
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// defaults alone always decode
		panic(err)
	}

	return cfg
}

// Load reads configuration from path (skipped when empty) and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate reports every impossible setting at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Graph.Nodes < 1 {
		bad("graph.nodes=%d must be ≥ 1", c.Graph.Nodes)
	}
	if c.Graph.Edges < 0 {
		bad("graph.edges=%d must be ≥ 0", c.Graph.Edges)
	}
	if c.Graph.MaxCapacity < 1 {
		bad("graph.max_capacity=%d must be ≥ 1", c.Graph.MaxCapacity)
	}
	if c.Hits.Steps < 0 {
		bad("hits.steps=%d must be ≥ 0", c.Hits.Steps)
	}
	if c.Hits.Tolerance < 0 || c.Hits.RTol < 0 || c.Hits.ATol < 0 {
		bad("hits tolerances must be ≥ 0")
	}
	if c.Path.MaxIterations < 0 {
		bad("path.max_iterations=%d must be ≥ 0", c.Path.MaxIterations)
	}
	switch c.Path.Metric {
	case "euclidean", "dtw":
	default:
		bad("path.metric=%q must be euclidean or dtw", c.Path.Metric)
	}
	if c.Path.WarpWindow < 0 || c.Path.WarpPenalty < 0 || c.Path.ImpassableCapacity < 0 {
		bad("path warp_window, warp_penalty and impassable_capacity must be ≥ 0")
	}
	switch c.Flow.Algorithm {
	case "dinic", "edmonds-karp", "ford-fulkerson":
	default:
		bad("flow.algorithm=%q must be dinic, edmonds-karp or ford-fulkerson", c.Flow.Algorithm)
	}
	if c.Run.Trials < 1 {
		bad("run.trials=%d must be ≥ 1", c.Run.Trials)
	}
	if c.Run.Parallelism < 1 {
		bad("run.parallelism=%d must be ≥ 1", c.Run.Parallelism)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		bad("log.format=%q must be text or json", c.Log.Format)
	}
	switch c.Telemetry.TraceExporter {
	case "none", "stdout":
	default:
		bad("telemetry.trace_exporter=%q must be none or stdout", c.Telemetry.TraceExporter)
	}

	return errors.Join(errs...)
}
