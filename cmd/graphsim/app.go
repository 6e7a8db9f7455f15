package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/flow"
	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/internal/config"
	"github.com/katalvlaran/graphsim/internal/telemetry"
	"github.com/katalvlaran/graphsim/pathdist"
	"github.com/katalvlaran/graphsim/similarity"
)

// app holds what every subcommand shares once PersistentPreRunE has run.
type app struct {
	configPath string
	cfg        *config.Config

	log      *logrus.Logger
	tracer   trace.Tracer
	shutdown func(context.Context) error

	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		logLevel  string
		logFormat string
		exporter  string
	)

	root := &cobra.Command{
		Use:           "graphsim",
		Short:         "Estimate how alike two capacity graphs are",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if flags.Changed("trace") {
				cfg.Telemetry.TraceExporter = exporter
			}
			applyGraphFlags(cmd, cfg)

			return a.setup(cmd, cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (env: GRAPHSIM_*)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text|json")
	pf.StringVar(&exporter, "trace", "none", "Trace exporter: none|stdout")

	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newTrialsCmd(a))
	root.AddCommand(newHitsCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// addGraphFlags registers the random-graph size flags on cmd.
func addGraphFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("nodes", "n", 20, "Vertices per random graph")
	f.IntP("edges", "m", 40, "Edges per random graph")
	f.Int64("max-capacity", 5, "Largest random edge capacity")
	f.Int64("seed", 0, "Random seed (0 picks the fixed default)")
}

// applyGraphFlags copies explicitly set graph flags over cfg.
func applyGraphFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Lookup("nodes") == nil {
		return
	}
	if f.Changed("nodes") {
		cfg.Graph.Nodes, _ = f.GetInt("nodes")
	}
	if f.Changed("edges") {
		cfg.Graph.Edges, _ = f.GetInt("edges")
	}
	if f.Changed("max-capacity") {
		cfg.Graph.MaxCapacity, _ = f.GetInt64("max-capacity")
	}
	if f.Changed("seed") {
		cfg.Graph.Seed, _ = f.GetInt64("seed")
	}
}

func (a *app) setup(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tp, shutdown, err := telemetry.InitTracing(ctx, telemetry.TraceConfig{
		Exporter:    cfg.Telemetry.TraceExporter,
		ServiceName: cfg.Telemetry.ServiceName,
		Writer:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m, err := telemetry.NewMetrics(reg)
	if err != nil {
		return err
	}

	a.cfg, a.log, a.shutdown = cfg, log, shutdown
	a.tracer = tp.Tracer(telemetry.TracerName)
	a.registry, a.metrics = reg, m
	log.WithFields(logrus.Fields{
		"nodes":    cfg.Graph.Nodes,
		"edges":    cfg.Graph.Edges,
		"exporter": cfg.Telemetry.TraceExporter,
	}).Debug("configuration loaded")

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.cfg != nil && a.cfg.Output.MetricsFile != "" {
		if err := telemetry.WriteTextfile(a.registry, a.cfg.Output.MetricsFile); err != nil {
			return err
		}
	}
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return a.shutdown(ctx)
}

// similarityOptions translates the loaded config into pipeline options.
func (a *app) similarityOptions() ([]similarity.Option, error) {
	alg, err := flow.ParseAlgorithm(a.cfg.Flow.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := []similarity.Option{
		similarity.WithLogger(a.log),
		similarity.WithTracer(a.tracer),
		similarity.WithMetrics(a.metrics),
		similarity.WithSeed(a.cfg.Graph.Seed),
		similarity.WithHitsOptions(a.hitsOptions()...),
		similarity.WithParallelism(a.cfg.Run.Parallelism),
		similarity.WithFlowAlgorithm(alg),
	}
	popts, err := a.pathOptions()
	if err != nil {
		return nil, err
	}

	return append(opts, similarity.WithPathOptions(popts...)), nil
}

func (a *app) pathOptions() ([]pathdist.Option, error) {
	p := a.cfg.Path
	metric, err := pathdist.ParseMetric(p.Metric)
	if err != nil {
		return nil, err
	}
	opts := []pathdist.Option{pathdist.WithMetric(metric)}
	if p.MaxIterations > 0 {
		opts = append(opts, pathdist.WithMaxIterations(p.MaxIterations))
	}
	if p.Weighted {
		opts = append(opts, pathdist.WithWeightedPaths())
	}
	if p.DrainRemainder {
		opts = append(opts, pathdist.WithDrainRemainder())
	}
	if metric == pathdist.Warped {
		opts = append(opts, pathdist.WithWarpWindow(p.WarpWindow), pathdist.WithWarpPenalty(p.WarpPenalty))
	}
	if p.ImpassableCapacity > 0 {
		opts = append(opts, pathdist.WithImpassableCapacity(p.ImpassableCapacity))
	}

	return opts, nil
}

func (a *app) hitsOptions() []hits.Option {
	h := a.cfg.Hits

	return []hits.Option{
		hits.WithSteps(h.Steps), hits.WithNormalize(h.Normalize),
		hits.WithTolerance(h.Tolerance), hits.WithRTol(h.RTol), hits.WithATol(h.ATol),
	}
}

// randomGraph draws one G(n,m) capacity graph from rng.
func (a *app) randomGraph(rng *rand.Rand) (*core.Graph, error) {
	g := a.cfg.Graph

	return builder.BuildGraph(
		[]core.GraphOption{core.WithName(builder.GNMName(g.Nodes, g.Edges))},
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithMaxCapacity(g.MaxCapacity)},
		builder.RandomCapacity(g.Nodes, g.Edges),
	)
}

// randomPair draws graph A and then graph B (or a relabelled copy of A)
// from a source seeded with seed.
func (a *app) randomPair(seed int64, isomorphic bool) (*core.Graph, *core.Graph, error) {
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	g1, err := a.randomGraph(rng)
	if err != nil {
		return nil, nil, err
	}
	if isomorphic {
		g2, _, err := builder.Shuffled(g1, rng)
		return g1, g2, err
	}
	g2, err := a.randomGraph(rng)

	return g1, g2, err
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
