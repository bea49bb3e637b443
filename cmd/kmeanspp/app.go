package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/blobstore"
	minioblob "github.com/hupe1980/kmeanspp/blobstore/minio"
	s3blob "github.com/hupe1980/kmeanspp/blobstore/s3"
	"github.com/hupe1980/kmeanspp/codec"
	"github.com/hupe1980/kmeanspp/dataset"
	"github.com/hupe1980/kmeanspp/internal/config"
	"github.com/hupe1980/kmeanspp/seed"
	"github.com/spf13/cobra"
)

// Diagnostics printed on standard output before exiting with status 1.
const (
	msgInvalidK    = "Invalid number of clusters!"
	msgInvalidIter = "Invalid maximum iteration!"
	msgError       = "An Error has Occurred"
)

// app carries the process streams and the state built from configuration.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *kmeanspp.Logger
	metrics  kmeanspp.MetricsCollector
	prom     *PrometheusCollector
	resolver *dataset.Resolver

	// persistent flags
	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string
	progress    time.Duration
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  kmeanspp.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		metrics: kmeanspp.NoopMetricsCollector{},
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if ferr := a.flushMetrics(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "command failed", "error", err)
		fmt.Fprintln(stdout, diagnostic(err))
		return 1
	}
	return 0
}

// diagnostic maps an error onto the one-line message printed on stdout.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, kmeanspp.ErrInvalidK):
		return msgInvalidK
	case errors.Is(err, kmeanspp.ErrInvalidIterations):
		return msgInvalidIter
	default:
		return msgError
	}
}

func (a *app) newRootCmd() *cobra.Command {
	var f clusterFlags

	rootCmd := &cobra.Command{
		Use:   "kmeanspp K [iter]",
		Short: "K-means clustering from given seeds",
		Long: `kmeanspp clusters points into K groups with Lloyd's algorithm.

Points are read as comma-separated reals, one point per line, from standard
input or the given --input URIs (local paths, s3://bucket/key,
minio://bucket/key; .zst, .gz and .lz4 are decompressed). Seeds are the first K
points unless --init kmeans++ is given. The final centroids are printed one
per line with four decimals.

iter defaults to 200 and must be in (1, 1000); K must be in (1, N).`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if err := f.apply(cmd, a.cfg, args); err != nil {
				return err
			}
			return a.runCluster(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (default text)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format on exit")
	pf.DurationVar(&a.progress, "progress-interval", 5*time.Second, "minimum time between progress logs")

	fl := rootCmd.Flags()
	fl.StringArrayVarP(&f.inputs, "input", "i", nil, "input URI, repeatable (default stdin)")
	fl.StringVarP(&f.output, "output", "o", "", "output URI (default stdout)")
	fl.Float64Var(&f.epsilon, "epsilon", 0.001, "convergence tolerance")
	fl.StringVar(&f.init, "init", "first", "seeding policy: first or kmeans++")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed for kmeans++")
	fl.StringVar(&f.format, "format", "text", "output format: text or json")

	rootCmd.AddCommand(a.newFitCmd())
	rootCmd.AddCommand(a.newElbowCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kmeanspp v%s (%s)\n", version, commit)
		},
	})

	return rootCmd
}

// clusterFlags are the root command's local flags.
type clusterFlags struct {
	inputs  []string
	output  string
	epsilon float64
	init    string
	seed    uint64
	format  string
}

// apply layers changed flags and positional arguments over cfg and validates
// the result. No input has been read at this point.
func (f *clusterFlags) apply(cmd *cobra.Command, cfg *config.Config, args []string) error {
	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Inputs = f.inputs
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("epsilon") {
		cfg.Epsilon = f.epsilon
	}
	if fl.Changed("init") {
		cfg.Init = f.init
	}
	if fl.Changed("seed") {
		cfg.RandomSeed = f.seed
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}

	if len(args) > 0 {
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", kmeanspp.ErrInvalidK, args[0])
		}
		cfg.K = k
	}
	if err := cfg.ValidateK(-1); err != nil {
		return err
	}
	if len(args) > 1 {
		iter, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: %q", kmeanspp.ErrInvalidIterations, args[1])
		}
		cfg.MaxIter = iter
	}

	return cfg.Validate()
}

// setup loads configuration and builds the logger, metrics and resolver.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if pf.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if pf.Changed("metrics-file") {
		cfg.Metrics.Textfile = a.metricsFile
	}
	a.cfg = cfg

	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch cfg.Log.Format {
	case "json":
		a.logger = kmeanspp.NewLogger(slog.NewJSONHandler(a.stderr, opts))
	case "text", "":
		a.logger = kmeanspp.NewLogger(slog.NewTextHandler(a.stderr, opts))
	default:
		return fmt.Errorf("config: invalid log format %q", cfg.Log.Format)
	}

	if cfg.Metrics.Textfile != "" {
		a.prom = NewPrometheusCollector()
		a.metrics = a.prom
	}

	a.resolver = dataset.NewResolver(
		dataset.WithStdio(a.stdin, a.stdout),
		dataset.WithFactory("s3", func(ctx context.Context, bucket string) (blobstore.BlobStore, error) {
			return s3blob.New(ctx, bucket,
				s3blob.WithPrefix(cfg.S3.Prefix),
				s3blob.WithRegion(cfg.S3.Region),
				s3blob.WithEndpoint(cfg.S3.Endpoint),
			)
		}),
		dataset.WithFactory("minio", func(_ context.Context, bucket string) (blobstore.BlobStore, error) {
			m := cfg.MinIO
			return minioblob.New(m.Endpoint, m.AccessKey, m.SecretKey, m.Secure, bucket, m.Prefix)
		}),
	)

	a.logger.DebugContext(cmd.Context(), "configuration loaded", "config", cfg.String())
	return nil
}

func (a *app) fitOptions() []kmeanspp.Option {
	return []kmeanspp.Option{
		kmeanspp.WithLogger(a.logger),
		kmeanspp.WithMetricsCollector(a.metrics),
		kmeanspp.WithProgressInterval(a.progress),
	}
}

func (a *app) runCluster(ctx context.Context) error {
	cfg := a.cfg

	points, err := dataset.Load(ctx, a.resolver, cfg.Inputs...)
	if err != nil {
		return err
	}
	if err := cfg.ValidateK(len(points)); err != nil {
		return err
	}

	policy, err := seed.ParsePolicy(cfg.Init)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed))
	seeds, _, err := seed.Select(policy, points, cfg.K, rng)
	if err != nil {
		return err
	}

	res, err := kmeanspp.Fit(ctx, points, seeds, cfg.K, cfg.MaxIter, cfg.Epsilon, a.fitOptions()...)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return a.writeReport(ctx, cfg.Output, codec.Default, newReport(res))
	}
	return dataset.Save(ctx, a.resolver, cfg.Output, res.Centroids)
}

func (a *app) writeReport(ctx context.Context, uri string, c codec.Codec, r *Report) error {
	data, err := c.Marshal(r)
	if err != nil {
		return err
	}
	return a.resolver.Put(ctx, uri, append(data, '\n'))
}

func (a *app) flushMetrics() error {
	if a.prom == nil {
		return nil
	}
	return a.prom.WriteTextfile(a.cfg.Metrics.Textfile)
}
