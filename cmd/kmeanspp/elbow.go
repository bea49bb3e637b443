package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/codec"
	"github.com/hupe1980/kmeanspp/dataset"
	"github.com/hupe1980/kmeanspp/internal/config"
	"github.com/hupe1980/kmeanspp/seed"
	"github.com/spf13/cobra"
)

// ElbowPoint is the outcome of one K in an elbow sweep.
type ElbowPoint struct {
	K         int     `json:"k"`
	Inertia   float64 `json:"inertia"`
	Rounds    int     `json:"rounds"`
	Converged bool    `json:"converged"`
}

type elbowFlags struct {
	clusterFlags
	kMin int
	kMax int
	iter int
}

func (a *app) newElbowCmd() *cobra.Command {
	var f elbowFlags

	cmd := &cobra.Command{
		Use:   "elbow",
		Short: "Report inertia over a range of K for the elbow method",
		Long: `elbow clusters the input once for every K in [--k-min, --k-max], seeding
each run with k-means++, and reports the inertia (sum of squared distances
from each point to its centroid). The K after which inertia stops dropping
sharply is a good cluster count.

Text output is one "K,inertia" line per K.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if err := f.apply(cmd, a.cfg); err != nil {
				return err
			}
			return a.runElbow(cmd.Context(), f.kMin, f.kMax)
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.inputs, "input", "i", nil, "input URI, repeatable (default stdin)")
	fl.StringVarP(&f.output, "output", "o", "", "output URI (default stdout)")
	fl.Float64Var(&f.epsilon, "epsilon", 0.001, "convergence tolerance")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed for kmeans++")
	fl.StringVar(&f.format, "format", "text", "output format: text or json")
	fl.IntVar(&f.kMin, "k-min", 2, "smallest K")
	fl.IntVar(&f.kMax, "k-max", 10, "largest K")
	fl.IntVar(&f.iter, "iter", 200, "maximum rounds per K")

	return cmd
}

// apply layers changed flags over cfg and validates the sweep before any
// input is read.
func (f *elbowFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
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
	if fl.Changed("seed") {
		cfg.RandomSeed = f.seed
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("iter") {
		cfg.MaxIter = f.iter
	}

	if f.kMin <= 1 {
		return fmt.Errorf("%w: k-min %d", kmeanspp.ErrInvalidK, f.kMin)
	}
	if f.kMax < f.kMin {
		return fmt.Errorf("%w: k-max %d below k-min %d", kmeanspp.ErrInvalidK, f.kMax, f.kMin)
	}
	cfg.K = f.kMin
	cfg.Init = seed.PolicyKMeansPP.String()
	return cfg.Validate()
}

func (a *app) runElbow(ctx context.Context, kMin, kMax int) error {
	cfg := a.cfg

	points, err := dataset.Load(ctx, a.resolver, cfg.Inputs...)
	if err != nil {
		return err
	}
	largest := *cfg
	largest.K = kMax
	if err := largest.ValidateK(len(points)); err != nil {
		return err
	}

	sweep := make([]ElbowPoint, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		rng := rand.New(rand.NewPCG(cfg.RandomSeed, uint64(k)))
		seeds, err := seed.KMeansPP(points, k, rng)
		if err != nil {
			return err
		}

		res, err := kmeanspp.Fit(ctx, points, seeds, k, cfg.MaxIter, cfg.Epsilon, a.fitOptions()...)
		if err != nil {
			return fmt.Errorf("k=%d: %w", k, err)
		}
		sweep = append(sweep, ElbowPoint{K: k, Inertia: res.Inertia, Rounds: res.Rounds, Converged: res.Converged})
	}

	if cfg.Format == "json" {
		data, err := codec.Default.Marshal(sweep)
		if err != nil {
			return err
		}
		return a.resolver.Put(ctx, cfg.Output, append(data, '\n'))
	}

	var buf []byte
	for _, p := range sweep {
		buf = strconv.AppendInt(buf, int64(p.K), 10)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, p.Inertia, 'f', 4, 64)
		buf = append(buf, '\n')
	}
	return a.resolver.Put(ctx, cfg.Output, buf)
}
