package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/codec"
	"github.com/spf13/cobra"
)

func (a *app) newFitCmd() *cobra.Command {
	var (
		request   string
		output    string
		codecName string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Cluster a JSON request with explicit seeds",
		Long: `fit runs one clustering call described by a JSON request:

  {"points": [[..], ..], "centroids": [[..], ..], "k": K, "iter": I, "epsilon": E}

centroids are the seeds; k must equal their number and satisfy 1 < k < N.
The answer is a JSON report whose centroids keep the seed order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			c, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q", codecName)
			}
			return a.runFit(cmd.Context(), c, request, output)
		},
	}

	cmd.Flags().StringVarP(&request, "request", "r", "-", "request URI (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output URI (default stdout)")
	cmd.Flags().StringVar(&codecName, "codec", codec.Default.Name(), "JSON codec: go-json or json")

	return cmd
}

func (a *app) runFit(ctx context.Context, c codec.Codec, requestURI, outputURI string) error {
	rc, err := a.resolver.Open(ctx, requestURI)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		return err
	}

	var req Request
	if err := c.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	res, err := kmeanspp.Fit(ctx, req.Points, req.Centroids, req.K, req.Iter, req.Epsilon, a.fitOptions()...)
	if err != nil {
		return err
	}
	return a.writeReport(ctx, outputURI, c, newReport(res))
}
