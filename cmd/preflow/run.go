package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/preflow/converters"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
)

// runner solves edge-list files with one configuration.
type runner struct {
	cfg settings
	log *zap.Logger
}

type report struct {
	path   string
	result *flow.Result
}

// runFiles solves every path concurrently (bounded by cfg.Workers) and
// writes one line per file, in argument order, to out.
func (r *runner) runFiles(ctx context.Context, out io.Writer, paths []string) error {
	reports := make([]report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := r.runFile(gctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report{path: path, result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rep := range reports {
		st := rep.result.Stats
		if _, err := fmt.Fprintf(out, "%s\t%s\t%g\tpushes=%d relabels=%d augmentations=%d\n",
			rep.path, rep.result.Algorithm, rep.result.MaxFlow, st.Pushes, st.Relabels, st.Augmentations); err != nil {
			return err
		}
	}
	return nil
}

// runFile loads one network and solves it under the configured timeout.
func (r *runner) runFile(ctx context.Context, path string) (*flow.Result, error) {
	net, err := converters.LoadFile(path,
		converters.WithSourceID(r.cfg.Source),
		converters.WithSinkID(r.cfg.Sink),
	)
	if err != nil {
		return nil, err
	}
	st := net.Stats()
	r.log.Info("network loaded",
		zap.String("file", path),
		zap.Int("vertices", st.VertexCount),
		zap.Int("edges", st.EdgeCount),
	)

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	opts := flow.DefaultOptions()
	opts.Epsilon = r.cfg.Epsilon
	opts.Verbose = r.cfg.Verbose
	opts.Logger = r.log.With(zap.String("file", path))

	if r.cfg.Algorithm == algoCompare {
		return r.compare(ctx, net, opts)
	}
	res, err := solve(ctx, r.cfg.Algorithm, net, opts)
	if err != nil {
		return nil, err
	}
	if r.cfg.Validate {
		if err = flow.Validate(net, opts.Epsilon); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// compare runs all three algorithms on clones and fails on disagreement.
func (r *runner) compare(ctx context.Context, net *core.Network, opts flow.FlowOptions) (*flow.Result, error) {
	var primary *flow.Result
	for _, algo := range []string{algoPreflow, algoScaling, algoEK} {
		clone := net.Clone()
		res, err := solve(ctx, algo, clone, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		if err = flow.Validate(clone, opts.Epsilon); err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		if primary == nil {
			primary = res
			continue
		}
		tol := opts.Epsilon * math.Max(1, float64(net.EdgeCount()))
		if math.Abs(res.MaxFlow-primary.MaxFlow) > tol {
			return nil, fmt.Errorf("%w: %s=%g, %s=%g", flow.ErrNumericTolerance,
				primary.Algorithm, primary.MaxFlow, res.Algorithm, res.MaxFlow)
		}
		r.log.Info("algorithms agree",
			zap.String("reference", res.Algorithm),
			zap.Float64("max_flow", res.MaxFlow),
		)
	}
	return primary, nil
}

// solve dispatches to the chosen algorithm. PreflowPush has no internal
// cancellation, so it runs on its own goroutine over a clone and the
// deadline is enforced around it. A run abandoned on timeout keeps working
// on the clone only; net receives the flows only when the run finishes first.
func solve(ctx context.Context, algo string, net *core.Network, opts flow.FlowOptions) (*flow.Result, error) {
	switch algo {
	case algoScaling:
		return flow.CapacityScaling(ctx, net, &opts)
	case algoEK:
		return flow.EdmondsKarp(ctx, net, &opts)
	}

	type outcome struct {
		res *flow.Result
		err error
	}
	work := net.Clone()
	done := make(chan outcome, 1)
	go func() {
		res, err := flow.PreflowPush(work, &opts)
		done <- outcome{res, err}
	}()
	select {
	case o := <-done:
		if o.err != nil {
			return nil, o.err
		}
		for i, e := range work.Edges() {
			if err := net.SetFlow(core.EdgeIndex(i), e.Flow); err != nil {
				return nil, err
			}
		}
		return o.res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
