package flow

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/core"
)

// DefaultEpsilon is the magnitude below which flows, residuals and excesses
// are treated as zero.
const DefaultEpsilon = 1e-9

// FlowOptions configures all max-flow algorithms.
//   - Epsilon: magnitudes ≤ Epsilon count as zero (0 selects DefaultEpsilon).
//   - Verbose: emit a Debug record per push, relabel and augmentation.
//   - Logger: destination for traces and the final summary (nil = no-op).
//   - AllowDisconnected: skip the structural source→sink reachability check.
//   - CheckInvariants: re-verify the height function after every operation.
//   - OnPush / OnRelabel: observation hooks for the push-relabel driver.
type FlowOptions struct {
	Epsilon           float64
	Verbose           bool
	Logger            *zap.Logger
	AllowDisconnected bool
	CheckInvariants   bool
	OnPush            func(ev PushEvent, view View)
	OnRelabel         func(ev RelabelEvent, view View)
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Epsilon: DefaultEpsilon,
		Logger:  zap.NewNop(),
	}
}

// normalize fills defaults in place and rejects meaningless values.
func (o *FlowOptions) normalize() error {
	if math.IsNaN(o.Epsilon) || o.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v", ErrOptionViolation, o.Epsilon)
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}

// resolveOptions copies opts (nil = defaults) and normalizes the copy.
func resolveOptions(opts *FlowOptions) (FlowOptions, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.normalize(); err != nil {
		return FlowOptions{}, err
	}
	return o, nil
}

// PushEvent describes one completed push.
type PushEvent struct {
	From, To    core.VertexIndex
	Edge        core.EdgeIndex
	Orientation core.Orientation
	Delta       float64
	Saturating  bool
}

// RelabelEvent describes one completed relabel.
type RelabelEvent struct {
	Vertex    core.VertexIndex
	OldHeight int
	NewHeight int
}

// View exposes read-only algorithm state to hooks.
type View interface {
	Height(v core.VertexIndex) int
	Excess(v core.VertexIndex) float64
	// CheckHeights verifies h(v) ≤ h(w)+1 over every usable residual arc.
	CheckHeights() error
}

// Stats counts the work done by one run.
type Stats struct {
	Iterations          int
	Pushes              int
	SaturatingPushes    int
	NonSaturatingPushes int
	Relabels            int
	CacheRebuilds       int
	Augmentations       int
	Phases              int
}

// EdgeFlow is the final flow on one edge.
type EdgeFlow struct {
	Edge     core.EdgeIndex
	From     string
	To       string
	Capacity float64
	Flow     float64
}

// Cut is an s-t cut: the source side of the residual graph and the
// saturated edges crossing it.
type Cut struct {
	SourceSide []string
	Edges      []EdgeFlow
	Capacity   float64
}

// Result is the outcome of a max-flow run. The network passed in holds the
// same flows after the call returns.
type Result struct {
	Algorithm     string
	MaxFlow       float64 // net flow into the sink
	SourceOutflow float64 // net flow out of the source
	Flows         []EdgeFlow
	Heights       []int // final heights; nil for augmenting-path methods
	Cut           Cut
	Stats         Stats
}
