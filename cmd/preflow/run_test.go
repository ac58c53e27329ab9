package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/builder"
	"github.com/katalvlaran/preflow/converters"
	"github.com/katalvlaran/preflow/flow"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func baseSettings(algo string) settings {
	return settings{Algorithm: algo, Source: "s", Sink: "t", Epsilon: 1e-9, Workers: 2}
}

func TestRunFilesAllAlgorithms(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "s a 10\ns b 10\na t 10\nb t 10\na b 1\n")
	b := writeFile(t, dir, "b.txt", "3\ns x 2\nx t 5\n")

	for _, algo := range []string{algoPreflow, algoScaling, algoEK, algoCompare} {
		t.Run(algo, func(t *testing.T) {
			cfg := baseSettings(algo)
			cfg.Validate = true
			r := &runner{cfg: cfg, log: zap.NewNop()}

			var out bytes.Buffer
			require.NoError(t, r.runFiles(context.Background(), &out, []string{a, b}))

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 2)
			require.True(t, strings.HasPrefix(lines[0], a+"\t"))
			require.Contains(t, lines[0], "\t20\t")
			require.Contains(t, lines[1], "\t2\t")
		})
	}
}

func TestRunFilesReportsBadInput(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "s a -4\na t 1\n")
	r := &runner{cfg: baseSettings(algoPreflow), log: zap.NewNop()}

	err := r.runFiles(context.Background(), &bytes.Buffer{}, []string{bad})
	require.ErrorIs(t, err, flow.ErrInvalidInput)
	require.Contains(t, err.Error(), bad)
}

func TestCustomTerminals(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "c.txt", "in mid 4\nmid out 3\n")
	cfg := baseSettings(algoPreflow)
	cfg.Source, cfg.Sink = "in", "out"
	cfg.Timeout = time.Minute
	r := &runner{cfg: cfg, log: zap.NewNop()}

	var out bytes.Buffer
	require.NoError(t, r.runFiles(context.Background(), &out, []string{p}))
	require.Contains(t, out.String(), "\t3\t")
}

func TestSolveHonorsCanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "d.txt", "s t 1\n")
	r := &runner{cfg: baseSettings(algoEK), log: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.runFile(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveTimeoutLeavesNetworkUntouched(t *testing.T) {
	net, err := builder.BuildNetwork(nil, []builder.BuilderOption{
		builder.WithSeed(5),
		builder.WithCapacityFn(builder.UniformIntCapacityFn(1, 50)),
	}, builder.Random(2000, 4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := flow.DefaultOptions()

	res, err := solve(ctx, algoPreflow, net, opts)
	if err != nil {
		require.ErrorIs(t, err, context.Canceled)
		for _, e := range net.Edges() {
			require.Zero(t, e.Flow)
		}
		return
	}
	// the run won the race: its flows must have been copied back
	require.NoError(t, flow.Validate(net, opts.Epsilon))
	require.InDelta(t, res.MaxFlow, net.NetInflow(net.Sink()), 1e-9)
}

func TestSolveCopiesFlowsBack(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "e.txt", "s a 4\na t 3\n")
	net, err := converters.LoadFile(p)
	require.NoError(t, err)

	res, err := solve(context.Background(), algoPreflow, net, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3.0, res.MaxFlow)
	require.Equal(t, 3.0, net.Flow(0))
	require.NoError(t, flow.Validate(net, flow.DefaultEpsilon))
}

func TestSettingsCheck(t *testing.T) {
	require.NoError(t, baseSettings(algoCompare).check())

	cfg := baseSettings("dinic")
	require.ErrorIs(t, cfg.check(), errBadSettings)

	cfg = baseSettings(algoPreflow)
	cfg.Sink = "s"
	require.ErrorIs(t, cfg.check(), errBadSettings)

	cfg = baseSettings(algoPreflow)
	cfg.Workers = 0
	require.ErrorIs(t, cfg.check(), errBadSettings)
}

func TestLoadSettingsDefaultsAndConfigFile(t *testing.T) {
	cfg, err := loadSettings(viper.New())
	require.NoError(t, err)
	require.Equal(t, algoPreflow, cfg.Algorithm)
	require.Equal(t, "s", cfg.Source)
	require.Equal(t, 4, cfg.Workers)

	p := writeFile(t, t.TempDir(), "preflow.yaml", "algorithm: scaling\nworkers: 1\ntimeout: 2s\n")
	*configFile = p
	t.Cleanup(func() { *configFile = "" })

	cfg, err = loadSettings(viper.New())
	require.NoError(t, err)
	require.Equal(t, algoScaling, cfg.Algorithm)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, 2*time.Second, cfg.Timeout)
}
