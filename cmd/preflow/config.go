package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	algoPreflow = "preflow"
	algoScaling = "scaling"
	algoEK      = "edmonds-karp"
	algoCompare = "compare"
)

var (
	configFile = flag.String("config", "", "optional config file (yaml/json/toml); defaults to ./preflow.yaml or ./data/preflow.yaml")
	algorithm  = flag.String("algorithm", algoPreflow, "preflow | scaling | edmonds-karp | compare")
	sourceID   = flag.String("source", "s", "source vertex ID")
	sinkID     = flag.String("sink", "t", "sink vertex ID")
	epsilon    = flag.Float64("epsilon", 1e-9, "numeric tolerance")
	timeout    = flag.Duration("timeout", 0, "per-file time limit (0 = none)")
	verbose    = flag.Bool("verbose", false, "trace every push/relabel at debug level")
	validate   = flag.Bool("validate", false, "certify each result (bounds, conservation, no augmenting path)")
	workers    = flag.Int("workers", 4, "files solved concurrently")
)

// settings is the resolved run configuration.
type settings struct {
	Algorithm string
	Source    string
	Sink      string
	Epsilon   float64
	Timeout   time.Duration
	Verbose   bool
	Validate  bool
	Workers   int
}

var errBadSettings = errors.New("preflow: invalid settings")

// loadSettings layers flag defaults < config file < PREFLOW_* env < explicit flags.
func loadSettings(v *viper.Viper) (settings, error) {
	v.SetDefault("algorithm", *algorithm)
	v.SetDefault("source", *sourceID)
	v.SetDefault("sink", *sinkID)
	v.SetDefault("epsilon", *epsilon)
	v.SetDefault("timeout", *timeout)
	v.SetDefault("verbose", *verbose)
	v.SetDefault("validate", *validate)
	v.SetDefault("workers", *workers)

	v.SetEnvPrefix("PREFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("preflow")
		v.AddConfigPath(".")
		v.AddConfigPath("./data/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configFile != "" || !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("preflow: read config: %w", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(f.Name, f.Value.String())
		}
	})

	s := settings{
		Algorithm: v.GetString("algorithm"),
		Source:    v.GetString("source"),
		Sink:      v.GetString("sink"),
		Epsilon:   v.GetFloat64("epsilon"),
		Timeout:   v.GetDuration("timeout"),
		Verbose:   v.GetBool("verbose"),
		Validate:  v.GetBool("validate"),
		Workers:   v.GetInt("workers"),
	}
	return s, s.check()
}

func (s settings) check() error {
	switch s.Algorithm {
	case algoPreflow, algoScaling, algoEK, algoCompare:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", errBadSettings, s.Algorithm)
	}
	if s.Source == "" || s.Sink == "" || s.Source == s.Sink {
		return fmt.Errorf("%w: source %q / sink %q", errBadSettings, s.Source, s.Sink)
	}
	if s.Epsilon < 0 || s.Workers < 1 || s.Timeout < 0 {
		return fmt.Errorf("%w: epsilon=%g workers=%d timeout=%s", errBadSettings, s.Epsilon, s.Workers, s.Timeout)
	}
	return nil
}
