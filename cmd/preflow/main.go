// Command preflow computes maximum flows for edge-list files.
//
//	preflow [flags] network.txt [more.txt ...]
//
// Each output line is: file, algorithm, max flow, operation counters.
// Settings come from flags, PREFLOW_* environment variables and an optional
// preflow.yaml; logging is configured through the LOG_LEVEL, LOG_TIME_FORMAT
// and LOG_DEVELOPMENT environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/internal/logger"
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadSettings(viper.New())
	if err != nil {
		log.Fatal("configuration", zap.Error(err))
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: preflow [flags] network.txt [...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	r := &runner{cfg: cfg, log: log}
	if err = r.runFiles(context.Background(), os.Stdout, flag.Args()); err != nil {
		log.Error("max flow failed", zap.Error(err))
		os.Exit(1)
	}
}
