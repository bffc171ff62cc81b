package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"linfit/internal/config"
	"linfit/internal/dataset"
	"linfit/internal/model"
	"linfit/internal/trainer"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (built-in defaults when empty)")
	dataPath := flag.String("data", "", "Override sample file or directory")
	capacity := flag.Int("capacity", 0, "Maximum number of samples")
	iterations := flag.Int("iterations", 0, "Maximum number of gradient steps")
	learningRate := flag.Float64("lr", 0, "Learning rate")
	logEvery := flag.Int("log-every", 0, "Log every N iterations")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		DataPath:      *dataPath,
		Capacity:      *capacity,
		MaxIterations: *iterations,
		LearningRate:  *learningRate,
		LogEvery:      *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ds := dataset.New(cfg.Capacity)
	stats, err := dataset.LoadPath(cfg.DataPath, ds)
	if err != nil {
		log.Printf("FILE LOAD FAILED: %v", err)
	}
	log.Printf("data=%s loaded=%d capacity=%d truncated=%t", cfg.DataPath, stats.Loaded, ds.Cap(), stats.Truncated)

	if !cfg.SkipScaling {
		if err := rescale(ds, cfg.ScaleFrom, cfg.ScaleTo); err != nil {
			log.Printf("scaling skipped: %v", err)
		}
	}

	if err := dataset.WriteReport(os.Stdout, ds); err != nil {
		log.Fatalf("report: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCfg := trainer.RunConfig{
		MaxIterations: cfg.MaxIterations,
		LearningRate:  cfg.LearningRate,
		LogEvery:      cfg.LogEvery,
	}
	unit := model.NewLinearUnit(model.Params{W: cfg.InitWeight, B: cfg.InitBias})

	res, err := trainer.Run(ctx, runCfg, ds, unit)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	log.Printf("state=%s iterations=%d initial_mse=%.6g final_mse=%.6g r2=%.4f",
		res.State, res.Iterations, res.InitialMSE, res.FinalMSE, res.RSquared)
	fmt.Printf("final w : %g\n", res.Params.W)
	fmt.Printf("final b : %g\n", res.Params.B)
}

// rescale turns a zero-spread invariant violation into a diagnostic and exit
// status 2; ordinary rescale errors are returned.
func rescale(ds *dataset.Dataset, from, to float64) error {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(dataset.InvariantViolation)
			if !ok {
				panic(r)
			}
			log.Printf("fatal: %v", v)
			os.Exit(2)
		}
	}()
	return errors.Wrapf(ds.Rescale(from, to), "rescale [%g, %g]", from, to)
}
