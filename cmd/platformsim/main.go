package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logging"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"go.uber.org/zap"
)

func main() {
	levelNames := flag.String("level", "level1", "comma-separated level names in levels/ (or paths with -files)")
	files := flag.Bool("files", false, "treat -level entries as file paths")
	frames := flag.Int("frames", 600, "frames to simulate per level")
	scriptName := flag.String("script", "", "input script in prefabs/scripts (empty for no input)")
	workers := flag.Int("workers", 4, "levels simulated at once")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, err := logging.New(logging.JSON, *verbose)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		logger.Fatal("load avatar spec", zap.Error(err))
	}

	var scenarios []sim.Scenario
	for _, name := range strings.Split(*levelNames, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var lvl *levels.Level
		if *files {
			lvl, err = levels.LoadFile(name)
		} else {
			lvl, err = levels.Load(name)
		}
		if err != nil {
			logger.Fatal("load level", zap.String("level", name), zap.Error(err))
		}
		if !lvl.HasStart() {
			logger.Warn("level has no start marker, using origin", zap.String("level", name))
		}

		var input sim.InputSource = sim.NoInput{}
		if *scriptName != "" {
			src, err := sim.LoadScriptSource(*scriptName)
			if err != nil {
				logger.Fatal("load script", zap.String("script", *scriptName), zap.Error(err))
			}
			input = src
		}

		scenarios = append(scenarios, sim.Scenario{
			Name:   name,
			Level:  lvl,
			Avatar: *spec,
			Input:  input,
			Frames: *frames,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sim.RunAll(ctx, scenarios, *workers, logger)
	if err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
	elapsed := time.Since(start)

	total := 0
	for _, r := range results {
		logger.Info("result", r.Fields()...)
		total += r.Frames
	}
	logger.Info("done",
		zap.Int("levels", len(results)),
		zap.Duration("elapsed", elapsed),
		zap.Float64("frames_per_sec", sim.Stats(total, elapsed)),
	)
}
