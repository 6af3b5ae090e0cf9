package main

import (
	"fmt"
	"os"

	"github.com/YasinDP/webp-converter/logger"
)

// run executes one invocation end to end: resolve the work list, convert
// each task sequentially, report, and in default mode clean up sources.
// Per-file failures never abort the batch, so a completed run exits zero.
func run(cfg *Config, console *logger.Console) error {
	if cfg.DefaultMode {
		console.Info("Running in default mode")
		console.Log("  Input:  %s", cfg.InputPath)
		console.Log("  Output: %s", cfg.OutputDir)
		if !cfg.NoDelete {
			console.Warn("Source files will be deleted after successful conversion")
		}
	}

	var spinner *logger.Spinner
	if info, err := os.Stat(cfg.InputPath); err == nil && info.IsDir() {
		spinner = console.StartSpinner("Scanning " + cfg.InputPath)
	}

	tasks, skipped, err := ResolveTasks(cfg)
	if spinner != nil {
		if err != nil {
			spinner.Stop(false, "Scan failed: "+cfg.InputPath)
		} else {
			spinner.Stop(true, fmt.Sprintf("Found %d image(s) in %s", len(tasks), cfg.InputPath))
		}
	}
	if err != nil {
		return err
	}

	reporter := NewReporter(console)
	for _, path := range skipped {
		reporter.Skip(path)
	}

	if len(tasks) == 0 {
		if reporter.Skipped == 0 {
			console.Warn("No supported images found")
			if cfg.DefaultMode {
				console.Log("Place images in: %s", cfg.InputPath)
			}
		}
		return nil
	}

	console.Info("Quality: %d%%", cfg.Quality)
	if cfg.Scale != 1.0 {
		console.Info("SVG scale: %gx", cfg.Scale)
	}

	engine := NewEngine(cfg)

	if len(tasks) == 1 {
		timer := console.StartTimer("Conversion")
		reporter.Record(engine.Convert(tasks[0]))
		timer.End()
	} else {
		bar := console.NewProgressBar(int64(len(tasks)), "Converting images")
		for _, task := range tasks {
			reporter.Record(engine.Convert(task))
			bar.Increment(1)
		}
		bar.Complete()
	}

	reporter.Summary()

	if cfg.DefaultMode {
		CleanupSources(cfg, reporter.Results, console)
	}
	return nil
}
