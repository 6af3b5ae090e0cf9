package main

import (
	"os"

	"github.com/YasinDP/webp-converter/logger"
)

// CleanupSources is the default-mode final pass: remove the source of every
// converted result, then warn about whatever is left in the input folder.
// Failed and already-converted sources are never touched, so the leftover
// count matches the failed count exactly.
func CleanupSources(cfg *Config, results []ConversionResult, console *logger.Console) {
	if cfg.NoDelete {
		return
	}

	for _, res := range results {
		if res.Outcome != OutcomeConverted {
			continue
		}
		if err := os.Remove(res.Task.Source); err != nil {
			console.Warn("Could not delete %s: %v", res.Task.Source, err)
		}
	}

	remaining, err := collectSources(cfg.InputPath, cfg.Recursive)
	if err != nil {
		return
	}
	if len(remaining) > 0 {
		console.Warn("%d file(s) remain in %s (conversion failed)", len(remaining), cfg.InputPath)
	}
}
