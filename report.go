package main

import (
	"fmt"
	"path/filepath"

	"github.com/YasinDP/webp-converter/logger"
)

// Reporter streams one line per result as it completes and accumulates the
// run summary. Append-only; nothing else mutates the counts.
type Reporter struct {
	Console *logger.Console
	Results []ConversionResult

	Converted int
	Already   int
	Failed    int
	Skipped   int

	TotalSourceBytes int64
	TotalOutputBytes int64
}

func NewReporter(console *logger.Console) *Reporter {
	return &Reporter{Console: console}
}

// Skip reports a file that was never turned into a task (unsupported
// extension given directly on the command line).
func (r *Reporter) Skip(path string) {
	r.Skipped++
	r.Console.Log("⊘ Skipped (unsupported): %s", filepath.Base(path))
}

// Record logs the result line and folds it into the running totals.
func (r *Reporter) Record(res ConversionResult) {
	r.Results = append(r.Results, res)

	name := filepath.Base(res.Task.Source)
	switch res.Outcome {
	case OutcomeConverted:
		r.Converted++
		r.TotalSourceBytes += res.SourceSize
		r.TotalOutputBytes += res.OutputSize
		r.Console.Success("Converted: %s → %s (%s → %s, %+.1f%%)",
			name, filepath.Base(res.Task.Dest),
			FormatSize(res.SourceSize), FormatSize(res.OutputSize),
			SizeDelta(res.SourceSize, res.OutputSize))
	case OutcomeAlreadyConverted:
		r.Already++
		r.Console.Log("○ Already converted: %s", name)
	case OutcomeFailed:
		r.Failed++
		r.Console.Error("Failed to convert %s: %v", name, res.Err)
	}
}

// Summary prints the end-of-run totals table.
func (r *Reporter) Summary() {
	table := r.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted", fmt.Sprintf("%d", r.Converted))
	if r.Already > 0 {
		table.AddRow("Already converted", fmt.Sprintf("%d", r.Already))
	}
	table.AddRow("Failed", fmt.Sprintf("%d", r.Failed))
	if r.Converted > 0 {
		table.AddRow("Original size", FormatSize(r.TotalSourceBytes))
		table.AddRow("Converted size", FormatSize(r.TotalOutputBytes))
		if saved := r.TotalSourceBytes - r.TotalOutputBytes; saved > 0 {
			table.AddRow("Space saved", FormatSize(saved))
		}
	}

	r.Console.Info("Summary:")
	table.Print()
}

// SizeDelta is the percentage change from src to out bytes; negative means
// the output is smaller.
func SizeDelta(src, out int64) float64 {
	if src <= 0 {
		return 0
	}
	return (float64(out) - float64(src)) / float64(src) * 100
}

// FormatSize renders a byte count as a human-readable string.
func FormatSize(size int64) string {
	s := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if s < 1024 {
			return fmt.Sprintf("%.1f%s", s, unit)
		}
		s /= 1024
	}
	return fmt.Sprintf("%.1fTB", s)
}
