package main

import (
	"fmt"
	"os"

	"github.com/gen2brain/webp"
	"github.com/spf13/cobra"

	"github.com/YasinDP/webp-converter/logger"
)

// Config holds the settings for one run. DefaultMode is set when no input
// argument was given: fixed input/output folders, delete-on-success.
type Config struct {
	InputPath     string
	OutputDir     string
	Quality       int
	Scale         float64
	Recursive     bool
	KeepStructure bool
	NoDelete      bool
	DefaultMode   bool
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultInputDir  = "input"
	defaultOutputDir = "output"
)

func NewRootCommand(console *logger.Console) *cobra.Command {
	cfg := &Config{}
	var (
		noColor     bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "webp-converter [input]",
		Short: "Convert images and SVGs to WebP format",
		Long: `webp-converter batch-converts raster images (PNG, JPG, GIF, BMP, TIFF, ICO)
and SVG files to WebP. With no arguments it runs in default mode: files are
read from ./input, written to ./output, and successfully converted sources
are removed so that anything left in ./input failed to convert.`,
		Example: `  webp-converter                      convert ./input to ./output (default mode)
  webp-converter image.png            convert a single image
  webp-converter logo.svg -s 2        convert an SVG at 2x resolution
  webp-converter ./images/ -r -o ./webp/
  webp-converter ./images/ -q 90`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				console.Box("webp-converter version information", fmt.Sprintf(
					"Version: %s\nBuild date: %s\nGit commit: %s",
					Version, BuildDate, GitCommit,
				))
				return nil
			}
			if noColor {
				console.Colorized = false
			}

			if len(args) == 1 {
				cfg.InputPath = args[0]
			} else {
				cfg.DefaultMode = true
				cfg.InputPath = defaultInputDir
				if cfg.OutputDir == "" {
					cfg.OutputDir = defaultOutputDir
				}
			}

			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg, console)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutputDir, "output", "o", "", "Output directory (default: next to sources, or ./output in default mode)")
	flags.IntVarP(&cfg.Quality, "quality", "q", 80, "WebP quality 1-100")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Process directories recursively")
	flags.Float64VarP(&cfg.Scale, "scale", "s", 1.0, "Scale factor for SVG conversion")
	flags.BoolVar(&cfg.KeepStructure, "keep-structure", false, "Mirror the source directory structure in the output")
	flags.BoolVar(&cfg.NoDelete, "no-delete", false, "Keep source files after conversion (default mode only)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&showVersion, "version", false, "Show version information")

	return cmd
}

// validate rejects bad parameters before any file is touched. A missing
// input path is only fatal in manual mode; default mode treats it as an
// empty run.
func (cfg *Config) validate() error {
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", cfg.Quality)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", cfg.Scale)
	}
	if !cfg.DefaultMode {
		if _, err := os.Stat(cfg.InputPath); err != nil {
			return fmt.Errorf("input path does not exist: %s", cfg.InputPath)
		}
	}
	return nil
}

func (cfg *Config) EncodingOptions() webp.Options {
	return webp.Options{
		Quality: cfg.Quality,
		Method:  6,
	}
}
