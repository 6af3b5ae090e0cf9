package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "github.com/biessek/golang-ico"
	"github.com/gen2brain/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"
)

// Outcome classifies what happened to a task. Every task gets exactly one.
type Outcome int

const (
	OutcomeConverted Outcome = iota
	OutcomeAlreadyConverted
	OutcomeFailed
)

// ConversionResult records how one task went. Err is set iff the outcome
// is OutcomeFailed.
type ConversionResult struct {
	Task       ConversionTask
	Outcome    Outcome
	SourceSize int64
	OutputSize int64
	Err        error
}

// Engine converts one task at a time. It never deletes or modifies source
// files; cleanup of converted sources belongs to the default-mode pass.
type Engine struct {
	Options webp.Options
	Scale   float64
}

func NewEngine(cfg *Config) *Engine {
	return &Engine{
		Options: cfg.EncodingOptions(),
		Scale:   cfg.Scale,
	}
}

// Convert decodes or renders the source, encodes it to WebP and writes the
// destination atomically. On failure no destination file is left behind.
func (e *Engine) Convert(task ConversionTask) ConversionResult {
	res := ConversionResult{Task: task}

	srcInfo, err := os.Stat(task.Source)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = fmt.Errorf("cannot stat source: %w", err)
		return res
	}
	res.SourceSize = srcInfo.Size()

	if AlreadyConverted(task.Source, task.Dest) {
		res.Outcome = OutcomeAlreadyConverted
		if destInfo, err := os.Stat(task.Dest); err == nil {
			res.OutputSize = destInfo.Size()
		}
		return res
	}

	var img image.Image
	switch task.Kind {
	case KindVector:
		img, err = RenderSVG(task.Source, e.Scale)
	default:
		img, err = decodeRaster(task.Source)
	}
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	if err := e.writeWebP(task.Dest, img); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	destInfo, err := os.Stat(task.Dest)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = fmt.Errorf("cannot stat output: %w", err)
		return res
	}
	res.OutputSize = destInfo.Size()
	res.Outcome = OutcomeConverted
	return res
}

// AlreadyConverted reports whether dest is a valid, non-empty WebP file
// newer than source. Reruns short-circuit on it, so an interrupted batch
// is idempotent; a stale or truncated destination is re-encoded.
func AlreadyConverted(source, dest string) bool {
	destInfo, err := os.Stat(dest)
	if err != nil || destInfo.Size() == 0 {
		return false
	}
	srcInfo, err := os.Stat(source)
	if err != nil {
		return false
	}
	if !destInfo.ModTime().After(srcInfo.ModTime()) {
		return false
	}

	f, err := os.Open(dest)
	if err != nil {
		return false
	}
	defer f.Close()

	_, err = xwebp.DecodeConfig(f)
	return err == nil
}

func decodeRaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}
	return img, nil
}

// writeWebP encodes img into a temp file next to dest, then renames it into
// place so a crash mid-write never leaves a corrupt destination.
func (e *Engine) writeWebP(dest string, img image.Image) (err error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".*.webp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	tempFileClosed := false
	defer func() {
		if !tempFileClosed {
			tempFile.Close()
		}
		if err != nil {
			os.Remove(tempPath)
		}
	}()

	if err = webp.Encode(tempFile, img, e.Options); err != nil {
		return fmt.Errorf("error encoding to WebP: %w", err)
	}

	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	tempFileClosed = true

	if err = os.Rename(tempPath, dest); err != nil {
		return fmt.Errorf("error renaming output: %w", err)
	}
	return nil
}
