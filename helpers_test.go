package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/YasinDP/webp-converter/logger"
)

// testConsole returns a console writing to the given buffer (or discarded
// when buf is nil), with colors off so assertions can match plain text.
func testConsole(buf *bytes.Buffer) *logger.Console {
	var out io.Writer = io.Discard
	if buf != nil {
		out = buf
	}
	return logger.NewConsole(&logger.Options{Output: out, EnableColors: false})
}

// testImage builds a small opaque gradient so encoders have real pixels to
// chew on.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 128, 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, testImage(16, 16)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	writeFile(t, path, "x")
	return path
}

func basenames(tasks []ConversionTask) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = filepath.Base(task.Source)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
