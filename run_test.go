package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_DefaultMode(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	good := filepath.Join(input, "good.png")
	writePNG(t, good)
	bad := touch(t, input, "bad.png") // supported extension, corrupt content
	touch(t, input, "notes.txt")      // unsupported, ignored

	var buf bytes.Buffer
	cfg := &Config{
		InputPath:   input,
		OutputDir:   output,
		Quality:     80,
		Scale:       1.0,
		DefaultMode: true,
	}
	if err := run(cfg, testConsole(&buf)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(output, "good.webp")); err != nil {
		t.Errorf("converted output missing: %v", err)
	}
	if _, err := os.Stat(good); !os.IsNotExist(err) {
		t.Error("converted source not deleted in default mode")
	}
	if _, err := os.Stat(bad); err != nil {
		t.Error("failed source was deleted")
	}

	// Leftover supported files == failed conversions.
	remaining, err := collectSources(input, false)
	if err != nil {
		t.Fatalf("collectSources: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("got %d leftover files, want 1", len(remaining))
	}
	if !strings.Contains(buf.String(), "1 file(s) remain") {
		t.Errorf("missing leftover warning, got:\n%s", buf.String())
	}
}

func TestRun_DefaultModeNoDelete(t *testing.T) {
	input := t.TempDir()
	good := filepath.Join(input, "good.png")
	writePNG(t, good)

	cfg := &Config{
		InputPath:   input,
		OutputDir:   t.TempDir(),
		Quality:     80,
		Scale:       1.0,
		DefaultMode: true,
		NoDelete:    true,
	}
	if err := run(cfg, testConsole(nil)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(good); err != nil {
		t.Error("--no-delete removed the source")
	}
}

func TestRun_DefaultModeEmptyInput(t *testing.T) {
	cfg := &Config{
		InputPath:   filepath.Join(t.TempDir(), "input"),
		OutputDir:   "output",
		Quality:     80,
		Scale:       1.0,
		DefaultMode: true,
	}
	if err := run(cfg, testConsole(nil)); err != nil {
		t.Errorf("missing default-mode input dir should be a clean empty run, got %v", err)
	}
}
