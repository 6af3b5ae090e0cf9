package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestCleanupSources_DeletesConvertedOnly(t *testing.T) {
	dir := t.TempDir()
	converted := touch(t, dir, "ok.png")
	failed := touch(t, dir, "bad.png")
	already := touch(t, dir, "done.png")

	results := []ConversionResult{
		{Task: ConversionTask{Source: converted}, Outcome: OutcomeConverted},
		{Task: ConversionTask{Source: failed}, Outcome: OutcomeFailed},
		{Task: ConversionTask{Source: already}, Outcome: OutcomeAlreadyConverted},
	}

	var buf bytes.Buffer
	cfg := &Config{InputPath: dir, DefaultMode: true}
	CleanupSources(cfg, results, testConsole(&buf))

	if _, err := os.Stat(converted); !os.IsNotExist(err) {
		t.Error("converted source was not deleted")
	}
	if _, err := os.Stat(failed); err != nil {
		t.Error("failed source was deleted")
	}
	if _, err := os.Stat(already); err != nil {
		t.Error("already-converted source was deleted")
	}

	// Leftovers equal the non-converted supported files.
	if out := buf.String(); !strings.Contains(out, "2 file(s) remain") {
		t.Errorf("missing leftover warning, got:\n%s", out)
	}
}

func TestCleanupSources_NoDelete(t *testing.T) {
	dir := t.TempDir()
	converted := touch(t, dir, "ok.png")

	results := []ConversionResult{
		{Task: ConversionTask{Source: converted}, Outcome: OutcomeConverted},
	}

	var buf bytes.Buffer
	cfg := &Config{InputPath: dir, DefaultMode: true, NoDelete: true}
	CleanupSources(cfg, results, testConsole(&buf))

	if _, err := os.Stat(converted); err != nil {
		t.Error("--no-delete removed a source file")
	}
	if buf.Len() != 0 {
		t.Errorf("--no-delete produced output: %s", buf.String())
	}
}

func TestCleanupSources_NoLeftoverWarningWhenClean(t *testing.T) {
	dir := t.TempDir()
	converted := touch(t, dir, "ok.png")

	results := []ConversionResult{
		{Task: ConversionTask{Source: converted}, Outcome: OutcomeConverted},
	}

	var buf bytes.Buffer
	CleanupSources(&Config{InputPath: dir, DefaultMode: true}, results, testConsole(&buf))

	if strings.Contains(buf.String(), "remain") {
		t.Errorf("unexpected leftover warning: %s", buf.String())
	}
}
