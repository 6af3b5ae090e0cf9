package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConversionTask is one unit of work: where to read, where to write, and
// which adapter decodes the source. Built by ResolveTasks, consumed once
// by the Engine.
type ConversionTask struct {
	Source string
	Dest   string
	Kind   Kind
}

// ResolveTasks turns the configured input path into an ordered task list.
// A single unsupported file is returned in skipped rather than as an error;
// unsupported entries inside a directory are dropped silently.
//
// In default mode a missing input directory is not an error: the run simply
// finds zero files.
func ResolveTasks(cfg *Config) (tasks []ConversionTask, skipped []string, err error) {
	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		if cfg.DefaultMode {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("input path does not exist: %s", cfg.InputPath)
	}

	if !info.IsDir() {
		if Classify(cfg.InputPath) == KindUnsupported {
			return nil, []string{cfg.InputPath}, nil
		}
		base := filepath.Dir(cfg.InputPath)
		return []ConversionTask{taskFor(cfg, cfg.InputPath, base)}, nil, nil
	}

	sources, err := collectSources(cfg.InputPath, cfg.Recursive)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", cfg.InputPath, err)
	}

	for _, src := range sources {
		tasks = append(tasks, taskFor(cfg, src, cfg.InputPath))
	}
	return tasks, nil, nil
}

// collectSources lists supported files under dir, sorted lexicographically
// for deterministic processing order. Subdirectories are only entered when
// recursive is set.
func collectSources(dir string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if Classify(path) != KindUnsupported {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if Classify(entry.Name()) != KindUnsupported {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// taskFor builds the task for one source file. The destination keeps the
// source stem with a .webp extension; without an output directory it sits
// next to the source. --keep-structure only takes effect together with
// --recursive, otherwise the output stays flat.
func taskFor(cfg *Config, source, baseDir string) ConversionTask {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	name := stem + ".webp"

	dest := filepath.Join(filepath.Dir(source), name)
	if cfg.OutputDir != "" {
		dest = filepath.Join(cfg.OutputDir, name)
		if cfg.KeepStructure && cfg.Recursive {
			if rel, err := filepath.Rel(baseDir, filepath.Dir(source)); err == nil && rel != "." {
				dest = filepath.Join(cfg.OutputDir, rel, name)
			}
		}
	}

	return ConversionTask{
		Source: source,
		Dest:   dest,
		Kind:   Classify(source),
	}
}
