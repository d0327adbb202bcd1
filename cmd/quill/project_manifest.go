package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Check   checkConfig   `toml:"check"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type checkConfig struct {
	// Paths lists the files or directories checked when none are given on
	// the command line, relative to the manifest root.
	Paths          []string `toml:"paths"`
	Jobs           int      `toml:"jobs"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Cache          *bool    `toml:"cache"`
}

func findQuillToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "quill.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findQuillToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// resolveCheckTargets expands the manifest's [check].paths into concrete
// list files, walking directories for *.lit entries.
func resolveCheckTargets(manifest *projectManifest, list func(string) ([]string, error)) ([]string, error) {
	if manifest == nil {
		return nil, fmt.Errorf("missing project manifest")
	}
	var files []string
	for _, rel := range manifest.Config.Check.Paths {
		target := filepath.Join(manifest.Root, filepath.FromSlash(strings.TrimSpace(rel)))
		info, err := os.Stat(target)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%s: [check].paths entry does not exist: %s", manifest.Path, target)
			}
			return nil, fmt.Errorf("%s: failed to stat [check].paths entry: %w", manifest.Path, err)
		}
		if info.IsDir() {
			found, err := list(target)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", manifest.Path, err)
			}
			files = append(files, found...)
			continue
		}
		files = append(files, target)
	}
	return files, nil
}
