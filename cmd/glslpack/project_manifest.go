package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectManifest is the optional glslpack.toml found by walking up from
// the working directory. Every section is optional; flags override it.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Pack  packSection  `toml:"pack"`
	Cache cacheSection `toml:"cache"`
}

type packSection struct {
	// Version is the shader language version to lower as when a dump
	// does not carry one and no flag overrides it.
	Version int `toml:"version"`
	// Out is the output directory for lowered packs.
	Out string `toml:"out"`
}

type cacheSection struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

func findGlslpackToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "glslpack.toml")
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
	manifestPath, ok, err := findGlslpackToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if meta.IsDefined("pack", "version") && cfg.Pack.Version <= 0 {
		return nil, true, fmt.Errorf("%s: [pack].version must be positive", manifestPath)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
