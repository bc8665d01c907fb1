// Package project locates and loads walter.yml, the RedditLang project
// manifest. A project is any directory containing a walter.yml; lookups walk
// upward from the starting directory so commands work from anywhere inside
// the project tree.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ManifestName = "walter.yml"

// ErrNotFound is returned when no walter.yml exists in the starting
// directory or any of its ancestors.
var ErrNotFound = errors.New("no " + ManifestName + " found")

// Config holds the fields of walter.yml.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// Project pairs a loaded manifest with the directory it was found in.
type Project struct {
	Config Config
	Root   string
}

// Find walks from dir toward the filesystem root looking for a walter.yml
// and loads the first one it encounters.
func Find(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		manifest := filepath.Join(abs, ManifestName)
		if _, err := os.Stat(manifest); err == nil {
			return Load(manifest)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, ErrNotFound
		}
		abs = parent
	}
}

// Load reads and decodes a manifest file directly.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("%s: missing required field 'name'", path)
	}

	return &Project{
		Config: cfg,
		Root:   filepath.Dir(path),
	}, nil
}

// MainFile returns the path of the project's entry source file.
func (p *Project) MainFile() string {
	return filepath.Join(p.Root, "src", "main.rl")
}

// Scaffold creates a new project directory with a manifest and an entry
// source file. It refuses to overwrite an existing manifest.
func Scaffold(dir, name string) (*Project, error) {
	manifest := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifest); err == nil {
		return nil, fmt.Errorf("%s already exists", manifest)
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return nil, err
	}

	cfg := Config{Name: name, Version: "0.1.0"}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(manifest, data, 0o644); err != nil {
		return nil, err
	}

	main := filepath.Join(dir, "src", "main.rl")
	src := "call coitusinterruptus(\"Hello, world!\",)\n"
	if err := os.WriteFile(main, []byte(src), 0o644); err != nil {
		return nil, err
	}

	return &Project{Config: cfg, Root: dir}, nil
}
