// Package tilesets loads tileset definitions from YAML files and keeps them
// fresh while the editor runs.
package tilesets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"mapsmith/tmap"
)

// Spec is the on-disk form of a tileset definition.
type Spec struct {
	Name       string `yaml:"name"`
	Image      string `yaml:"image"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
	Columns    int    `yaml:"columns"`
	TileCount  int    `yaml:"tile_count"`
}

func (s *Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("tilesets: spec has no name")
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return fmt.Errorf("tilesets: %s: tile size must be positive", s.Name)
	}
	if s.TileCount <= 0 {
		return fmt.Errorf("tilesets: %s: tile_count must be positive", s.Name)
	}
	return nil
}

// LoadSpec reads one tileset definition.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilesets: load %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tilesets: unmarshal %s: %w", path, err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Build converts a spec into a tileset the document model can reference.
func Build(spec *Spec) *tmap.Tileset {
	ts := tmap.NewTileset(spec.Name, spec.TileWidth, spec.TileHeight)
	ts.SetImage(spec.Image)
	ts.SetColumns(spec.Columns)
	ts.AddTiles(spec.TileCount)
	return ts
}

// LoadDir loads every .yaml/.yml tileset definition in dir, sorted by file
// name.
func LoadDir(dir string) ([]*tmap.Tileset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tilesets: read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	sets := make([]*tmap.Tileset, 0, len(paths))
	for _, p := range paths {
		spec, err := LoadSpec(p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, Build(spec))
	}
	return sets, nil
}
