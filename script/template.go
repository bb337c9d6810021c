// Package script loads object templates from tengo scripts. A template
// script declares what the scripted placement tool creates: either a single
// exported `object` map or discrete `name`/`kind`/`shape`/`width`/`height`
// globals, plus an optional `properties` map.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"mapsmith/tmap"
)

// Template describes an object the scripted tool can stamp out repeatedly.
type Template struct {
	Name       string
	Kind       string
	Shape      tmap.Shape
	Size       tmap.SizeF
	Properties map[string]string
}

// Build produces a fresh object from the template. Each call returns a new
// instance; templates are never placed directly.
func (t *Template) Build() *tmap.MapObject {
	obj := tmap.NewMapObject(t.Name, t.Shape)
	obj.SetKind(t.Kind)
	obj.SetSize(t.Size)
	for k, v := range t.Properties {
		obj.SetProperty(k, v)
	}
	return obj
}

// LoadTemplate runs a template script and extracts the declared object.
func LoadTemplate(src []byte) (*Template, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("script: run template: %w", err)
	}

	raw, err := extractObjectRaw(compiled)
	if err != nil {
		return nil, err
	}
	return decodeTemplate(raw)
}

// LoadTemplateFile reads and runs a template script from disk.
func LoadTemplateFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	tmpl, err := LoadTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return tmpl, nil
}

// LoadDir loads every .tengo template in dir, sorted by file name.
func LoadDir(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("script: read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".tengo" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	templates := make([]*Template, 0, len(paths))
	for _, p := range paths {
		tmpl, err := LoadTemplateFile(p)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

func extractObjectRaw(compiled *tengo.Compiled) (map[string]any, error) {
	if compiled == nil {
		return nil, fmt.Errorf("script: template compile returned nil program")
	}

	if obj := compiled.Get("object"); obj != nil && !obj.IsUndefined() {
		m, ok := toStringAnyMap(obj.Value())
		if !ok {
			return nil, fmt.Errorf("script: global 'object' must be a map")
		}
		return m, nil
	}

	raw := make(map[string]any)
	for _, key := range []string{"name", "kind", "shape", "width", "height", "properties"} {
		if v := compiled.Get(key); v != nil && !v.IsUndefined() {
			raw[key] = v.Value()
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("script: template declares no object")
	}
	return raw, nil
}

func decodeTemplate(raw map[string]any) (*Template, error) {
	tmpl := &Template{Shape: tmap.Rectangle}

	if v, ok := raw["name"]; ok {
		tmpl.Name, _ = v.(string)
	}
	if v, ok := raw["kind"]; ok {
		tmpl.Kind, _ = v.(string)
	}
	if v, ok := raw["shape"]; ok {
		name, _ := v.(string)
		shape, err := parseShape(name)
		if err != nil {
			return nil, err
		}
		tmpl.Shape = shape
	}
	if v, ok := raw["width"]; ok {
		tmpl.Size.Width = toFloat(v)
	}
	if v, ok := raw["height"]; ok {
		tmpl.Size.Height = toFloat(v)
	}
	if v, ok := raw["properties"]; ok {
		m, ok := toStringAnyMap(v)
		if !ok {
			return nil, fmt.Errorf("script: 'properties' must be a map")
		}
		tmpl.Properties = make(map[string]string, len(m))
		for k, pv := range m {
			tmpl.Properties[k] = fmt.Sprint(pv)
		}
	}
	return tmpl, nil
}

func parseShape(name string) (tmap.Shape, error) {
	switch name {
	case "rectangle", "":
		return tmap.Rectangle, nil
	case "point":
		return tmap.Point, nil
	case "ellipse":
		return tmap.Ellipse, nil
	case "polygon":
		return tmap.Polygon, nil
	case "polyline":
		return tmap.Polyline, nil
	}
	return 0, fmt.Errorf("script: unknown shape %q", name)
}

func toStringAnyMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
