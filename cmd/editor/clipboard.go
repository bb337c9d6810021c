package main

import (
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"mapsmith/tmap"
)

// clipboardObject is the YAML form of a copied object.
type clipboardObject struct {
	Name       string            `yaml:"name,omitempty"`
	Kind       string            `yaml:"kind,omitempty"`
	Shape      string            `yaml:"shape"`
	X          float64           `yaml:"x"`
	Y          float64           `yaml:"y"`
	Width      float64           `yaml:"width,omitempty"`
	Height     float64           `yaml:"height,omitempty"`
	Rotation   float64           `yaml:"rotation,omitempty"`
	Tileset    string            `yaml:"tileset,omitempty"`
	TileID     int               `yaml:"tile_id,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// copySelection puts the selected objects on the system clipboard as YAML.
func (a *App) copySelection() {
	if !a.clipboardOK {
		return
	}
	selected := a.doc.SelectedObjects()
	if len(selected) == 0 {
		return
	}

	out := make([]clipboardObject, 0, len(selected))
	for _, obj := range selected {
		co := clipboardObject{
			Name:     obj.Name(),
			Kind:     obj.Kind(),
			Shape:    shapeName(obj.Shape()),
			X:        obj.Position().X,
			Y:        obj.Position().Y,
			Width:    obj.Size().Width,
			Height:   obj.Size().Height,
			Rotation: obj.Rotation(),
		}
		if props := obj.Properties(); len(props) > 0 {
			co.Properties = props
		}
		if cell := obj.Cell(); !cell.IsEmpty() {
			co.Tileset = cell.Tileset().Name()
			co.TileID = cell.Tile.ID()
		}
		out = append(out, co)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		log.Error().Err(err).Msg("marshal selection")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Debug().Int("objects", len(out)).Msg("selection copied")
}

func shapeName(s tmap.Shape) string {
	switch s {
	case tmap.Point:
		return "point"
	case tmap.Ellipse:
		return "ellipse"
	case tmap.Polygon:
		return "polygon"
	case tmap.Polyline:
		return "polyline"
	default:
		return "rectangle"
	}
}
