package tool

import (
	"math"

	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/script"
	"mapsmith/tmap"
)

// Names of the built-in tools, used for registry lookups and hotkeys.
const (
	SelectionToolName = "select-objects"
	PointToolName     = "insert-point"
	RectangleToolName = "insert-rectangle"
	EllipseToolName   = "insert-ellipse"
	TileToolName      = "insert-tile"
	TemplateToolName  = "insert-template"
)

// NewCreatePointTool places point objects.
func NewCreatePointTool(doc *document.Document, r render.MapRenderer) *CreateObjectTool {
	return NewCreateObjectTool(PointToolName, doc, r, func() *tmap.MapObject {
		return tmap.NewMapObject("", tmap.Point)
	})
}

// NewCreateRectangleTool places rectangle objects sized by dragging from the
// press position.
func NewCreateRectangleTool(doc *document.Document, r render.MapRenderer) *CreateObjectTool {
	t := NewCreateObjectTool(RectangleToolName, doc, r, func() *tmap.MapObject {
		return tmap.NewMapObject("", tmap.Rectangle)
	})
	t.SetObjectUpdater(resizeFromOrigin)
	return t
}

// NewCreateEllipseTool places ellipse objects sized by dragging.
func NewCreateEllipseTool(doc *document.Document, r render.MapRenderer) *CreateObjectTool {
	t := NewCreateObjectTool(EllipseToolName, doc, r, func() *tmap.MapObject {
		return tmap.NewMapObject("", tmap.Ellipse)
	})
	t.SetObjectUpdater(resizeFromOrigin)
	return t
}

// resizeFromOrigin grows the object between its press position and the
// pointer instead of moving it.
func resizeFromOrigin(obj *tmap.MapObject, pixelPos tmap.PointF, _ scene.Modifiers) {
	origin := obj.Position()
	obj.SetSize(tmap.SizeF{
		Width:  math.Max(0, pixelPos.X-origin.X),
		Height: math.Max(0, pixelPos.Y-origin.Y),
	})
}

// NewCreateTileTool places tile objects. The tile provider returns the
// currently selected tile; creation is refused while none is selected.
func NewCreateTileTool(doc *document.Document, r render.MapRenderer, selectedTile func() *tmap.Tile) *CreateObjectTool {
	return NewCreateObjectTool(TileToolName, doc, r, func() *tmap.MapObject {
		tile := selectedTile()
		if tile == nil {
			return nil
		}
		obj := tmap.NewMapObject("", tmap.Rectangle)
		obj.SetCell(tmap.Cell{Tile: tile})
		ts := tile.Tileset()
		obj.SetSize(tmap.SizeF{
			Width:  float64(ts.TileWidth()),
			Height: float64(ts.TileHeight()),
		})
		return obj
	})
}

// NewCreateTemplateTool places objects built from a script template.
// Creation is refused while no template is loaded.
func NewCreateTemplateTool(doc *document.Document, r render.MapRenderer, template func() *script.Template) *CreateObjectTool {
	return NewCreateObjectTool(TemplateToolName, doc, r, func() *tmap.MapObject {
		tmpl := template()
		if tmpl == nil {
			return nil
		}
		return tmpl.Build()
	})
}
