// Package document wraps a map with the editing state the tools operate on:
// the undo history, the current layer and the selection. All mutation of the
// persistent map flows through pushed commands.
package document

import "mapsmith/tmap"

type Document struct {
	m            *tmap.Map
	history      *History
	currentLayer int
	selection    []*tmap.MapObject

	objectsChanged   []func()
	tilesetsChanged  []func()
	selectionChanged []func()
}

func New(m *tmap.Map) *Document {
	return &Document{m: m, history: NewHistory()}
}

func (d *Document) Map() *tmap.Map      { return d.m }
func (d *Document) History() *History   { return d.history }

// Push executes cmd and records it in the undo history. This is the sole
// entry point for persistent mutation.
func (d *Document) Push(cmd Command) { d.history.Push(cmd) }

func (d *Document) Undo() bool { return d.history.Undo() }
func (d *Document) Redo() bool { return d.history.Redo() }

func (d *Document) CurrentLayerIndex() int { return d.currentLayer }

func (d *Document) SetCurrentLayer(index int) {
	if index >= 0 && index < d.m.LayerCount() {
		d.currentLayer = index
	}
}

// CurrentObjectGroup returns the active layer if it is an object group.
// Callers look this up fresh on every interaction; the active layer may
// change between events.
func (d *Document) CurrentObjectGroup() *tmap.ObjectGroup {
	layer := d.m.LayerAt(d.currentLayer)
	if group, ok := layer.(*tmap.ObjectGroup); ok {
		return group
	}
	return nil
}

func (d *Document) SelectedObjects() []*tmap.MapObject { return d.selection }

func (d *Document) SetSelectedObjects(objs []*tmap.MapObject) {
	d.selection = objs
	for _, fn := range d.selectionChanged {
		fn()
	}
}

func (d *Document) OnObjectsChanged(fn func())   { d.objectsChanged = append(d.objectsChanged, fn) }
func (d *Document) OnTilesetsChanged(fn func())  { d.tilesetsChanged = append(d.tilesetsChanged, fn) }
func (d *Document) OnSelectionChanged(fn func()) { d.selectionChanged = append(d.selectionChanged, fn) }

func (d *Document) notifyObjectsChanged() {
	for _, fn := range d.objectsChanged {
		fn()
	}
}

func (d *Document) notifyTilesetsChanged() {
	for _, fn := range d.tilesetsChanged {
		fn()
	}
}
