package document

import (
	"testing"

	"mapsmith/tmap"
)

// probeCommand records the order its Do/Undo run in.
type probeCommand struct {
	name string
	log  *[]string
}

func (c *probeCommand) Do()          { *c.log = append(*c.log, "do:"+c.name) }
func (c *probeCommand) Undo()        { *c.log = append(*c.log, "undo:"+c.name) }
func (c *probeCommand) Text() string { return c.name }

func TestHistoryPushUndoRedo(t *testing.T) {
	var log []string
	h := NewHistory()

	h.Push(&probeCommand{name: "a", log: &log})
	h.Push(&probeCommand{name: "b", log: &log})

	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("CanUndo=%v CanRedo=%v after two pushes", h.CanUndo(), h.CanRedo())
	}
	if !h.Undo() {
		t.Fatalf("Undo failed with entries present")
	}
	if !h.CanRedo() {
		t.Fatalf("expected a redo entry after undo")
	}
	if !h.Redo() {
		t.Fatalf("Redo failed with an entry present")
	}

	want := []string{"do:a", "do:b", "undo:b", "do:b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestHistoryPushDropsRedo(t *testing.T) {
	var log []string
	h := NewHistory()

	h.Push(&probeCommand{name: "a", log: &log})
	h.Undo()
	h.Push(&probeCommand{name: "b", log: &log})

	if h.CanRedo() {
		t.Fatalf("redo stack must be dropped by a new push")
	}
	if h.Redo() {
		t.Fatalf("Redo should report false with nothing to redo")
	}
}

func TestHistoryCapsEntries(t *testing.T) {
	var log []string
	h := NewHistory()

	for i := 0; i < maxHistory+10; i++ {
		h.Push(&probeCommand{name: "x", log: &log})
	}
	if got := h.Len(); got != maxHistory {
		t.Fatalf("history holds %d entries, want cap %d", got, maxHistory)
	}
}

func TestHistoryEmptyOps(t *testing.T) {
	h := NewHistory()
	if h.Undo() {
		t.Fatalf("Undo on empty history should report false")
	}
	if h.Redo() {
		t.Fatalf("Redo on empty history should report false")
	}
}

func TestCompositeOrdering(t *testing.T) {
	var log []string
	c := NewComposite("both",
		&probeCommand{name: "tileset", log: &log},
		&probeCommand{name: "object", log: &log},
	)

	c.Do()
	c.Undo()

	// Undo runs in reverse order.
	want := []string{"do:tileset", "do:object", "undo:object", "undo:tileset"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestAddObjectCommandRestoresIndex(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	group := tmap.NewObjectGroup("objects")
	m.AddLayer(group)
	doc := New(m)

	first := tmap.NewMapObject("first", tmap.Point)
	second := tmap.NewMapObject("second", tmap.Point)
	group.AddObject(first)

	doc.Push(NewAddObjectCommand(doc, group, second))
	if got := group.ObjectCount(); got != 2 {
		t.Fatalf("group has %d objects, want 2", got)
	}

	// Add a later object directly, then undo/redo the command; the command's
	// object must return to its recorded index.
	group.AddObject(tmap.NewMapObject("third", tmap.Point))
	doc.Undo()
	if got := group.ObjectCount(); got != 2 {
		t.Fatalf("after undo group has %d objects, want 2", got)
	}
	doc.Redo()
	if group.Objects()[1] != second {
		t.Fatalf("redo inserted %q at index 1, want %q", group.Objects()[1].Name(), second.Name())
	}
}

func TestUndoClearsSelectionOfRemovedObject(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	group := tmap.NewObjectGroup("objects")
	m.AddLayer(group)
	doc := New(m)

	obj := tmap.NewMapObject("picked", tmap.Point)
	doc.Push(NewAddObjectCommand(doc, group, obj))
	doc.SetSelectedObjects([]*tmap.MapObject{obj})

	doc.Undo()
	if len(doc.SelectedObjects()) != 0 {
		t.Fatalf("selection still references an object no longer in the map")
	}
}

func TestAddTilesetCommand(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	doc := New(m)
	ts := tmap.NewTileset("terrain", 16, 16)

	notified := 0
	doc.OnTilesetsChanged(func() { notified++ })

	doc.Push(NewAddTilesetCommand(doc, ts))
	if !m.HasTileset(ts) {
		t.Fatalf("tileset not added to the map")
	}
	doc.Undo()
	if m.HasTileset(ts) {
		t.Fatalf("tileset still in the map after undo")
	}
	if notified != 2 {
		t.Fatalf("tilesetsChanged fired %d times, want 2", notified)
	}
}
