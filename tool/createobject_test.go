package tool

import (
	"testing"

	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/tmap"
)

type testEnv struct {
	m       *tmap.Map
	group   *tmap.ObjectGroup
	doc     *document.Document
	r       render.MapRenderer
	scene   *scene.MapScene
	manager *Manager
}

func newTestEnv() *testEnv {
	m := tmap.NewMap(tmap.Orthogonal, 40, 23, 32, 32)
	group := tmap.NewObjectGroup("objects")
	m.AddLayer(group)

	doc := document.New(m)
	doc.SetCurrentLayer(0)
	r := render.NewRenderer(m)
	s := scene.New(doc, r)
	mgr := NewManager(s)

	return &testEnv{m: m, group: group, doc: doc, r: r, scene: s, manager: mgr}
}

func (e *testEnv) pointTool() *CreateObjectTool {
	t := NewCreatePointTool(e.doc, e.r)
	e.manager.Register(t)
	return t
}

func press(pos tmap.PointF) scene.MouseEvent {
	return scene.MouseEvent{Pos: pos, Button: scene.LeftButton}
}

func release(pos tmap.PointF) scene.MouseEvent {
	return scene.MouseEvent{Pos: pos, Button: scene.LeftButton}
}

func TestPlacementScenarios(t *testing.T) {
	cases := []struct {
		name        string
		finishWith  scene.Key // KeyEnter or KeyEscape
		wantObjects int
		wantHistory int
	}{
		{"escape_discards", scene.KeyEscape, 0, 0},
		{"enter_commits", scene.KeyEnter, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv()
			ct := env.pointTool()
			env.manager.SelectTool(ct)

			env.scene.MousePressed(press(tmap.Pt(100, 64)))
			if !ct.IsPlacing() {
				t.Fatalf("expected placement to start")
			}
			// 100 snaps to the nearest tile corner at 96.
			if got := ct.PendingObject().Position(); got != tmap.Pt(96, 64) {
				t.Fatalf("pending position = %v, want (96,64)", got)
			}

			env.scene.MouseMoved(tmap.Pt(140, 64), 0)
			if got := ct.PendingObject().Position(); got != tmap.Pt(128, 64) {
				t.Fatalf("pending position after move = %v, want (128,64)", got)
			}

			env.scene.KeyPressed(c.finishWith)
			if ct.IsPlacing() {
				t.Fatalf("expected placement to end")
			}
			if got := env.group.ObjectCount(); got != c.wantObjects {
				t.Fatalf("group has %d objects, want %d", got, c.wantObjects)
			}
			if got := env.doc.History().Len(); got != c.wantHistory {
				t.Fatalf("history has %d entries, want %d", got, c.wantHistory)
			}
			if c.wantObjects == 1 {
				sel := env.doc.SelectedObjects()
				if len(sel) != 1 || sel[0] != env.group.Objects()[0] {
					t.Fatalf("expected the committed object to be selected")
				}
				if got := sel[0].Position(); got != tmap.Pt(128, 64) {
					t.Fatalf("committed position = %v, want (128,64)", got)
				}
			}
		})
	}
}

func TestStartRefusals(t *testing.T) {
	cases := []struct {
		name  string
		setup func(env *testEnv) Tool
	}{
		{
			"locked_layer",
			func(env *testEnv) Tool {
				env.group.SetLocked(true)
				return env.pointTool()
			},
		},
		{
			"invisible_layer",
			func(env *testEnv) Tool {
				env.group.SetVisible(false)
				return env.pointTool()
			},
		},
		{
			"no_object_group",
			func(env *testEnv) Tool {
				env.m.AddLayer(tmap.NewTileLayer("tiles", 40, 23))
				env.doc.SetCurrentLayer(1)
				return env.pointTool()
			},
		},
		{
			"builder_declines",
			func(env *testEnv) Tool {
				// Tile tool without a selected tile refuses creation.
				ct := NewCreateTileTool(env.doc, env.r, func() *tmap.Tile { return nil })
				env.manager.Register(ct)
				return ct
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv()
			ct := c.setup(env)
			env.manager.SelectTool(ct)

			env.scene.MousePressed(press(tmap.Pt(64, 64)))

			if creator, ok := ct.(*CreateObjectTool); ok && creator.IsPlacing() {
				t.Fatalf("expected no placement to start")
			}
			if got := env.group.ObjectCount(); got != 0 {
				t.Fatalf("group has %d objects, want 0", got)
			}
			if env.doc.History().CanUndo() {
				t.Fatalf("history should be empty")
			}
		})
	}
}

func TestAtMostOnePendingObject(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	env.manager.SelectTool(ct)

	env.scene.MousePressed(press(tmap.Pt(64, 64)))
	if !ct.IsPlacing() {
		t.Fatalf("expected placement to start")
	}
	first := ct.PendingObject()

	// A second start while placing must fail without side effects.
	if ct.startNewObject(tmap.Pt(0, 0), env.group) {
		t.Fatalf("second start should fail while placing")
	}
	if ct.PendingObject() != first {
		t.Fatalf("pending object changed by refused start")
	}
}

func TestCancelLeavesDocumentUntouched(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	env.manager.SelectTool(ct)

	existing := tmap.NewMapObject("keep", tmap.Point)
	env.group.AddObject(existing)
	tilesetsBefore := len(env.m.Tilesets())

	env.scene.MousePressed(press(tmap.Pt(100, 100)))
	env.scene.MouseMoved(tmap.Pt(300, 300), 0)
	env.scene.MousePressed(scene.MouseEvent{Pos: tmap.Pt(300, 300), Button: scene.RightButton})

	if ct.IsPlacing() {
		t.Fatalf("right press should cancel the placement")
	}
	if got := env.group.ObjectCount(); got != 1 {
		t.Fatalf("group has %d objects, want the 1 pre-existing", got)
	}
	if len(env.m.Tilesets()) != tilesetsBefore {
		t.Fatalf("tilesets changed by a cancelled placement")
	}
	if env.doc.History().CanUndo() {
		t.Fatalf("cancel must not create an undo entry")
	}
}

func TestCommitIsAtomicAndReversible(t *testing.T) {
	ts := tmap.NewTileset("props", 16, 16)
	ts.AddTiles(4)

	cases := []struct {
		name           string
		tilesetPresent bool
		wantTilesets   int
	}{
		{"new_tileset_added_with_object", false, 1},
		{"existing_tileset_not_duplicated", true, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv()
			if c.tilesetPresent {
				env.m.AddTileset(ts)
			}
			ct := NewCreateTileTool(env.doc, env.r, func() *tmap.Tile { return ts.TileAt(0) })
			env.manager.Register(ct)
			env.manager.SelectTool(ct)

			env.scene.MousePressed(press(tmap.Pt(64, 64)))
			env.scene.MouseReleased(release(tmap.Pt(64, 64)))

			if got := env.group.ObjectCount(); got != 1 {
				t.Fatalf("group has %d objects, want 1", got)
			}
			if got := len(env.m.Tilesets()); got != c.wantTilesets {
				t.Fatalf("map has %d tilesets, want %d", got, c.wantTilesets)
			}
			if got := env.doc.History().Len(); got != 1 {
				t.Fatalf("history has %d entries, want exactly 1", got)
			}

			// One undo reverts the object and, if it was added here, the
			// tileset too.
			env.doc.Undo()
			if got := env.group.ObjectCount(); got != 0 {
				t.Fatalf("after undo group has %d objects, want 0", got)
			}
			wantAfterUndo := 0
			if c.tilesetPresent {
				wantAfterUndo = 1
			}
			if got := len(env.m.Tilesets()); got != wantAfterUndo {
				t.Fatalf("after undo map has %d tilesets, want %d", got, wantAfterUndo)
			}

			env.doc.Redo()
			if got := env.group.ObjectCount(); got != 1 {
				t.Fatalf("after redo group has %d objects, want 1", got)
			}
			if got := len(env.m.Tilesets()); got != c.wantTilesets {
				t.Fatalf("after redo map has %d tilesets, want %d", got, c.wantTilesets)
			}
		})
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	env.manager.SelectTool(ct)

	env.scene.MousePressed(press(tmap.Pt(50, 50)))
	env.scene.MouseMoved(tmap.Pt(77, 41), scene.ModControl)
	first := ct.PendingObject().Position()
	for i := 0; i < 5; i++ {
		env.scene.MouseMoved(tmap.Pt(77, 41), scene.ModControl)
	}
	if got := ct.PendingObject().Position(); got != first {
		t.Fatalf("position drifted from %v to %v on repeated updates", first, got)
	}
}

func TestTargetLayerLostBeforeFinish(t *testing.T) {
	cases := []struct {
		name string
		lose func(env *testEnv)
	}{
		{"layer_switched_to_tile_layer", func(env *testEnv) {
			env.m.AddLayer(tmap.NewTileLayer("tiles", 40, 23))
			env.doc.SetCurrentLayer(1)
		}},
		{"layer_locked_mid_placement", func(env *testEnv) {
			env.group.SetLocked(true)
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv()
			ct := env.pointTool()
			env.manager.SelectTool(ct)

			env.scene.MousePressed(press(tmap.Pt(64, 64)))
			if !ct.IsPlacing() {
				t.Fatalf("expected placement to start")
			}

			c.lose(env)
			env.scene.MouseReleased(release(tmap.Pt(64, 64)))

			if ct.IsPlacing() {
				t.Fatalf("placement should have ended")
			}
			if got := env.group.ObjectCount(); got != 0 {
				t.Fatalf("group has %d objects, want 0 after degraded finish", got)
			}
			if env.doc.History().CanUndo() {
				t.Fatalf("degraded finish must not create an undo entry")
			}
		})
	}
}

func TestDeactivateCancelsPlacement(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	sel := NewObjectSelectionTool(env.doc)
	env.manager.Register(sel)
	env.manager.SelectTool(ct)

	env.scene.MousePressed(press(tmap.Pt(64, 64)))
	if !ct.IsPlacing() {
		t.Fatalf("expected placement to start")
	}

	env.manager.SelectTool(sel)
	if ct.IsPlacing() {
		t.Fatalf("tool switch should cancel the placement")
	}
	if env.doc.History().CanUndo() {
		t.Fatalf("tool switch must not create an undo entry")
	}
	if got := len(env.scene.ToolItems()); got != 0 {
		t.Fatalf("staging item still attached after deactivate")
	}
}

func TestEscapeWhileIdleSelectsSelectionTool(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	sel := NewObjectSelectionTool(env.doc)
	env.manager.Register(sel)
	env.manager.SelectTool(ct)

	env.scene.KeyPressed(scene.KeyEscape)

	if env.manager.ActiveTool() != Tool(sel) {
		t.Fatalf("expected the selection tool to become active")
	}
}

func TestMoveWhileIdleDoesNotStart(t *testing.T) {
	env := newTestEnv()
	ct := env.pointTool()
	env.manager.SelectTool(ct)

	env.scene.MouseMoved(tmap.Pt(64, 64), 0)
	env.scene.MouseReleased(release(tmap.Pt(64, 64)))

	if ct.IsPlacing() {
		t.Fatalf("move or release alone must not start a placement")
	}
	if got := env.group.ObjectCount(); got != 0 {
		t.Fatalf("group has %d objects, want 0", got)
	}
}

func TestRectangleToolDragsSize(t *testing.T) {
	env := newTestEnv()
	ct := NewCreateRectangleTool(env.doc, env.r)
	env.manager.Register(ct)
	env.manager.SelectTool(ct)

	env.scene.MousePressed(press(tmap.Pt(32, 32)))
	env.scene.MouseMoved(tmap.Pt(96, 64), 0)

	obj := ct.PendingObject()
	if obj.Position() != tmap.Pt(32, 32) {
		t.Fatalf("origin moved to %v while dragging", obj.Position())
	}
	if got := obj.Size(); got != (tmap.SizeF{Width: 64, Height: 32}) {
		t.Fatalf("size = %v, want 64x32", got)
	}

	env.scene.MouseReleased(release(tmap.Pt(96, 64)))
	if got := env.group.ObjectCount(); got != 1 {
		t.Fatalf("group has %d objects, want 1", got)
	}
}

func TestStagingGroupMirrorsTargetLayer(t *testing.T) {
	env := newTestEnv()
	env.group.SetOffset(tmap.Pt(10, 20))
	ct := env.pointTool()
	env.manager.SelectTool(ct)

	env.scene.MousePressed(press(tmap.Pt(100, 100)))
	if !ct.IsPlacing() {
		t.Fatalf("expected placement to start")
	}
	if got := ct.stagingGroup.Color(); got != env.group.Color() {
		t.Fatalf("staging color = %v, want target layer's %v", got, env.group.Color())
	}
	if got := ct.stagingGroup.Offset(); got != tmap.Pt(10, 20) {
		t.Fatalf("staging offset = %v, want (10,20)", got)
	}
	// The staging group never joins the map's layer list.
	for _, layer := range env.m.Layers() {
		if layer == tmap.Layer(ct.stagingGroup) {
			t.Fatalf("staging group leaked into the document's layers")
		}
	}
}
