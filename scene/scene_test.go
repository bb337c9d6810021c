package scene

import (
	"testing"

	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/tmap"
)

func newOrthoScene() (*MapScene, *document.Document, *tmap.ObjectGroup) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	group := tmap.NewObjectGroup("objects")
	m.AddLayer(group)
	doc := document.New(m)
	return New(doc, render.NewRenderer(m)), doc, group
}

func TestSyncWithObjectTracksModel(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	r := render.NewRenderer(m)

	obj := tmap.NewMapObject("crate", tmap.Rectangle)
	obj.SetPosition(tmap.Pt(64, 32))
	obj.SetSize(tmap.SizeF{Width: 16, Height: 24})

	item := NewMapObjectItem(obj)
	item.SyncWithObject(r)
	if item.Pos() != tmap.Pt(64, 32) {
		t.Fatalf("item pos = %v, want (64,32)", item.Pos())
	}
	if got := item.Bounds(); got != (tmap.RectF{X: 64, Y: 32, Width: 16, Height: 24}) {
		t.Fatalf("item bounds = %v", got)
	}

	// Items never track the model on their own; they move only when resynced.
	obj.SetPosition(tmap.Pt(0, 0))
	if item.Pos() != tmap.Pt(64, 32) {
		t.Fatalf("item moved without an explicit sync")
	}
	item.SyncWithObject(r)
	if item.Pos() != tmap.Pt(0, 0) {
		t.Fatalf("item did not follow the object after sync")
	}
}

func TestSyncWithObjectIsometricBounds(t *testing.T) {
	m := tmap.NewMap(tmap.Isometric, 10, 10, 32, 16)
	r := render.NewRenderer(m)

	obj := tmap.NewMapObject("zone", tmap.Rectangle)
	obj.SetPosition(tmap.Pt(32, 32))
	obj.SetSize(tmap.SizeF{Width: 16, Height: 16})

	item := NewMapObjectItem(obj)
	item.SyncWithObject(r)

	// A pixel-space square projects to a diamond; the screen bounds wrap all
	// four projected corners.
	want := tmap.BoundsOf([]tmap.PointF{
		r.PixelToScreenCoords(tmap.Pt(32, 32)),
		r.PixelToScreenCoords(tmap.Pt(48, 32)),
		r.PixelToScreenCoords(tmap.Pt(32, 48)),
		r.PixelToScreenCoords(tmap.Pt(48, 48)),
	})
	if got := item.Bounds(); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestRefreshMirrorsObjectGroups(t *testing.T) {
	s, doc, group := newOrthoScene()
	if got := len(s.GroupItems()); got != 1 {
		t.Fatalf("scene has %d group items, want 1", got)
	}

	obj := tmap.NewMapObject("spawn", tmap.Point)
	doc.Push(document.NewAddObjectCommand(doc, group, obj))

	// The push notifies the scene, which rebuilds its items.
	items := s.GroupItems()[0].Items()
	if len(items) != 1 || items[0].Object() != obj {
		t.Fatalf("scene did not mirror the added object")
	}

	doc.Undo()
	if got := len(s.GroupItems()[0].Items()); got != 0 {
		t.Fatalf("scene still shows %d items after undo", got)
	}
}

func TestItemAtPrefersTopmost(t *testing.T) {
	s, doc, group := newOrthoScene()

	bottom := tmap.NewMapObject("bottom", tmap.Rectangle)
	bottom.SetPosition(tmap.Pt(0, 0))
	bottom.SetSize(tmap.SizeF{Width: 100, Height: 100})
	top := tmap.NewMapObject("top", tmap.Rectangle)
	top.SetPosition(tmap.Pt(40, 40))
	top.SetSize(tmap.SizeF{Width: 20, Height: 20})
	doc.Push(document.NewAddObjectCommand(doc, group, bottom))
	doc.Push(document.NewAddObjectCommand(doc, group, top))

	if item := s.ItemAt(tmap.Pt(50, 50)); item == nil || item.Object() != top {
		t.Fatalf("expected the later object to win the hit test")
	}
	if item := s.ItemAt(tmap.Pt(10, 10)); item == nil || item.Object() != bottom {
		t.Fatalf("expected the covering object outside the overlap")
	}
	if item := s.ItemAt(tmap.Pt(500, 500)); item != nil {
		t.Fatalf("hit test outside all bounds returned %q", item.Object().Name())
	}
}

func TestItemAtHonorsGroupOffset(t *testing.T) {
	s, doc, group := newOrthoScene()
	group.SetOffset(tmap.Pt(100, 0))

	obj := tmap.NewMapObject("shifted", tmap.Rectangle)
	obj.SetPosition(tmap.Pt(0, 0))
	obj.SetSize(tmap.SizeF{Width: 10, Height: 10})
	doc.Push(document.NewAddObjectCommand(doc, group, obj))

	if s.ItemAt(tmap.Pt(5, 5)) != nil {
		t.Fatalf("hit at the unshifted position should miss")
	}
	if item := s.ItemAt(tmap.Pt(105, 5)); item == nil || item.Object() != obj {
		t.Fatalf("hit at the shifted position should find the object")
	}
}
