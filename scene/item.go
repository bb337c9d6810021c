// Package scene holds the display-side proxies for the document's object
// layers and routes input events to the active tool. Items mirror model
// state and are resynchronized explicitly after every model mutation; they
// never observe the model on their own.
package scene

import (
	"mapsmith/render"
	"mapsmith/tmap"
)

// MapObjectItem is the visual proxy for a single map object.
type MapObjectItem struct {
	object *tmap.MapObject
	pos    tmap.PointF // screen coordinates
	bounds tmap.RectF  // screen-space bounding rect
}

func NewMapObjectItem(object *tmap.MapObject) *MapObjectItem {
	return &MapObjectItem{object: object}
}

func (i *MapObjectItem) Object() *tmap.MapObject { return i.object }
func (i *MapObjectItem) Pos() tmap.PointF        { return i.pos }
func (i *MapObjectItem) Bounds() tmap.RectF      { return i.bounds }

// SyncWithObject recomputes the item's screen position and bounds from the
// object's map-space state.
func (i *MapObjectItem) SyncWithObject(r render.MapRenderer) {
	i.pos = r.PixelToScreenCoords(i.object.Position())

	b := i.object.Bounds()
	corners := []tmap.PointF{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X, Y: b.Y + b.Height},
		{X: b.X + b.Width, Y: b.Y + b.Height},
	}
	for n, c := range corners {
		corners[n] = r.PixelToScreenCoords(c)
	}
	i.bounds = tmap.BoundsOf(corners)
}

// ObjectGroupItem is the visual proxy for one object group. The placement
// tool owns one of these for its staging group; the scene owns one per
// document group.
type ObjectGroupItem struct {
	group *tmap.ObjectGroup
	pos   tmap.PointF
	items []*MapObjectItem
}

func NewObjectGroupItem(group *tmap.ObjectGroup) *ObjectGroupItem {
	return &ObjectGroupItem{group: group}
}

func (g *ObjectGroupItem) Group() *tmap.ObjectGroup { return g.group }
func (g *ObjectGroupItem) Pos() tmap.PointF         { return g.pos }
func (g *ObjectGroupItem) SetPos(p tmap.PointF)     { g.pos = p }
func (g *ObjectGroupItem) Items() []*MapObjectItem  { return g.items }

// AddObjectItem creates and returns an item for obj.
func (g *ObjectGroupItem) AddObjectItem(obj *tmap.MapObject) *MapObjectItem {
	item := NewMapObjectItem(obj)
	g.items = append(g.items, item)
	return item
}

// RemoveObjectItem drops the item proxying obj, reporting whether one
// existed.
func (g *ObjectGroupItem) RemoveObjectItem(obj *tmap.MapObject) bool {
	for n, item := range g.items {
		if item.object == obj {
			g.items = append(g.items[:n], g.items[n+1:]...)
			return true
		}
	}
	return false
}

// SyncAll resynchronizes every child item.
func (g *ObjectGroupItem) SyncAll(r render.MapRenderer) {
	for _, item := range g.items {
		item.SyncWithObject(r)
	}
}
