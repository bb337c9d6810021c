package scene

import (
	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/tmap"
)

// MapScene mirrors the document's object groups as items and forwards input
// events to its handler. Tools attach their own items while active.
type MapScene struct {
	doc      *document.Document
	renderer render.MapRenderer

	groupItems []*ObjectGroupItem // one per document object group
	toolItems  []*ObjectGroupItem // attached by the active tool
	handler    EventHandler
}

func New(doc *document.Document, renderer render.MapRenderer) *MapScene {
	s := &MapScene{doc: doc, renderer: renderer}
	s.Refresh()
	doc.OnObjectsChanged(s.Refresh)
	return s
}

func (s *MapScene) Document() *document.Document  { return s.doc }
func (s *MapScene) Renderer() render.MapRenderer  { return s.renderer }

func (s *MapScene) SetEventHandler(h EventHandler) { s.handler = h }

// Refresh rebuilds the document-side items from the current layer list.
func (s *MapScene) Refresh() {
	s.groupItems = s.groupItems[:0]
	for _, layer := range s.doc.Map().Layers() {
		group, ok := layer.(*tmap.ObjectGroup)
		if !ok {
			continue
		}
		gi := NewObjectGroupItem(group)
		// Layer offsets apply in screen space.
		gi.SetPos(group.TotalOffset())
		for _, obj := range group.Objects() {
			gi.AddObjectItem(obj).SyncWithObject(s.renderer)
		}
		s.groupItems = append(s.groupItems, gi)
	}
}

// GroupItems are the items mirroring the document's object groups.
func (s *MapScene) GroupItems() []*ObjectGroupItem { return s.groupItems }

// ToolItems are the items attached by the active tool, drawn above the
// document's.
func (s *MapScene) ToolItems() []*ObjectGroupItem { return s.toolItems }

// AddItem attaches a tool-owned group item.
func (s *MapScene) AddItem(item *ObjectGroupItem) {
	s.toolItems = append(s.toolItems, item)
}

// RemoveItem detaches a tool-owned group item.
func (s *MapScene) RemoveItem(item *ObjectGroupItem) {
	for n, it := range s.toolItems {
		if it == item {
			s.toolItems = append(s.toolItems[:n], s.toolItems[n+1:]...)
			return
		}
	}
}

// ItemAt returns the topmost object item whose bounds contain the given
// scene position, or nil.
func (s *MapScene) ItemAt(pos tmap.PointF) *MapObjectItem {
	for n := len(s.groupItems) - 1; n >= 0; n-- {
		gi := s.groupItems[n]
		items := gi.Items()
		for i := len(items) - 1; i >= 0; i-- {
			if items[i].Bounds().Translated(gi.Pos()).Contains(pos) {
				return items[i]
			}
		}
	}
	return nil
}

func (s *MapScene) MousePressed(ev MouseEvent) {
	if s.handler != nil {
		s.handler.MousePressed(ev)
	}
}

func (s *MapScene) MouseMoved(pos tmap.PointF, mods Modifiers) {
	if s.handler != nil {
		s.handler.MouseMoved(pos, mods)
	}
}

func (s *MapScene) MouseReleased(ev MouseEvent) {
	if s.handler != nil {
		s.handler.MouseReleased(ev)
	}
}

func (s *MapScene) KeyPressed(key Key) {
	if s.handler != nil {
		s.handler.KeyPressed(key)
	}
}
