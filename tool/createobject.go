package tool

import (
	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/tmap"
)

// ObjectBuilder constructs the object a concrete tool variant places. It may
// return nil to refuse creation (no tile selected, no template loaded).
type ObjectBuilder func() *tmap.MapObject

// ObjectUpdater adjusts the pending object for a new snapped pixel position.
// Variants that grow an area while dragging install one; the default moves
// the object to the position.
type ObjectUpdater func(obj *tmap.MapObject, pixelPos tmap.PointF, mods scene.Modifiers)

// CreateObjectTool places new objects on the current object group. While a
// placement is in progress the object lives on a staging group owned by the
// tool; the document is only touched when the placement is committed.
type CreateObjectTool struct {
	name     string
	doc      *document.Document
	renderer render.MapRenderer
	manager  *Manager
	scene    *scene.MapScene

	build  ObjectBuilder
	update ObjectUpdater

	// The staging group is never part of the map, so cancelling a placement
	// needs no undo entry.
	stagingGroup  *tmap.ObjectGroup
	groupItem     *scene.ObjectGroupItem
	newObjectItem *scene.MapObjectItem // nil while idle
}

func NewCreateObjectTool(name string, doc *document.Document, renderer render.MapRenderer, build ObjectBuilder) *CreateObjectTool {
	group := tmap.NewObjectGroup("")
	return &CreateObjectTool{
		name:         name,
		doc:          doc,
		renderer:     renderer,
		build:        build,
		stagingGroup: group,
		groupItem:    scene.NewObjectGroupItem(group),
	}
}

// SetObjectUpdater installs a variant-specific update step.
func (t *CreateObjectTool) SetObjectUpdater(update ObjectUpdater) { t.update = update }

func (t *CreateObjectTool) Name() string { return t.name }

// IsPlacing reports whether a placement is in progress.
func (t *CreateObjectTool) IsPlacing() bool { return t.newObjectItem != nil }

// PendingObject is the object being placed, nil while idle.
func (t *CreateObjectTool) PendingObject() *tmap.MapObject {
	if t.newObjectItem == nil {
		return nil
	}
	return t.newObjectItem.Object()
}

func (t *CreateObjectTool) Activate(s *scene.MapScene) {
	t.scene = s
	s.AddItem(t.groupItem)
}

func (t *CreateObjectTool) Deactivate(s *scene.MapScene) {
	if t.newObjectItem != nil {
		t.cancelNewObject()
	}
	s.RemoveItem(t.groupItem)
	t.scene = nil
}

func (t *CreateObjectTool) setManager(m *Manager) { t.manager = m }

func (t *CreateObjectTool) KeyPressed(key scene.Key) {
	switch key {
	case scene.KeyEnter:
		if t.newObjectItem != nil {
			t.finishNewObject()
		}
	case scene.KeyEscape:
		if t.newObjectItem != nil {
			t.cancelNewObject()
		} else if t.manager != nil {
			// Not placing anything: hand over to the selection tool.
			if sel := t.manager.Find(SelectionToolName); sel != nil {
				t.manager.SelectTool(sel)
			}
		}
	}
}

func (t *CreateObjectTool) MousePressed(ev scene.MouseEvent) {
	if ev.Button == scene.RightButton {
		if t.newObjectItem != nil {
			t.cancelNewObject()
			return
		}
		t.basePressed(ev)
		return
	}

	if ev.Button != scene.LeftButton {
		t.basePressed(ev)
		return
	}

	group := t.doc.CurrentObjectGroup()
	if group == nil || !group.Visible() {
		return
	}

	offsetPos := ev.Pos.Sub(group.TotalOffset())
	pixelCoords := t.renderer.ScreenToPixelCoords(offsetPos)
	pixelCoords = NewSnapHelper(t.renderer, ev.Modifiers).Snap(pixelCoords)

	if t.startNewObject(pixelCoords, group) {
		t.mouseMovedWhileCreating(offsetPos, ev.Modifiers)
	}
}

func (t *CreateObjectTool) MouseMoved(pos tmap.PointF, mods scene.Modifiers) {
	if t.newObjectItem == nil {
		return
	}
	offset := t.stagingGroup.TotalOffset()
	t.mouseMovedWhileCreating(pos.Sub(offset), mods)
}

func (t *CreateObjectTool) MouseReleased(ev scene.MouseEvent) {
	if ev.Button == scene.LeftButton && t.newObjectItem != nil {
		t.finishNewObject()
	}
}

// basePressed is the fallback for presses that do not start or cancel a
// placement: plain click selection, so the tool behaves like the selection
// tool outside a placement.
func (t *CreateObjectTool) basePressed(ev scene.MouseEvent) {
	if t.scene == nil || ev.Button != scene.LeftButton {
		return
	}
	if item := t.scene.ItemAt(ev.Pos); item != nil {
		t.doc.SetSelectedObjects([]*tmap.MapObject{item.Object()})
	}
}

// startNewObject begins a placement at the given pixel position. It refuses
// when a placement is already in progress, when the group is locked, or when
// the builder declines to produce an object.
func (t *CreateObjectTool) startNewObject(pos tmap.PointF, group *tmap.ObjectGroup) bool {
	if t.newObjectItem != nil {
		return false
	}
	if !group.Unlocked() {
		return false
	}

	obj := t.build()
	if obj == nil {
		return false
	}

	obj.SetPosition(pos)
	t.stagingGroup.AddObject(obj)

	// Mirror the target group's visual properties so the preview renders
	// where and how the object will land.
	t.stagingGroup.SetColor(group.Color())
	t.stagingGroup.SetOffset(group.TotalOffset())
	t.groupItem.SetPos(t.stagingGroup.Offset())

	t.newObjectItem = t.groupItem.AddObjectItem(obj)
	t.newObjectItem.SyncWithObject(t.renderer)
	return true
}

// mouseMovedWhileCreating recomputes the pending object's position from the
// pointer position and resynchronizes its item.
func (t *CreateObjectTool) mouseMovedWhileCreating(pos tmap.PointF, mods scene.Modifiers) {
	pixelCoords := t.renderer.ScreenToPixelCoords(pos)
	pixelCoords = NewSnapHelper(t.renderer, mods).Snap(pixelCoords)

	obj := t.newObjectItem.Object()
	if t.update != nil {
		t.update(obj, pixelCoords, mods)
	} else {
		obj.SetPosition(pixelCoords)
	}
	t.newObjectItem.SyncWithObject(t.renderer)
}

// clearNewObjectItem drops the pending item and returns its detached object.
func (t *CreateObjectTool) clearNewObjectItem() *tmap.MapObject {
	obj := t.newObjectItem.Object()
	t.stagingGroup.RemoveObject(obj)
	t.groupItem.RemoveObjectItem(obj)
	t.newObjectItem = nil
	return obj
}

// cancelNewObject discards the pending object. The document is untouched.
func (t *CreateObjectTool) cancelNewObject() {
	t.clearNewObjectItem()
}

// finishNewObject commits the pending object to the current object group as
// one undoable entry. If the object references a tileset the map does not
// have yet, adding the tileset is nested into the same entry, ordered before
// the object insert.
func (t *CreateObjectTool) finishNewObject() {
	group := t.doc.CurrentObjectGroup()
	if group == nil || !group.Unlocked() || !group.Visible() {
		t.cancelNewObject()
		return
	}

	obj := t.clearNewObjectItem()

	addObject := document.NewAddObjectCommand(t.doc, group, obj)
	var cmd document.Command = addObject
	if ts := obj.Cell().Tileset(); ts != nil && !t.doc.Map().HasTileset(ts) {
		cmd = document.NewComposite(addObject.Text(),
			document.NewAddTilesetCommand(t.doc, ts),
			addObject)
	}

	t.doc.Push(cmd)
	t.doc.SetSelectedObjects([]*tmap.MapObject{obj})
}
