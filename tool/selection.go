package tool

import (
	"mapsmith/document"
	"mapsmith/scene"
	"mapsmith/tmap"
)

// ObjectSelectionTool selects objects by clicking them. It is also the tool
// the placement tools switch to when Escape is pressed while idle.
type ObjectSelectionTool struct {
	doc   *document.Document
	scene *scene.MapScene
}

func NewObjectSelectionTool(doc *document.Document) *ObjectSelectionTool {
	return &ObjectSelectionTool{doc: doc}
}

func (t *ObjectSelectionTool) Name() string { return SelectionToolName }

func (t *ObjectSelectionTool) Activate(s *scene.MapScene)   { t.scene = s }
func (t *ObjectSelectionTool) Deactivate(s *scene.MapScene) { t.scene = nil }

func (t *ObjectSelectionTool) MousePressed(ev scene.MouseEvent) {
	if ev.Button != scene.LeftButton || t.scene == nil {
		return
	}
	item := t.scene.ItemAt(ev.Pos)
	if item == nil {
		t.doc.SetSelectedObjects(nil)
		return
	}
	if ev.Modifiers.Has(scene.ModShift) {
		t.doc.SetSelectedObjects(append(t.doc.SelectedObjects(), item.Object()))
		return
	}
	t.doc.SetSelectedObjects([]*tmap.MapObject{item.Object()})
}

func (t *ObjectSelectionTool) MouseMoved(pos tmap.PointF, mods scene.Modifiers) {}

func (t *ObjectSelectionTool) MouseReleased(ev scene.MouseEvent) {}

func (t *ObjectSelectionTool) KeyPressed(key scene.Key) {
	if key != scene.KeyDelete {
		return
	}
	// Delete removes the selection, one undo entry for all of it.
	selected := t.doc.SelectedObjects()
	if len(selected) == 0 {
		return
	}
	removal := document.NewComposite("remove objects")
	for _, obj := range selected {
		if group := obj.ObjectGroup(); group != nil {
			removal.Add(document.NewRemoveObjectCommand(t.doc, group, obj))
		}
	}
	if removal.Len() > 0 {
		t.doc.Push(removal)
	}
}
