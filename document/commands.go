package document

import (
	"fmt"

	"mapsmith/tmap"
)

// AddObjectCommand inserts an object into an object group. Undo detaches it
// again; redo re-inserts at the original index.
type AddObjectCommand struct {
	doc    *Document
	group  *tmap.ObjectGroup
	object *tmap.MapObject
	index  int
}

func NewAddObjectCommand(doc *Document, group *tmap.ObjectGroup, object *tmap.MapObject) *AddObjectCommand {
	return &AddObjectCommand{doc: doc, group: group, object: object, index: -1}
}

func (c *AddObjectCommand) Do() {
	if c.index < 0 {
		c.index = c.group.ObjectCount()
	}
	c.group.InsertObject(c.index, c.object)
	c.doc.notifyObjectsChanged()
}

func (c *AddObjectCommand) Undo() {
	c.index = c.group.RemoveObject(c.object)
	if contains(c.doc.selection, c.object) {
		c.doc.SetSelectedObjects(nil)
	}
	c.doc.notifyObjectsChanged()
}

func (c *AddObjectCommand) Text() string {
	return fmt.Sprintf("add object %q", c.object.Name())
}

// RemoveObjectCommand is the mirror of AddObjectCommand.
type RemoveObjectCommand struct {
	doc    *Document
	group  *tmap.ObjectGroup
	object *tmap.MapObject
	index  int
}

func NewRemoveObjectCommand(doc *Document, group *tmap.ObjectGroup, object *tmap.MapObject) *RemoveObjectCommand {
	return &RemoveObjectCommand{doc: doc, group: group, object: object}
}

func (c *RemoveObjectCommand) Do() {
	c.index = c.group.RemoveObject(c.object)
	if contains(c.doc.selection, c.object) {
		c.doc.SetSelectedObjects(nil)
	}
	c.doc.notifyObjectsChanged()
}

func (c *RemoveObjectCommand) Undo() {
	c.group.InsertObject(c.index, c.object)
	c.doc.notifyObjectsChanged()
}

func (c *RemoveObjectCommand) Text() string {
	return fmt.Sprintf("remove object %q", c.object.Name())
}

// AddTilesetCommand registers a tileset with the map.
type AddTilesetCommand struct {
	doc     *Document
	tileset *tmap.Tileset
}

func NewAddTilesetCommand(doc *Document, tileset *tmap.Tileset) *AddTilesetCommand {
	return &AddTilesetCommand{doc: doc, tileset: tileset}
}

func (c *AddTilesetCommand) Do() {
	c.doc.m.AddTileset(c.tileset)
	c.doc.notifyTilesetsChanged()
}

func (c *AddTilesetCommand) Undo() {
	c.doc.m.RemoveTileset(c.tileset)
	c.doc.notifyTilesetsChanged()
}

func (c *AddTilesetCommand) Text() string {
	return fmt.Sprintf("add tileset %q", c.tileset.Name())
}

func contains(objs []*tmap.MapObject, obj *tmap.MapObject) bool {
	for _, o := range objs {
		if o == obj {
			return true
		}
	}
	return false
}
