package tmap

import "image/color"

// ObjectGroup is a layer holding freeform placed objects.
type ObjectGroup struct {
	layerProps
	color   color.RGBA
	objects []*MapObject
}

func NewObjectGroup(name string) *ObjectGroup {
	return &ObjectGroup{
		layerProps: layerProps{name: name, visible: true},
		color:      color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
	}
}

func (g *ObjectGroup) Color() color.RGBA     { return g.color }
func (g *ObjectGroup) SetColor(c color.RGBA) { g.color = c }

// TotalOffset is the group's accumulated positional offset. Groups are not
// nested here, so it equals the layer offset.
func (g *ObjectGroup) TotalOffset() PointF { return g.offset }

// Unlocked reports whether the group accepts new objects.
func (g *ObjectGroup) Unlocked() bool { return !g.locked }

func (g *ObjectGroup) Objects() []*MapObject { return g.objects }
func (g *ObjectGroup) ObjectCount() int      { return len(g.objects) }

// AddObject appends obj and takes ownership of it.
func (g *ObjectGroup) AddObject(obj *MapObject) {
	g.objects = append(g.objects, obj)
	obj.group = g
}

// InsertObject places obj at index, clamping to the valid range.
func (g *ObjectGroup) InsertObject(index int, obj *MapObject) {
	if index < 0 || index > len(g.objects) {
		index = len(g.objects)
	}
	g.objects = append(g.objects, nil)
	copy(g.objects[index+1:], g.objects[index:])
	g.objects[index] = obj
	obj.group = g
}

// RemoveObject detaches obj and returns the index it occupied, or -1 if the
// object was not part of the group.
func (g *ObjectGroup) RemoveObject(obj *MapObject) int {
	for i, o := range g.objects {
		if o == obj {
			g.objects = append(g.objects[:i], g.objects[i+1:]...)
			obj.group = nil
			return i
		}
	}
	return -1
}
