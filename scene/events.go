package scene

import "mapsmith/tmap"

// MouseButton identifies which pointer button an event is for.
type MouseButton int

const (
	LeftButton MouseButton = iota
	RightButton
	MiddleButton
)

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// Key identifies the non-pointer keys the tools react to.
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
	KeyDelete
)

// MouseEvent is a pointer press or release in scene coordinates.
type MouseEvent struct {
	Pos       tmap.PointF
	Button    MouseButton
	Modifiers Modifiers
}

// EventHandler receives the scene's input events; the tool manager routes
// them to the active tool.
type EventHandler interface {
	MousePressed(ev MouseEvent)
	MouseMoved(pos tmap.PointF, mods Modifiers)
	MouseReleased(ev MouseEvent)
	KeyPressed(key Key)
}
