// Package tool implements the editor's interactive tools: the object
// placement lifecycle, the selection tool, snapping and the tool registry.
package tool

import (
	"mapsmith/scene"
	"mapsmith/tmap"
)

// Tool is an interactive editor tool. The manager routes scene input events
// to whichever tool is active.
type Tool interface {
	Name() string
	Activate(s *scene.MapScene)
	Deactivate(s *scene.MapScene)
	MousePressed(ev scene.MouseEvent)
	MouseMoved(pos tmap.PointF, mods scene.Modifiers)
	MouseReleased(ev scene.MouseEvent)
	KeyPressed(key scene.Key)
}
