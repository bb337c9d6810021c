package tool

import (
	"mapsmith/scene"
	"mapsmith/tmap"
)

// managerAware is implemented by tools that need the registry as a
// collaborator (the placement tool switches to the selection tool on Escape).
type managerAware interface {
	setManager(*Manager)
}

// Manager is the tool registry. It keeps exactly one tool active and
// forwards the scene's input events to it.
type Manager struct {
	scene  *scene.MapScene
	tools  []Tool
	active Tool
}

func NewManager(s *scene.MapScene) *Manager {
	m := &Manager{scene: s}
	s.SetEventHandler(m)
	return m
}

func (m *Manager) Register(t Tool) {
	if aware, ok := t.(managerAware); ok {
		aware.setManager(m)
	}
	m.tools = append(m.tools, t)
}

// Find returns the registered tool with the given name, or nil.
func (m *Manager) Find(name string) Tool {
	for _, t := range m.tools {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

func (m *Manager) Tools() []Tool    { return m.tools }
func (m *Manager) ActiveTool() Tool { return m.active }

// SelectTool deactivates the current tool and activates t. Deactivation
// cancels any placement in progress before the switch.
func (m *Manager) SelectTool(t Tool) {
	if m.active == t {
		return
	}
	if m.active != nil {
		m.active.Deactivate(m.scene)
	}
	m.active = t
	if t != nil {
		t.Activate(m.scene)
	}
}

func (m *Manager) MousePressed(ev scene.MouseEvent) {
	if m.active != nil {
		m.active.MousePressed(ev)
	}
}

func (m *Manager) MouseMoved(pos tmap.PointF, mods scene.Modifiers) {
	if m.active != nil {
		m.active.MouseMoved(pos, mods)
	}
}

func (m *Manager) MouseReleased(ev scene.MouseEvent) {
	if m.active != nil {
		m.active.MouseReleased(ev)
	}
}

func (m *Manager) KeyPressed(key scene.Key) {
	if m.active != nil {
		m.active.KeyPressed(key)
	}
}
