package app

import (
	tea "charm.land/bubbletea/v2"

	"rangeslider/internal/logging"
)

func (m *Model) trackPointer(mouse tea.Mouse) {
	m.pointer.x = mouse.X
	m.pointer.y = mouse.Y
	m.pointer.known = true
}

// reduceLeftPressMouse starts a gesture when the left button goes down on a
// handle or on the selected span.
func (m *Model) reduceLeftPressMouse(mouse tea.Mouse) bool {
	if mouse.Button != tea.MouseLeft {
		return false
	}
	m.trackPointer(mouse)
	if mouse.Y != trackRow || m.widget.Dragging() {
		return false
	}
	kind, ok := m.layout().hit(mouse.X)
	if !ok {
		return false
	}
	m.pointer.pressed = true
	if !m.widget.Begin(kind) {
		m.pointer.pressed = false
		m.log.Debug("drag refused", logging.F("kind", kind), logging.F("x", mouse.X))
		return false
	}
	return true
}

// reduceMotionMouse only records the position; the next tick reads it. A
// motion report with no button held means the release was lost, which the
// next tick treats as the button going up.
func (m *Model) reduceMotionMouse(mouse tea.Mouse) bool {
	m.trackPointer(mouse)
	if !m.widget.Dragging() {
		return false
	}
	if mouse.Button == tea.MouseNone {
		m.pointer.pressed = false
	}
	return true
}

func (m *Model) reduceReleaseMouse(mouse tea.Mouse) bool {
	m.trackPointer(mouse)
	m.pointer.pressed = false
	if !m.widget.Dragging() {
		return false
	}
	return m.widget.Release()
}
