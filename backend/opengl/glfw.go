package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-overlay/menu"
)

// GLFWInputAdapter collects GLFW callbacks into per-frame menu event
// batches. Install it once, then call Drain at the start of each frame
// and hand the batch to the GUI.
type GLFWInputAdapter struct {
	window *glfw.Window
	events []menu.Event
	lastX  float32
	lastY  float32
}

// NewGLFWInputAdapter installs input callbacks on the window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Drain returns the events gathered since the previous Drain and
// resets the batch. Call after glfw.PollEvents.
func (a *GLFWInputAdapter) Drain() []menu.Event {
	batch := a.events
	a.events = a.events[len(a.events):]
	return batch
}

// cursorPos returns the pointer position in window coordinates.
func (a *GLFWInputAdapter) cursorPos() menu.Vec2 {
	x, y := a.window.GetCursorPos()
	return menu.Vec2{X: float32(x), Y: float32(y)}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToMenuKey(key)
	if k == menu.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.events = append(a.events, menu.KeyDownEvent(k))
	case glfw.Release:
		a.events = append(a.events, menu.KeyUpEvent(k))
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.events = append(a.events, menu.CharEvent(char))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToMenu(button)
	if b < 0 {
		return
	}
	pos := a.cursorPos()
	switch action {
	case glfw.Press:
		a.events = append(a.events, menu.PointerDownEvent(b, pos))
	case glfw.Release:
		a.events = append(a.events, menu.PointerUpEvent(b, pos))
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.events = append(a.events, menu.WheelEvent(a.cursorPos(),
		menu.Vec2{X: float32(xoff), Y: float32(yoff)}))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	pos := menu.Vec2{X: float32(xpos), Y: float32(ypos)}
	delta := menu.Vec2{X: pos.X - a.lastX, Y: pos.Y - a.lastY}
	a.lastX, a.lastY = pos.X, pos.Y
	a.events = append(a.events, menu.PointerMoveEvent(pos, delta))
}

// glfwKeyToMenuKey maps GLFW keys to menu keys.
func glfwKeyToMenuKey(key glfw.Key) menu.Key {
	switch key {
	case glfw.KeyTab:
		return menu.KeyTab
	case glfw.KeyLeft:
		return menu.KeyLeft
	case glfw.KeyRight:
		return menu.KeyRight
	case glfw.KeyUp:
		return menu.KeyUp
	case glfw.KeyDown:
		return menu.KeyDown
	case glfw.KeyPageUp:
		return menu.KeyPageUp
	case glfw.KeyPageDown:
		return menu.KeyPageDown
	case glfw.KeyHome:
		return menu.KeyHome
	case glfw.KeyEnd:
		return menu.KeyEnd
	case glfw.KeyDelete:
		return menu.KeyDelete
	case glfw.KeyBackspace:
		return menu.KeyBackspace
	case glfw.KeySpace:
		return menu.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return menu.KeyEnter
	case glfw.KeyEscape:
		return menu.KeyEscape
	default:
		return menu.KeyNone
	}
}

// glfwMouseButtonToMenu maps GLFW mouse buttons to menu mouse buttons.
func glfwMouseButtonToMenu(button glfw.MouseButton) menu.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return menu.MouseButtonLeft
	case glfw.MouseButtonRight:
		return menu.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return menu.MouseButtonMiddle
	default:
		return -1
	}
}
