package menu

import "errors"

// ErrCyclicMenu is returned when a submenu link would make a menu
// reachable from itself.
var ErrCyclicMenu = errors.New("menu: submenu link would create a cycle")

// ClosePolicy is the action a menu takes on a close request.
type ClosePolicy int

const (
	// CloseDisable ignores close requests; the menu stays open.
	CloseDisable ClosePolicy = iota
	// CloseReset returns to the root menu and hides the tree.
	CloseReset
	// CloseBack navigates back one level.
	CloseBack
	// CloseExit signals the host application to terminate.
	CloseExit
	// CloseCallback runs the menu's close callback, then hides the
	// tree unless the callback vetoes by returning true.
	CloseCallback
)

// navFrame records one visited menu and the selection it had when a
// child was opened from it, so Back restores it exactly.
type navFrame struct {
	menu      *Menu
	selection int
}

// NavStack is the single active path through a menu tree, from the
// root to the currently shown menu. Menus never mutate each other;
// every transition goes through the stack, which makes the active path
// a first-class, inspectable value.
//
// All navigation operations panic when called before SetRoot: there is
// no meaningful recovery from navigating a stack that has no root.
type NavStack struct {
	root    *Menu
	current *Menu
	frames  []navFrame
	enabled bool
	exit    bool
}

// NewNavStack creates an uninitialized stack. Call SetRoot before any
// navigation.
func NewNavStack() *NavStack {
	return &NavStack{}
}

// mustInit panics when the stack has no root yet.
func (ns *NavStack) mustInit() {
	if ns.root == nil {
		panic("menu: navigation before SetRoot")
	}
}

// SetRoot installs the root menu, clears the path, and enables the
// stack. The root's cursor is reset to its first selectable widget.
func (ns *NavStack) SetRoot(m *Menu) {
	if m == nil {
		panic("menu: SetRoot with nil menu")
	}
	ns.root = m
	ns.current = m
	ns.frames = ns.frames[:0]
	ns.enabled = true
	ns.exit = false
	m.cursor.Reset()
}

// Root returns the root menu, or nil before SetRoot.
func (ns *NavStack) Root() *Menu { return ns.root }

// Current returns the active menu.
func (ns *NavStack) Current() *Menu {
	ns.mustInit()
	return ns.current
}

// Depth returns the number of frames below the active menu.
// Zero means the root is active.
func (ns *NavStack) Depth() int { return len(ns.frames) }

// Enabled reports whether the menu tree is shown and receiving input.
func (ns *NavStack) Enabled() bool { return ns.enabled }

// Enable shows the menu tree.
func (ns *NavStack) Enable() { ns.enabled = true }

// Disable hides the menu tree without changing the active path.
func (ns *NavStack) Disable() { ns.enabled = false }

// ExitRequested reports whether a close policy asked the host to
// terminate.
func (ns *NavStack) ExitRequested() bool { return ns.exit }

// Open pushes the active menu onto the path and activates child.
// The child's cursor is reset to its first selectable widget.
func (ns *NavStack) Open(child *Menu) {
	ns.mustInit()
	if child == nil {
		panic("menu: open nil menu")
	}
	ns.frames = append(ns.frames, navFrame{
		menu:      ns.current,
		selection: ns.current.cursor.Index(),
	})
	ns.current = child
	child.cursor.Reset()
	menuLogger.Debug("nav open", "menu", child.id, "depth", len(ns.frames))
}

// Back pops up to n frames, stopping early at the root, and restores
// the popped frame's selection index exactly. Menus are not destroyed.
func (ns *NavStack) Back(n int) {
	ns.mustInit()
	for ; n > 0 && len(ns.frames) > 0; n-- {
		frame := ns.frames[len(ns.frames)-1]
		ns.frames = ns.frames[:len(ns.frames)-1]
		ns.current = frame.menu
		if frame.selection >= 0 && frame.selection < ns.current.reg.Len() {
			ns.current.cursor.Select(frame.selection)
		} else {
			ns.current.cursor.Clear()
		}
	}
	menuLogger.Debug("nav back", "menu", ns.current.id, "depth", len(ns.frames))
}

// ResetToRoot pops the whole path.
func (ns *NavStack) ResetToRoot() {
	ns.mustInit()
	ns.Back(len(ns.frames))
}

// Close applies the active menu's close policy.
func (ns *NavStack) Close() {
	ns.mustInit()
	switch ns.current.policy {
	case CloseDisable:
		// Close requests are ignored.
	case CloseReset:
		ns.ResetToRoot()
		ns.enabled = false
	case CloseBack:
		ns.Back(1)
	case CloseExit:
		ns.exit = true
	case CloseCallback:
		veto := false
		if ns.current.onClose != nil {
			veto = ns.current.onClose()
		}
		if !veto {
			ns.enabled = false
		}
	}
}

// checkAcyclic verifies that linking child under parent keeps the tree
// acyclic. The check runs when the link is established; the tree is
// static after configuration, so traversal never needs it.
func checkAcyclic(parent, child *Menu) error {
	for m := parent; m != nil; m = m.parent {
		if m == child {
			return ErrCyclicMenu
		}
	}
	return nil
}
