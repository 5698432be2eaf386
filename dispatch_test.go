package menu_test

import (
	"testing"

	"github.com/go-overlay/menu"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *menu.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// countingFeedback records transition notifications.
type countingFeedback struct {
	selection int
	apply     int
	closed    int
}

func (f *countingFeedback) Selection() { f.selection++ }
func (f *countingFeedback) Apply()     { f.apply++ }
func (f *countingFeedback) Close()     { f.closed++ }

func TestUpdateKeyNavigation(t *testing.T) {
	renderer := &mockRenderer{}
	fb := &countingFeedback{}
	ui := menu.New(renderer, menu.WithFeedback(fb))

	root := testMenu("root", 3)
	ui.SetRoot(root)

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyDown)})
	if got := root.Cursor().Index(); got != 1 {
		t.Errorf("Index = %d after KeyDown, want 1", got)
	}
	if fb.selection != 1 {
		t.Errorf("selection feedback fired %d times, want 1", fb.selection)
	}

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyUp)})
	if got := root.Cursor().Index(); got != 0 {
		t.Errorf("Index = %d after KeyUp, want 0", got)
	}
}

func TestUpdateOpensAndClosesSubmenu(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	child := testMenu("child", 2)
	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddSubmenu("Child", child)
	ui.SetRoot(root)

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyEnter)})
	if ui.Nav().Current() != child {
		t.Fatal("Enter on a submenu button should open the child")
	}

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyBackspace)})
	if ui.Nav().Current() != root {
		t.Error("Backspace should navigate back")
	}
}

func TestUpdateCallbackAction(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	fired := 0
	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddButton("Do it", menu.CallbackAction(func() { fired++ }))
	ui.SetRoot(root)

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyEnter)})
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestUpdateCustomAction(t *testing.T) {
	renderer := &mockRenderer{}
	var got any
	ui := menu.New(renderer, menu.WithCustomHandler(func(payload any) { got = payload }))

	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddButton("Cheat", menu.CustomAction("big-head-mode"))
	ui.SetRoot(root)

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeySpace)})
	if got != "big-head-mode" {
		t.Errorf("custom payload = %v, want big-head-mode", got)
	}
}

func TestUpdateExitStopsHost(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddButton("Quit", menu.ExitAction())
	ui.SetRoot(root)

	if ui.Update(nil) {
		t.Fatal("Update without events should not stop the host")
	}
	if !ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyEnter)}) {
		t.Error("activating an exit action should stop the host")
	}
}

func TestUpdateEscapeAppliesClosePolicy(t *testing.T) {
	renderer := &mockRenderer{}
	fb := &countingFeedback{}
	ui := menu.New(renderer, menu.WithFeedback(fb))

	root := testMenu("root", 2, menu.WithClosePolicy(menu.CloseExit))
	ui.SetRoot(root)

	if !ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyEscape)}) {
		t.Error("Escape with CloseExit should stop the host")
	}
	if fb.closed != 1 {
		t.Errorf("close feedback fired %d times, want 1", fb.closed)
	}
}

func TestUpdateFocusedWidgetConsumesFirst(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	root := menu.NewMenu("root", "Root", 400, 200)
	sel := root.AddSelector("Mode", []string{"A", "B", "C"})
	root.AddButton("Other", menu.Action{})
	ui.SetRoot(root)

	// The focused selector consumes Left/Right before column navigation.
	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyRight)})
	if sel.Index() != 1 {
		t.Errorf("selector index = %d, want 1", sel.Index())
	}
	if got := root.Cursor().Index(); got != 0 {
		t.Errorf("cursor moved to %d, want 0", got)
	}
}

func TestUpdatePointerSelectsAndActivates(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	fired := 0
	root := menu.NewMenu("root", "Root", 300, 200, menu.WithPosition(50, 50))
	root.AddButton("First", menu.Action{})
	root.AddButton("Second", menu.CallbackAction(func() { fired++ }))
	ui.SetRoot(root)

	wr := root.Registry().WidgetRect(1)
	pos := root.Viewport().ToScreen(menu.Vec2{X: wr.X + 1, Y: wr.Y + 1})

	ui.Update([]menu.Event{menu.PointerDownEvent(menu.MouseButtonLeft, pos)})
	if got := root.Cursor().Index(); got != 1 {
		t.Errorf("cursor = %d after click, want 1", got)
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestUpdateTouchSelectsAndActivates(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	fired := 0
	root := menu.NewMenu("root", "Root", 300, 200, menu.WithPosition(50, 50))
	root.AddButton("First", menu.Action{})
	root.AddButton("Second", menu.CallbackAction(func() { fired++ }))
	ui.SetRoot(root)

	wr := root.Registry().WidgetRect(1)
	pos := root.Viewport().ToScreen(menu.Vec2{X: wr.X + 1, Y: wr.Y + 1})

	ui.Update([]menu.Event{menu.TouchDownEvent(pos)})
	if got := root.Cursor().Index(); got != 1 {
		t.Errorf("cursor = %d after touch, want 1", got)
	}
	if fired != 1 {
		t.Errorf("callback fired %d times after touch, want 1", fired)
	}
}

func TestCollectValuesBeforeRootPanics(t *testing.T) {
	ui := menu.New(&mockRenderer{})
	assertPanics(t, "CollectValues before SetRoot", func() { ui.CollectValues(true) })
}

func TestUpdateCloseBoxClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	root := testMenu("root", 2, menu.WithClosePolicy(menu.CloseExit), menu.WithPosition(10, 10))
	ui.SetRoot(root)

	// The close box sits near the frame's top-right corner.
	r := root.Rect()
	pos := menu.Vec2{X: r.X + r.W - 10, Y: r.Y + 10}
	if !ui.Update([]menu.Event{menu.PointerDownEvent(menu.MouseButtonLeft, pos)}) {
		t.Error("close box click with CloseExit should stop the host")
	}
}

func TestUpdateIgnoredWhileDisabled(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)

	root := testMenu("root", 3)
	ui.SetRoot(root)
	ui.Disable()

	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyDown)})
	if got := root.Cursor().Index(); got != 0 {
		t.Errorf("disabled GUI moved the cursor to %d", got)
	}

	ui.Enable()
	ui.Update([]menu.Event{menu.KeyDownEvent(menu.KeyDown)})
	if got := root.Cursor().Index(); got != 1 {
		t.Errorf("re-enabled GUI should move the cursor, got %d", got)
	}
}

func TestDrawRendersOncePerFrame(t *testing.T) {
	renderer := &mockRenderer{}
	ui := menu.New(renderer)
	ui.SetRoot(testMenu("root", 2))

	if err := ui.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", renderer.renderCalls)
	}

	// A disabled GUI draws nothing.
	ui.Disable()
	if err := ui.Draw(); err != nil {
		t.Fatalf("Draw while disabled: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("renderCalls = %d while disabled, want 1", renderer.renderCalls)
	}
}
