package menu_test

import (
	"testing"

	"github.com/go-overlay/menu"
)

func TestSelectorCycles(t *testing.T) {
	var changes []string
	s := menu.NewSelector("Mode", []string{"A", "B", "C"}).
		OnChange(func(i int, v string) { changes = append(changes, v) })

	s.Handle(menu.KeyDownEvent(menu.KeyRight))
	s.Handle(menu.KeyDownEvent(menu.KeyRight))
	if s.Index() != 2 {
		t.Errorf("Index = %d, want 2", s.Index())
	}

	// Cycling wraps in both directions.
	s.Handle(menu.KeyDownEvent(menu.KeyRight))
	if s.Index() != 0 {
		t.Errorf("Index = %d after wrap, want 0", s.Index())
	}
	s.Handle(menu.KeyDownEvent(menu.KeyLeft))
	if s.Index() != 2 {
		t.Errorf("Index = %d after reverse wrap, want 2", s.Index())
	}

	if len(changes) != 4 {
		t.Errorf("OnChange fired %d times, want 4", len(changes))
	}

	v, ok := s.Value()
	if !ok || v != "C" {
		t.Errorf("Value = %v/%v, want C", v, ok)
	}
}

func TestSelectorIgnoresVerticalKeys(t *testing.T) {
	s := menu.NewSelector("Mode", []string{"A", "B"})
	if s.Handle(menu.KeyDownEvent(menu.KeyDown)) {
		t.Error("vertical keys should pass through to navigation")
	}
}

func TestTextInputEditing(t *testing.T) {
	ti := menu.NewTextInput("Name")
	for _, ch := range "hello" {
		ti.Handle(menu.CharEvent(ch))
	}
	if ti.Text() != "hello" {
		t.Fatalf("Text = %q, want hello", ti.Text())
	}

	ti.Handle(menu.KeyDownEvent(menu.KeyBackspace))
	if ti.Text() != "hell" {
		t.Errorf("Text = %q after backspace, want hell", ti.Text())
	}

	// Cursor motion and mid-string insert.
	ti.Handle(menu.KeyDownEvent(menu.KeyHome))
	ti.Handle(menu.CharEvent('s'))
	if ti.Text() != "shell" {
		t.Errorf("Text = %q after home+insert, want shell", ti.Text())
	}

	ti.Handle(menu.KeyDownEvent(menu.KeyEnd))
	ti.Handle(menu.KeyDownEvent(menu.KeyDelete))
	if ti.Text() != "shell" {
		t.Errorf("Text = %q, delete at the end should be a no-op", ti.Text())
	}
}

func TestTextInputMaxLength(t *testing.T) {
	ti := menu.NewTextInput("Name", menu.WithMaxLength(3))
	for _, ch := range "abcdef" {
		ti.Handle(menu.CharEvent(ch))
	}
	if ti.Text() != "abc" {
		t.Errorf("Text = %q, want abc", ti.Text())
	}

	ti.SetText("too long for the cap")
	if ti.Text() != "too" {
		t.Errorf("SetText should truncate, got %q", ti.Text())
	}
}

func TestTextInputControlCharsRejected(t *testing.T) {
	ti := menu.NewTextInput("Name")
	if ti.Handle(menu.CharEvent('\t')) {
		t.Error("control characters should not be consumed")
	}
	if ti.Text() != "" {
		t.Errorf("Text = %q, want empty", ti.Text())
	}
}

func TestSliderStepsAndClamps(t *testing.T) {
	s := menu.NewSlider("Volume", 0, 10, 2)

	s.Handle(menu.KeyDownEvent(menu.KeyRight))
	s.Handle(menu.KeyDownEvent(menu.KeyRight))
	if s.Get() != 4 {
		t.Errorf("Get = %v, want 4", s.Get())
	}

	for i := 0; i < 10; i++ {
		s.Handle(menu.KeyDownEvent(menu.KeyRight))
	}
	if s.Get() != 10 {
		t.Errorf("Get = %v, slider should clamp at max", s.Get())
	}

	s.Handle(menu.KeyDownEvent(menu.KeyLeft))
	if s.Get() != 8 {
		t.Errorf("Get = %v, want 8", s.Get())
	}

	// Set snaps to the step grid.
	s.Set(5)
	if got := s.Get(); got != 4 && got != 6 {
		t.Errorf("Get = %v after off-grid Set, want a grid value", got)
	}
}

func TestLabelNotSelectable(t *testing.T) {
	l := menu.NewLabel("heading")
	if l.Selectable() {
		t.Error("labels must not take focus")
	}
	if _, ok := l.Value(); ok {
		t.Error("labels carry no value")
	}
}

func TestButtonActivateReturnsAction(t *testing.T) {
	called := false
	b := menu.NewButton("Go", menu.CallbackAction(func() { called = true }))
	act := b.Activate()
	if act.Kind != menu.ActionCallback || act.Fn == nil {
		t.Fatalf("Activate returned %+v", act)
	}
	act.Fn()
	if !called {
		t.Error("action function should invoke the callback")
	}
}
