package menu_test

import (
	"errors"
	"testing"

	"github.com/go-overlay/menu"
)

func TestMenuCollectValues(t *testing.T) {
	m := menu.NewMenu("settings", "Settings", 300, 200)
	sel := m.AddSelector("Difficulty", []string{"Easy", "Hard"}, menu.WithID("difficulty"))
	ti := m.AddTextInput("Name", menu.WithID("player"))
	m.AddButton("Apply", menu.Action{}) // buttons carry no value
	m.AddLabel("hint text")

	sel.SetIndex(1)
	ti.SetText("gopher")

	values, err := m.CollectValues(false)
	if err != nil {
		t.Fatalf("CollectValues: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("collected %d values, want 2: %v", len(values), values)
	}
	if values["difficulty"] != "Hard" {
		t.Errorf("difficulty = %v, want Hard", values["difficulty"])
	}
	if values["player"] != "gopher" {
		t.Errorf("player = %v, want gopher", values["player"])
	}
}

func TestMenuCollectValuesRecursive(t *testing.T) {
	child := menu.NewMenu("audio", "Audio", 300, 200)
	child.AddSelector("Volume", []string{"Low", "High"}, menu.WithID("volume"))

	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddTextInput("Name", menu.WithID("player"))
	root.AddSubmenu("Audio", child)

	shallow, err := root.CollectValues(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := shallow["volume"]; ok {
		t.Error("non-recursive collection should not descend into submenus")
	}

	deep, err := root.CollectValues(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := deep["volume"]; !ok {
		t.Error("recursive collection should include submenu values")
	}
	if _, ok := deep["player"]; !ok {
		t.Error("recursive collection should include the root's own values")
	}
}

func TestMenuCollectValuesCollision(t *testing.T) {
	child := menu.NewMenu("child", "Child", 300, 200)
	child.AddTextInput("Name", menu.WithID("player"))

	root := menu.NewMenu("root", "Root", 300, 200)
	root.AddTextInput("Name", menu.WithID("player"))
	root.AddSubmenu("Child", child)

	if _, err := root.CollectValues(true); !errors.Is(err, menu.ErrValueCollision) {
		t.Errorf("expected ErrValueCollision, got %v", err)
	}
}

func TestMenuOverflowGrowsScrollbar(t *testing.T) {
	m := menu.NewMenu("long", "Long", 200, 120)
	for i := 0; i < 20; i++ {
		m.AddButton("item", menu.Action{})
	}
	if m.Viewport().Bar(menu.EdgeEast) == nil {
		t.Error("a menu taller than its frame should grow a vertical bar")
	}
}

func TestMenuRemoveWidget(t *testing.T) {
	m := menu.NewMenu("m", "M", 300, 200)
	m.AddButton("a", menu.Action{}, menu.WithID("a"))
	m.AddButton("b", menu.Action{}, menu.WithID("b"))

	if !m.Remove("a") {
		t.Fatal("Remove should report success")
	}
	if m.Registry().IndexOf("b") != 0 {
		t.Error("remaining widget should shift down")
	}
	if m.Remove("a") {
		t.Error("second Remove should report failure")
	}
}

func TestMenuDrawProducesCommands(t *testing.T) {
	m := menu.NewMenu("m", "Menu", 300, 200, menu.WithPosition(10, 10))
	m.AddButton("Play", menu.Action{})
	m.Cursor().Reset()

	dl := menu.AcquireDrawList()
	defer menu.ReleaseDrawList(dl)

	m.Draw(dl)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 {
		t.Error("drawing a menu should emit vertices")
	}
	if len(dl.CmdBuffer) == 0 {
		t.Error("drawing a menu should emit draw commands")
	}
}
