package menu_test

import (
	"errors"
	"testing"

	"github.com/go-overlay/menu"
)

func newTestRegistry(t *testing.T, opts ...menu.RegistryOption) *menu.Registry {
	t.Helper()
	return menu.NewRegistry(menu.DefaultTheme(), 300, opts...)
}

func TestRegistryDuplicateID(t *testing.T) {
	reg := newTestRegistry(t)

	if err := reg.Add(menu.NewButton("A", menu.Action{}, menu.WithID("a"))); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := reg.Add(menu.NewButton("B", menu.Action{}, menu.WithID("b"))); err != nil {
		t.Fatalf("second add: %v", err)
	}
	err := reg.Add(menu.NewButton("A2", menu.Action{}, menu.WithID("a")))
	if !errors.Is(err, menu.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d after rejected add, want 2", reg.Len())
	}
}

func TestRegistryGeneratedIDs(t *testing.T) {
	reg := newTestRegistry(t)

	b1 := menu.NewButton("A", menu.Action{})
	b2 := menu.NewButton("B", menu.Action{})
	if err := reg.Add(b1); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(b2); err != nil {
		t.Fatal(err)
	}
	if b1.ID() == "" || b2.ID() == "" {
		t.Error("widgets without ids should receive generated ones")
	}
	if b1.ID() == b2.ID() {
		t.Errorf("generated ids collide: %q", b1.ID())
	}
}

func TestRegistryGridFull(t *testing.T) {
	reg := newTestRegistry(t, menu.Grid(2, 2))

	for i := 0; i < 4; i++ {
		if err := reg.Add(menu.NewButton("w", menu.Action{})); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	err := reg.Add(menu.NewButton("overflow", menu.Action{}))
	if !errors.Is(err, menu.ErrGridFull) {
		t.Errorf("expected ErrGridFull, got %v", err)
	}
}

func TestRegistrySingleColumnUnbounded(t *testing.T) {
	reg := newTestRegistry(t)
	for i := 0; i < 50; i++ {
		if err := reg.Add(menu.NewButton("w", menu.Action{})); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if reg.Rows() != 50 {
		t.Errorf("Rows = %d, want live widget count 50", reg.Rows())
	}
}

func TestRegistryColumnMajorFill(t *testing.T) {
	// 2x3 grid, five widgets: 0,1,2 fill column 0; 3,4 start column 1.
	reg := newTestRegistry(t, menu.Grid(2, 3))
	for i := 0; i < 5; i++ {
		if err := reg.Add(menu.NewButton("w", menu.Action{})); err != nil {
			t.Fatal(err)
		}
	}

	r0 := reg.WidgetRect(0)
	r1 := reg.WidgetRect(1)
	r3 := reg.WidgetRect(3)

	if r1.Y <= r0.Y {
		t.Errorf("widget 1 should stack below widget 0: %v vs %v", r1.Y, r0.Y)
	}
	if r3.X <= r0.X {
		t.Errorf("widget 3 should sit in the second column: %v vs %v", r3.X, r0.X)
	}
	if r3.Y != r0.Y {
		t.Errorf("widget 3 should start at the column top: %v vs %v", r3.Y, r0.Y)
	}
}

func TestRegistryColumnWeights(t *testing.T) {
	reg := newTestRegistry(t, menu.Grid(2, 2), menu.ColumnWeights(2, 1))

	w0 := menu.NewButton("left", menu.Action{}, menu.WithWidth(1000), menu.WithAlign(menu.AlignLeft))
	w2 := menu.NewButton("right", menu.Action{}, menu.WithWidth(1000), menu.WithAlign(menu.AlignLeft))
	reg.Add(w0)
	reg.Add(menu.NewButton("pad", menu.Action{}))
	reg.Add(w2)

	// Widths clamp to the weighted column widths: 200 and 100 of 300.
	if got := reg.WidgetRect(0).W; got != 200 {
		t.Errorf("column 0 width = %v, want 200", got)
	}
	if got := reg.WidgetRect(2).W; got != 100 {
		t.Errorf("column 1 width = %v, want 100", got)
	}
	if got := reg.WidgetRect(2).X; got != 200 {
		t.Errorf("column 1 offset = %v, want 200", got)
	}
}

func TestRegistryRemoveReindexes(t *testing.T) {
	reg := newTestRegistry(t)
	for _, id := range []string{"a", "b", "c"} {
		reg.Add(menu.NewButton(id, menu.Action{}, menu.WithID(id)))
	}

	if !reg.Remove("b") {
		t.Fatal("Remove should report success")
	}
	if reg.Remove("b") {
		t.Error("second Remove should report failure")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	if got := reg.IndexOf("c"); got != 1 {
		t.Errorf("IndexOf(c) = %d after removal, want 1", got)
	}
	if got := reg.IndexOf("b"); got != -1 {
		t.Errorf("IndexOf(b) = %d, want -1", got)
	}
}

func TestRegistryContentSizeGrows(t *testing.T) {
	reg := newTestRegistry(t)
	before := reg.ContentSize()
	reg.Add(menu.NewButton("w", menu.Action{}))
	reg.Add(menu.NewButton("w2", menu.Action{}))
	after := reg.ContentSize()
	if after.Y <= before.Y {
		t.Errorf("ContentSize.Y should grow: %v -> %v", before.Y, after.Y)
	}
}
