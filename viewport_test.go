package menu_test

import (
	"testing"

	"github.com/go-overlay/menu"
)

func TestViewportNoOverflowNoBars(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 50})

	for e := menu.EdgeNorth; e <= menu.EdgeWest; e++ {
		if vp.Bar(e) != nil {
			t.Errorf("edge %d should have no bar", e)
		}
	}
	if off := vp.Offset(); off != (menu.Vec2{}) {
		t.Errorf("Offset = %v, want zero", off)
	}
	if vis := vp.VisibleRect(); vis != vp.Rect() {
		t.Errorf("VisibleRect = %v, want full rect", vis)
	}
}

func TestViewportVerticalOverflow(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 200})

	if vp.Bar(menu.EdgeEast) == nil {
		t.Fatal("east edge should carry the vertical bar")
	}
	if vp.Bar(menu.EdgeSouth) != nil {
		t.Error("south edge should have no bar without horizontal overflow")
	}

	vis := vp.VisibleRect()
	if vis.W >= 100 {
		t.Errorf("visible width %v should shrink by the bar thickness", vis.W)
	}
}

func TestViewportBarTeardownResetsOffset(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 200})
	vp.SetOffset(menu.Vec2{Y: 60})

	if off := vp.Offset(); off.Y != 60 {
		t.Fatalf("Offset.Y = %v, want 60", off.Y)
	}

	// Content shrinks back inside the viewport: the bar disappears and
	// the axis snaps to zero.
	vp.SetContent(menu.Vec2{X: 80, Y: 50})
	if vp.Bar(menu.EdgeEast) != nil {
		t.Error("bar should be torn down once the axis fits")
	}
	if off := vp.Offset(); off.Y != 0 {
		t.Errorf("Offset.Y = %v after teardown, want 0", off.Y)
	}
}

func TestViewportCoordinateRoundTrip(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 10, Y: 20, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 300})
	vp.SetOffset(menu.Vec2{Y: 42})

	points := []menu.Vec2{
		{X: 0, Y: 0},
		{X: 15, Y: 120},
		{X: 79, Y: 299},
	}
	for _, p := range points {
		back := vp.ToContent(vp.ToScreen(p))
		if back != p {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestViewportScrollIntoView(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 300})

	// Below the fold: scroll down just enough.
	vp.ScrollIntoView(menu.Rect{X: 0, Y: 150, W: 10, H: 20})
	if off := vp.Offset(); off.Y != 70 {
		t.Errorf("Offset.Y = %v, want 70", off.Y)
	}

	// Already visible: no motion.
	vp.ScrollIntoView(menu.Rect{X: 0, Y: 100, W: 10, H: 20})
	if off := vp.Offset(); off.Y != 70 {
		t.Errorf("Offset.Y = %v after no-op scroll, want 70", off.Y)
	}

	// Above the fold: scroll back up to the start edge.
	vp.ScrollIntoView(menu.Rect{X: 0, Y: 10, W: 10, H: 20})
	if off := vp.Offset(); off.Y != 10 {
		t.Errorf("Offset.Y = %v, want 10", off.Y)
	}
}

func TestViewportScrollIntoViewOversizeRect(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 300})

	// Taller than the viewport, approached from above: the start edge
	// is nearer and gets aligned.
	vp.ScrollIntoView(menu.Rect{X: 0, Y: 20, W: 10, H: 150})
	if off := vp.Offset(); off.Y != 20 {
		t.Errorf("Offset.Y = %v, want 20 (start edge aligned)", off.Y)
	}

	// The same rect approached from far below: now the end edge is
	// nearer, so the viewport bottom lands on the rect bottom.
	vp.SetOffset(menu.Vec2{Y: 200})
	vp.ScrollIntoView(menu.Rect{X: 0, Y: 20, W: 10, H: 150})
	if off := vp.Offset(); off.Y != 70 {
		t.Errorf("Offset.Y = %v, want 70 (end edge aligned)", off.Y)
	}
}

func TestViewportWheelScrolls(t *testing.T) {
	vp := menu.NewViewport(menu.Rect{X: 0, Y: 0, W: 100, H: 100})
	vp.SetContent(menu.Vec2{X: 80, Y: 300})

	ev := menu.WheelEvent(menu.Vec2{X: 50, Y: 50}, menu.Vec2{Y: -1})
	if !vp.HandleEvent(ev) {
		t.Fatal("wheel over the viewport should be consumed")
	}
	if off := vp.Offset(); off.Y != 30 {
		t.Errorf("Offset.Y = %v after one notch, want 30", off.Y)
	}

	// Wheel outside the viewport is ignored.
	outside := menu.WheelEvent(menu.Vec2{X: 500, Y: 500}, menu.Vec2{Y: -1})
	if vp.HandleEvent(outside) {
		t.Error("wheel outside the viewport should not be consumed")
	}
}
