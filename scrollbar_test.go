package menu_test

import (
	"errors"
	"testing"

	"github.com/go-overlay/menu"
)

func TestScrollBarConstructionErrors(t *testing.T) {
	if _, err := menu.NewScrollBar(menu.Horizontal, 0, 0, 10); !errors.Is(err, menu.ErrTrackLength) {
		t.Errorf("expected ErrTrackLength, got %v", err)
	}
	if _, err := menu.NewScrollBar(menu.Horizontal, 100, 5, 5); !errors.Is(err, menu.ErrValueDomain) {
		t.Errorf("expected ErrValueDomain, got %v", err)
	}
	if _, err := menu.NewScrollBar(menu.Horizontal, 100, 10, 0); !errors.Is(err, menu.ErrValueDomain) {
		t.Errorf("expected ErrValueDomain, got %v", err)
	}
}

func TestScrollBarValueSliderMapping(t *testing.T) {
	sb, err := menu.NewScrollBar(menu.Vertical, 100, 0, 50)
	if err != nil {
		t.Fatalf("NewScrollBar: %v", err)
	}
	sb.SetSliderRatio(0.5) // slider 50px, drag range 50px

	sb.SetValue(25)
	if got := sb.SliderPos(); got != 25 {
		t.Errorf("SliderPos = %v, want 25", got)
	}
	if got := sb.Value(); got != 25 {
		t.Errorf("Value = %v, want 25", got)
	}

	// Value clamps into the domain.
	sb.SetValue(999)
	if got := sb.Value(); got != 50 {
		t.Errorf("Value after overshoot = %v, want 50", got)
	}
	sb.SetValue(-10)
	if got := sb.Value(); got != 0 {
		t.Errorf("Value after undershoot = %v, want 0", got)
	}
}

func TestScrollBarDrag(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Horizontal, 100, 0, 100)
	sb.SetSliderRatio(0.5)

	if !sb.Drag(10) {
		t.Error("Drag(10) should report a value change")
	}
	if got := sb.Value(); got != 20 {
		t.Errorf("Value after drag = %v, want 20", got)
	}

	// Dragging past the end clamps.
	sb.Drag(1000)
	if got := sb.Value(); got != 100 {
		t.Errorf("Value after clamped drag = %v, want 100", got)
	}
}

func TestScrollBarTouchDrag(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Vertical, 100, 0, 100)
	sb.SetSliderRatio(0.5)
	sb.SetPosition(menu.Vec2{X: 0, Y: 0})

	if !sb.HandleEvent(menu.TouchDownEvent(menu.Vec2{X: 5, Y: 10})) {
		t.Fatal("touch on slider should start a drag")
	}
	sb.HandleEvent(menu.TouchMoveEvent(menu.Vec2{X: 5, Y: 30}, menu.Vec2{Y: 20}))
	if got := sb.Value(); got != 40 {
		t.Errorf("Value after 20px touch drag = %v, want 40", got)
	}
	sb.HandleEvent(menu.TouchUpEvent(menu.Vec2{X: 5, Y: 30}))
	if sb.Dragging() {
		t.Error("Dragging should stop on touch release")
	}
}

func TestScrollBarDegenerate(t *testing.T) {
	// Slider fills the track: no drag range, the bar never moves.
	sb, _ := menu.NewScrollBar(menu.Horizontal, 100, 0, 100)
	sb.SetSliderRatio(1.0)

	if sb.Drag(50) {
		t.Error("degenerate bar should report no change")
	}
	if got := sb.Value(); got != 0 {
		t.Errorf("degenerate bar Value = %v, want 0", got)
	}
	if got := sb.SliderPos(); got != 0 {
		t.Errorf("degenerate bar SliderPos = %v, want 0", got)
	}
}

func TestScrollBarPage(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Vertical, 100, 0, 50)
	sb.SetSliderRatio(0.5) // slider 50, drag range 50
	if got := sb.Page(); got != 50 {
		t.Errorf("Page = %v, want 50", got)
	}
}

func TestScrollBarTrackClick(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Horizontal, 100, 0, 50)
	sb.SetSliderRatio(0.5)

	// Click past the slider pages forward.
	if !sb.TrackClick(menu.Vec2{X: 75, Y: 5}) {
		t.Fatal("click on track should be consumed")
	}
	if got := sb.Value(); got != 50 {
		t.Errorf("Value after page forward = %v, want 50", got)
	}

	// Click before the slider pages back.
	sb.TrackClick(menu.Vec2{X: 10, Y: 5})
	if got := sb.Value(); got != 0 {
		t.Errorf("Value after page back = %v, want 0", got)
	}

	// Click outside the track is ignored.
	if sb.TrackClick(menu.Vec2{X: 200, Y: 5}) {
		t.Error("click outside the track should not be consumed")
	}
}

func TestScrollBarOnChange(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Horizontal, 100, 0, 100)
	sb.SetSliderRatio(0.5)

	var fired int
	var last float64
	sb.SetOnChange(func(v float64) {
		fired++
		last = v
	})

	sb.SetValue(10.4)
	if fired != 1 || last != 10 {
		t.Errorf("fired=%d last=%v, want 1/10", fired, last)
	}

	// Same quantized value: no notification.
	sb.SetValue(10.3)
	if fired != 1 {
		t.Errorf("fired=%d after sub-unit move, want 1", fired)
	}
}

func TestScrollBarDragEvents(t *testing.T) {
	sb, _ := menu.NewScrollBar(menu.Vertical, 100, 0, 100)
	sb.SetSliderRatio(0.5)
	sb.SetPosition(menu.Vec2{X: 0, Y: 0})

	down := menu.PointerDownEvent(menu.MouseButtonLeft, menu.Vec2{X: 5, Y: 10})
	if !sb.HandleEvent(down) {
		t.Fatal("press on slider should start a drag")
	}
	if !sb.Dragging() {
		t.Fatal("Dragging should report true after press")
	}

	move := menu.PointerMoveEvent(menu.Vec2{X: 5, Y: 30}, menu.Vec2{Y: 20})
	sb.HandleEvent(move)
	if got := sb.Value(); got != 40 {
		t.Errorf("Value after 20px drag = %v, want 40", got)
	}

	up := menu.PointerUpEvent(menu.MouseButtonLeft, menu.Vec2{X: 5, Y: 30})
	sb.HandleEvent(up)
	if sb.Dragging() {
		t.Error("Dragging should stop on release")
	}
}
