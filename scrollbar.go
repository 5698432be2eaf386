package menu

import (
	"errors"
	"math"
)

// Configuration errors, rejected at construction time.
var (
	ErrTrackLength = errors.New("menu: track length must be positive")
	ErrValueDomain = errors.New("menu: value domain must be increasing")
)

// Orientation is the axis a scrollbar travels along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ScrollBar maps a slider position inside a fixed-length track to a
// numeric value within [min, max]. Ratio math runs in float64; Value
// rounds only at the read boundary.
//
// When the slider fills the whole track the drag range collapses to
// zero: the control becomes purely clamped and never moves.
type ScrollBar struct {
	orient    Orientation
	track     float32 // track length in pixels
	thickness float32
	minV      float64
	maxV      float64
	value     float64
	slider    float32 // slider length in pixels, floor 1

	pos      Vec2 // top-left of the track on screen
	dragging bool
	dragRef  float32 // pointer axis coordinate at drag start
	dragPos  float32 // slider position at drag start
	hovered  bool

	onChange func(value float64)
}

// NewScrollBar creates a scrollbar with the given track length and value
// domain. The slider initially fills the whole track; call
// SetSliderRatio once the viewport/content ratio is known.
func NewScrollBar(orient Orientation, track float32, minV, maxV float64) (*ScrollBar, error) {
	if track <= 0 {
		return nil, ErrTrackLength
	}
	if maxV <= minV {
		return nil, ErrValueDomain
	}
	return &ScrollBar{
		orient:    orient,
		track:     track,
		thickness: 12,
		minV:      minV,
		maxV:      maxV,
		value:     minV,
		slider:    track,
	}, nil
}

// SetOnChange registers a callback fired whenever the quantized value
// actually changes.
func (sb *ScrollBar) SetOnChange(fn func(value float64)) { sb.onChange = fn }

// SetPosition places the track's top-left corner on screen.
func (sb *ScrollBar) SetPosition(p Vec2) { sb.pos = p }

// SetThickness sets the bar thickness perpendicular to the track.
func (sb *ScrollBar) SetThickness(t float32) { sb.thickness = t }

// SetSliderRatio sizes the slider as a share of the track, typically
// viewport/content. The slider never shrinks below one pixel.
func (sb *ScrollBar) SetSliderRatio(ratio float64) {
	sb.slider = clampf(maxf(1, sb.track*float32(ratio)), 1, sb.track)
}

// Value returns the current value, rounded at the read boundary.
func (sb *ScrollBar) Value() float64 {
	return math.Round(sb.value)
}

// Min returns the domain lower bound.
func (sb *ScrollBar) Min() float64 { return sb.minV }

// Max returns the domain upper bound.
func (sb *ScrollBar) Max() float64 { return sb.maxV }

// Orientation returns the bar's travel axis.
func (sb *ScrollBar) Orientation() Orientation { return sb.orient }

// Dragging reports whether a slider drag is in progress.
func (sb *ScrollBar) Dragging() bool { return sb.dragging }

// dragRange is the pixel distance the slider can travel.
func (sb *ScrollBar) dragRange() float32 {
	return sb.track - sb.slider
}

// SliderPos returns the slider's pixel offset from the track start.
// It is a deterministic, reversible function of the value.
func (sb *ScrollBar) SliderPos() float32 {
	r := sb.dragRange()
	if r <= 0 {
		return 0
	}
	return float32((sb.value - sb.minV) / (sb.maxV - sb.minV) * float64(r))
}

// SetValue clamps v into the domain and fires the change notification
// if the quantized value moved.
func (sb *ScrollBar) SetValue(v float64) {
	prev := math.Round(sb.value)
	if v < sb.minV {
		v = sb.minV
	}
	if v > sb.maxV {
		v = sb.maxV
	}
	sb.value = v
	if rounded := math.Round(sb.value); rounded != prev && sb.onChange != nil {
		sb.onChange(rounded)
	}
}

// setSliderPos moves the slider to a pixel offset and derives the value.
func (sb *ScrollBar) setSliderPos(px float32) {
	r := sb.dragRange()
	if r <= 0 {
		return
	}
	px = clampf(px, 0, r)
	sb.SetValue(sb.minV + float64(px)/float64(r)*(sb.maxV-sb.minV))
}

// Drag moves the slider by a pixel delta, clamped to the track.
// Returns true if the quantized value changed. In the degenerate
// track==slider case there is no motion and Drag reports false.
func (sb *ScrollBar) Drag(deltaPx float32) bool {
	if sb.dragRange() <= 0 {
		return false
	}
	before := sb.Value()
	sb.setSliderPos(sb.SliderPos() + deltaPx)
	return sb.Value() != before
}

// Page returns the value delta of one page scroll: the value span the
// slider itself represents, not the full track.
func (sb *ScrollBar) Page() float64 {
	r := sb.dragRange()
	if r <= 0 {
		return sb.maxV - sb.minV
	}
	return (sb.maxV - sb.minV) * float64(sb.slider) / float64(r)
}

// TrackClick handles a click at p. A click on the track outside the
// slider moves the value by one page toward the click. Returns true if
// the click landed on the track.
func (sb *ScrollBar) TrackClick(p Vec2) bool {
	if !sb.Rect().Contains(p) {
		return false
	}
	var rel float32
	if sb.orient == Horizontal {
		rel = p.X - sb.pos.X
	} else {
		rel = p.Y - sb.pos.Y
	}
	sp := sb.SliderPos()
	switch {
	case rel < sp:
		sb.SetValue(sb.value - sb.Page())
	case rel > sp+sb.slider:
		sb.SetValue(sb.value + sb.Page())
	}
	return true
}

// Rect returns the track rectangle on screen.
func (sb *ScrollBar) Rect() Rect {
	if sb.orient == Horizontal {
		return Rect{X: sb.pos.X, Y: sb.pos.Y, W: sb.track, H: sb.thickness}
	}
	return Rect{X: sb.pos.X, Y: sb.pos.Y, W: sb.thickness, H: sb.track}
}

// sliderRect returns the slider rectangle on screen.
func (sb *ScrollBar) sliderRect() Rect {
	sp := sb.SliderPos()
	if sb.orient == Horizontal {
		return Rect{X: sb.pos.X + sp, Y: sb.pos.Y, W: sb.slider, H: sb.thickness}
	}
	return Rect{X: sb.pos.X, Y: sb.pos.Y + sp, W: sb.thickness, H: sb.slider}
}

// HandleEvent offers a pointer event to the bar.
// Returns true if the event was consumed.
func (sb *ScrollBar) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventPointerDown, EventTouchDown:
		if ev.Kind == EventPointerDown && ev.Button != MouseButtonLeft {
			return false
		}
		if sb.sliderRect().Contains(ev.Pos) {
			sb.dragging = true
			if sb.orient == Horizontal {
				sb.dragRef = ev.Pos.X
			} else {
				sb.dragRef = ev.Pos.Y
			}
			sb.dragPos = sb.SliderPos()
			return true
		}
		return sb.TrackClick(ev.Pos)

	case EventPointerMove, EventTouchMove:
		sb.hovered = sb.sliderRect().Contains(ev.Pos)
		if !sb.dragging {
			return false
		}
		var axis float32
		if sb.orient == Horizontal {
			axis = ev.Pos.X
		} else {
			axis = ev.Pos.Y
		}
		sb.setSliderPos(sb.dragPos + (axis - sb.dragRef))
		return true

	case EventPointerUp, EventTouchUp:
		if sb.dragging {
			sb.dragging = false
			return true
		}
	}
	return false
}

// Draw renders the track and slider.
func (sb *ScrollBar) Draw(dl *DrawList, th *Theme) {
	r := sb.Rect()
	dl.AddRect(r.X, r.Y, r.W, r.H, th.ScrollbarBgColor)

	s := sb.sliderRect()
	color := th.ScrollbarSliderColor
	if sb.dragging || sb.hovered {
		color = th.ScrollbarSliderHovered
	}
	dl.AddRect(s.X, s.Y, s.W, s.H, color)
}
