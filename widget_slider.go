package menu

import (
	"fmt"
	"math"
)

// Slider adjusts a numeric value inside [min, max] with the left/right
// keys or the d-pad. Values move in fixed steps so repeated presses
// land on a predictable grid.
type Slider struct {
	BaseWidget
	label    string
	value    float64
	minV     float64
	maxV     float64
	step     float64
	width    float32
	onChange func(value float64)
	onApply  func(value float64)
}

// NewSlider creates a slider over [minV, maxV] moving in step increments.
// A step of zero or less defaults to 1/100 of the range.
func NewSlider(label string, minV, maxV, step float64, opts ...Option) *Slider {
	if maxV < minV {
		minV, maxV = maxV, minV
	}
	if step <= 0 {
		step = (maxV - minV) / 100
	}
	o := applyOptions(opts)
	s := &Slider{
		label: label,
		value: minV,
		minV:  minV,
		maxV:  maxV,
		step:  step,
	}
	s.applyOpts(o)
	s.width = GetOpt(o, OptWidth)
	return s
}

// OnChange registers a callback fired whenever the value moves.
func (s *Slider) OnChange(fn func(value float64)) *Slider {
	s.onChange = fn
	return s
}

// OnApply registers a callback fired when the slider is activated.
func (s *Slider) OnApply(fn func(value float64)) *Slider {
	s.onApply = fn
	return s
}

// Get returns the current value.
func (s *Slider) Get() float64 { return s.value }

// Set snaps v to the step grid, clamps it, and fires the change
// notification if the value moved.
func (s *Slider) Set(v float64) {
	v = s.minV + math.Round((v-s.minV)/s.step)*s.step
	if v < s.minV {
		v = s.minV
	}
	if v > s.maxV {
		v = s.maxV
	}
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *Slider) Value() (any, bool) { return s.value, true }

func (s *Slider) Handle(ev Event) bool {
	left := (ev.Kind == EventKeyDown && ev.Key == KeyLeft) ||
		(ev.Kind == EventDPad && ev.Dir == DirLeft)
	right := (ev.Kind == EventKeyDown && ev.Key == KeyRight) ||
		(ev.Kind == EventDPad && ev.Dir == DirRight)

	switch {
	case left:
		s.Set(s.value - s.step)
		return true
	case right:
		s.Set(s.value + s.step)
		return true
	}
	return false
}

func (s *Slider) Activate() Action {
	if s.onApply == nil {
		return Action{}
	}
	v := s.value
	return CallbackAction(func() { s.onApply(v) })
}

// display formats the label and value, e.g. "Volume: 0.75".
func (s *Slider) display() string {
	text := fmt.Sprintf("%.4g", s.value)
	if s.label == "" {
		return text
	}
	return s.label + ": " + text
}

func (s *Slider) Measure(th *Theme) Vec2 {
	labelW := float32(0)
	if s.label != "" {
		labelW = th.Font.Measure(s.display()).X
	}
	trackW := s.width
	if trackW <= 0 {
		trackW = 150
	}
	return Vec2{X: labelW + trackW + 2*th.Padding, Y: th.Font.LineHeight() + 2*SpaceSM}
}

func (s *Slider) Render(dl *DrawList, th *Theme, origin Vec2) {
	fg := th.TextColor
	if s.selected {
		dl.AddRect(origin.X, origin.Y, s.rect.W, s.rect.H, th.SelectionBgColor)
		fg = th.SelectedTextColor
	}

	x := origin.X + th.Padding
	textY := origin.Y + (s.rect.H-th.Font.LineHeight())/2
	text := s.display()
	dl.AddText(th.Font, x, textY, text, fg)
	x += th.Font.Measure(text).X + SpaceMD

	trackW := s.rect.W - (x - origin.X) - th.Padding
	if trackW <= 0 {
		return
	}
	trackH := s.rect.H / 3
	trackY := origin.Y + (s.rect.H-trackH)/2
	dl.AddRect(x, trackY, trackW, trackH, th.ScrollbarBgColor)

	// Grab position follows the value fraction.
	frac := float32(0)
	if s.maxV > s.minV {
		frac = float32((s.value - s.minV) / (s.maxV - s.minV))
	}
	const grabW = 8
	gx := x + frac*(trackW-grabW)
	grabColor := th.ScrollbarSliderColor
	if s.selected {
		grabColor = th.ScrollbarSliderHovered
	}
	dl.AddRect(gx, origin.Y+SpaceXS, grabW, s.rect.H-2*SpaceXS, grabColor)
}
