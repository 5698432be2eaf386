package menu

// Selector cycles through a fixed list of choices with the left/right
// keys (or d-pad). It holds the currently chosen string as its value.
type Selector struct {
	BaseWidget
	label    string
	items    []string
	index    int
	onChange func(index int, value string)
	onApply  func(index int, value string)
}

// NewSelector creates a selector over the given items.
// The label is drawn before the cycling value.
func NewSelector(label string, items []string, opts ...Option) *Selector {
	o := applyOptions(opts)
	s := &Selector{label: label, items: items}
	s.applyOpts(o)
	return s
}

// OnChange registers a callback fired whenever the choice cycles.
func (s *Selector) OnChange(fn func(index int, value string)) *Selector {
	s.onChange = fn
	return s
}

// OnApply registers a callback fired when the selector is activated.
func (s *Selector) OnApply(fn func(index int, value string)) *Selector {
	s.onApply = fn
	return s
}

// Index returns the current choice index.
func (s *Selector) Index() int { return s.index }

// SetIndex jumps to the given choice, wrapping out-of-range values.
func (s *Selector) SetIndex(i int) {
	if len(s.items) == 0 {
		return
	}
	s.index = ((i % len(s.items)) + len(s.items)) % len(s.items)
}

func (s *Selector) Value() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[s.index], true
}

// cycle advances the choice by delta with wrap-around.
func (s *Selector) cycle(delta int) {
	if len(s.items) == 0 {
		return
	}
	s.SetIndex(s.index + delta)
	if s.onChange != nil {
		s.onChange(s.index, s.items[s.index])
	}
}

func (s *Selector) Handle(ev Event) bool {
	left := (ev.Kind == EventKeyDown && ev.Key == KeyLeft) ||
		(ev.Kind == EventDPad && ev.Dir == DirLeft)
	right := (ev.Kind == EventKeyDown && ev.Key == KeyRight) ||
		(ev.Kind == EventDPad && ev.Dir == DirRight)

	switch {
	case left:
		s.cycle(-1)
		return true
	case right:
		s.cycle(1)
		return true
	}
	return false
}

func (s *Selector) Activate() Action {
	if s.onApply == nil || len(s.items) == 0 {
		return Action{}
	}
	idx, val := s.index, s.items[s.index]
	return CallbackAction(func() { s.onApply(idx, val) })
}

// display returns the rendered text, e.g. "Difficulty: < Hard >".
func (s *Selector) display() string {
	value := ""
	if len(s.items) > 0 {
		value = s.items[s.index]
	}
	if s.label == "" {
		return "< " + value + " >"
	}
	return s.label + ": < " + value + " >"
}

func (s *Selector) Measure(th *Theme) Vec2 {
	// Measure against the widest choice so the widget doesn't resize
	// while cycling.
	widest := ""
	for _, it := range s.items {
		if len(it) > len(widest) {
			widest = it
		}
	}
	text := s.label + ": < " + widest + " >"
	size := th.Font.Measure(text)
	return Vec2{X: size.X + 2*th.Padding, Y: size.Y + 2*SpaceSM}
}

func (s *Selector) Render(dl *DrawList, th *Theme, origin Vec2) {
	fg := th.TextColor
	if s.selected {
		dl.AddRect(origin.X, origin.Y, s.rect.W, s.rect.H, th.SelectionBgColor)
		fg = th.SelectedTextColor
	}
	text := s.display()
	size := th.Font.Measure(text)
	tx := origin.X + (s.rect.W-size.X)/2
	ty := origin.Y + (s.rect.H-size.Y)/2
	dl.AddText(th.Font, tx, ty, text, fg)
}
