package menu

// Label is a static, non-selectable text widget.
// The selection cursor skips it permanently.
type Label struct {
	BaseWidget
	text  string
	color uint32 // 0 = theme text color
}

// NewLabel creates a static text widget.
func NewLabel(text string, opts ...Option) *Label {
	o := applyOptions(opts)
	l := &Label{text: text}
	l.applyOpts(o)
	return l
}

// NewColoredLabel creates a static text widget with an explicit color.
func NewColoredLabel(text string, color uint32, opts ...Option) *Label {
	l := NewLabel(text, opts...)
	l.color = color
	return l
}

// Text returns the label content.
func (l *Label) Text() string { return l.text }

// SetText replaces the label content.
func (l *Label) SetText(text string) { l.text = text }

func (l *Label) Selectable() bool { return false }

func (l *Label) Measure(th *Theme) Vec2 {
	size := th.Font.Measure(l.text)
	return Vec2{X: size.X, Y: size.Y + SpaceXS}
}

func (l *Label) Render(dl *DrawList, th *Theme, origin Vec2) {
	color := l.color
	if color == 0 {
		color = th.TextColor
	}
	dl.AddText(th.Font, origin.X, origin.Y, l.text, color)
}
