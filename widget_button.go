package menu

// Button is a selectable widget that applies an Action when triggered.
type Button struct {
	BaseWidget
	label  string
	action Action
	width  float32
}

// NewButton creates a button with the given label and action.
//
// Usage:
//
//	play := menu.NewButton("Play", menu.CallbackAction(startGame))
//	quit := menu.NewButton("Quit", menu.ExitAction())
func NewButton(label string, action Action, opts ...Option) *Button {
	o := applyOptions(opts)
	b := &Button{label: label, action: action}
	b.applyOpts(o)
	b.width = GetOpt(o, OptWidth)
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) { b.label = label }

// Action returns the button's resolved action variant.
func (b *Button) Action() Action { return b.action }

func (b *Button) Measure(th *Theme) Vec2 {
	size := th.Font.Measure(b.label)
	w := size.X + 2*th.Padding
	if b.width > 0 {
		w = b.width
	}
	return Vec2{X: w, Y: size.Y + 2*SpaceSM}
}

func (b *Button) Render(dl *DrawList, th *Theme, origin Vec2) {
	bg := th.ButtonColor
	fg := th.TextColor
	if b.selected {
		bg = th.SelectionBgColor
		fg = th.SelectedTextColor
	}
	dl.AddRect(origin.X, origin.Y, b.rect.W, b.rect.H, bg)

	text := th.Font.Measure(b.label)
	tx := origin.X + (b.rect.W-text.X)/2
	ty := origin.Y + (b.rect.H-text.Y)/2
	dl.AddText(th.Font, tx, ty, b.label, fg)
}

func (b *Button) Activate() Action { return b.action }
