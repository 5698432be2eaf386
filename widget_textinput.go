package menu

// TextInput is a single-line editable text field. While focused it
// consumes typed characters and editing keys; its value is the current
// string.
type TextInput struct {
	BaseWidget
	label     string
	text      []rune
	cursor    int // rune index of the insertion point
	maxLength int
	width     float32
	onChange  func(string)
	onApply   func(string)
}

// NewTextInput creates an empty text field with the given label.
func NewTextInput(label string, opts ...Option) *TextInput {
	o := applyOptions(opts)
	t := &TextInput{label: label}
	t.applyOpts(o)
	t.maxLength = GetOpt(o, OptMaxLength)
	t.width = GetOpt(o, OptWidth)
	return t
}

// OnChange registers a callback fired on every edit.
func (t *TextInput) OnChange(fn func(string)) *TextInput {
	t.onChange = fn
	return t
}

// OnApply registers a callback fired when the field is activated.
func (t *TextInput) OnApply(fn func(string)) *TextInput {
	t.onApply = fn
	return t
}

// Text returns the current contents.
func (t *TextInput) Text() string { return string(t.text) }

// SetText replaces the contents and moves the cursor to the end.
func (t *TextInput) SetText(s string) {
	t.text = []rune(s)
	if t.maxLength > 0 && len(t.text) > t.maxLength {
		t.text = t.text[:t.maxLength]
	}
	t.cursor = len(t.text)
}

func (t *TextInput) Value() (any, bool) { return string(t.text), true }

func (t *TextInput) notify() {
	if t.onChange != nil {
		t.onChange(string(t.text))
	}
}

func (t *TextInput) Handle(ev Event) bool {
	switch ev.Kind {
	case EventChar:
		if ev.Ch < 32 {
			return false
		}
		if t.maxLength > 0 && len(t.text) >= t.maxLength {
			return true
		}
		t.text = append(t.text[:t.cursor], append([]rune{ev.Ch}, t.text[t.cursor:]...)...)
		t.cursor++
		t.notify()
		return true

	case EventKeyDown:
		switch ev.Key {
		case KeyBackspace:
			if t.cursor > 0 {
				t.text = append(t.text[:t.cursor-1], t.text[t.cursor:]...)
				t.cursor--
				t.notify()
			}
			return true
		case KeyDelete:
			if t.cursor < len(t.text) {
				t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
				t.notify()
			}
			return true
		case KeyLeft:
			if t.cursor > 0 {
				t.cursor--
			}
			return true
		case KeyRight:
			if t.cursor < len(t.text) {
				t.cursor++
			}
			return true
		case KeyHome:
			t.cursor = 0
			return true
		case KeyEnd:
			t.cursor = len(t.text)
			return true
		}
	}
	return false
}

func (t *TextInput) Activate() Action {
	if t.onApply == nil {
		return Action{}
	}
	value := string(t.text)
	return CallbackAction(func() { t.onApply(value) })
}

func (t *TextInput) Measure(th *Theme) Vec2 {
	labelW := float32(0)
	if t.label != "" {
		labelW = th.Font.Measure(t.label+": ").X
	}
	fieldW := t.width
	if fieldW <= 0 {
		fieldW = 150
	}
	return Vec2{X: labelW + fieldW + 2*th.Padding, Y: th.Font.LineHeight() + 2*SpaceSM}
}

func (t *TextInput) Render(dl *DrawList, th *Theme, origin Vec2) {
	fg := th.TextColor
	if t.selected {
		dl.AddRect(origin.X, origin.Y, t.rect.W, t.rect.H, th.SelectionBgColor)
		fg = th.SelectedTextColor
	}

	x := origin.X + th.Padding
	textY := origin.Y + (t.rect.H-th.Font.LineHeight())/2
	if t.label != "" {
		prefix := t.label + ": "
		dl.AddText(th.Font, x, textY, prefix, fg)
		x += th.Font.Measure(prefix).X
	}

	// Field background
	fieldW := t.rect.W - (x - origin.X) - th.Padding
	dl.AddRect(x, origin.Y+SpaceXS, fieldW, t.rect.H-2*SpaceXS, th.InputBgColor)
	dl.AddRectOutline(x, origin.Y+SpaceXS, fieldW, t.rect.H-2*SpaceXS, th.InputBorderColor, 1)

	content := string(t.text)
	dl.AddText(th.Font, x+SpaceSM, textY, content, fg)

	// Caret, only while focused
	if t.selected {
		caretX := x + SpaceSM + th.Font.Measure(string(t.text[:t.cursor])).X
		dl.AddRect(caretX, textY, 1, th.Font.LineHeight(), fg)
	}
}
