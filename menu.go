package menu

import (
	"errors"
	"fmt"
)

// ErrValueCollision is returned by CollectValues when two widgets in
// the collected tree share an id.
var ErrValueCollision = errors.New("menu: value id collision")

// MenuOption configures a Menu at construction time.
type MenuOption func(*Menu)

// WithTheme overrides the default theme.
func WithTheme(th *Theme) MenuOption {
	return func(m *Menu) { m.th = th }
}

// WithClosePolicy sets how the menu reacts to close requests.
func WithClosePolicy(p ClosePolicy) MenuOption {
	return func(m *Menu) { m.policy = p }
}

// WithOnClose registers the callback run by the CloseCallback policy.
// Returning true vetoes the close.
func WithOnClose(fn func() bool) MenuOption {
	return func(m *Menu) {
		m.policy = CloseCallback
		m.onClose = fn
	}
}

// WithCloseBox toggles the title-bar close box.
func WithCloseBox(show bool) MenuOption {
	return func(m *Menu) { m.closeBox = show }
}

// WithPosition places the menu's top-left corner on screen.
func WithPosition(x, y float32) MenuOption {
	return func(m *Menu) {
		m.rect.X = x
		m.rect.Y = y
	}
}

// WithColumns lays the menu's widgets out on a cols x rows grid
// instead of a single column.
func WithColumns(cols, rows int, weights ...float32) MenuOption {
	return func(m *Menu) {
		m.gridCols = cols
		m.gridRows = rows
		m.gridWeights = weights
	}
}

// Blocking marks the menu as input-blocking: while it is active the
// host should stop forwarding input to the world underneath.
func Blocking() MenuOption {
	return func(m *Menu) { m.blocking = true }
}

// Menu is one node of a menu tree: a titled frame owning a widget
// registry, a selection cursor, and a viewport that windows the
// registry's content. Menus are built once at configuration time and
// then navigated through a NavStack.
type Menu struct {
	id     string
	title  string
	th     *Theme
	rect   Rect
	reg    *Registry
	cursor *Cursor
	vp     *Viewport

	parent   *Menu
	children []*Menu

	policy   ClosePolicy
	onClose  func() bool
	closeBox bool
	blocking bool

	gridCols    int
	gridRows    int
	gridWeights []float32
}

// NewMenu creates a menu with the given id, title, and outer size.
func NewMenu(id, title string, w, h float32, opts ...MenuOption) *Menu {
	m := &Menu{
		id:       id,
		title:    title,
		rect:     Rect{W: w, H: h},
		policy:   CloseReset,
		closeBox: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.th == nil {
		m.th = DefaultTheme()
	}

	inner := m.innerRect()
	var regOpts []RegistryOption
	if m.gridCols > 1 {
		regOpts = append(regOpts, Grid(m.gridCols, m.gridRows))
		if len(m.gridWeights) > 0 {
			regOpts = append(regOpts, ColumnWeights(m.gridWeights...))
		}
	}
	m.reg = NewRegistry(m.th, inner.W, regOpts...)
	m.cursor = NewCursor(m.reg)
	m.vp = NewViewport(inner, ScrollbarThickness(m.th.ScrollbarSize))
	return m
}

// ID returns the menu id.
func (m *Menu) ID() string { return m.id }

// Title returns the title-bar text.
func (m *Menu) Title() string { return m.title }

// SetTitle changes the title-bar text.
func (m *Menu) SetTitle(t string) { m.title = t }

// Rect returns the menu's outer screen rectangle.
func (m *Menu) Rect() Rect { return m.rect }

// Blocking reports whether the menu blocks input to the host world.
func (m *Menu) Blocking() bool { return m.blocking }

// ClosePolicy returns the menu's close policy.
func (m *Menu) ClosePolicy() ClosePolicy { return m.policy }

// Registry returns the menu's widget registry.
func (m *Menu) Registry() *Registry { return m.reg }

// Cursor returns the menu's selection cursor.
func (m *Menu) Cursor() *Cursor { return m.cursor }

// Viewport returns the menu's content viewport.
func (m *Menu) Viewport() *Viewport { return m.vp }

// Parent returns the menu this one is linked under, or nil for a root.
func (m *Menu) Parent() *Menu { return m.parent }

// SetPosition moves the menu's top-left corner.
func (m *Menu) SetPosition(x, y float32) {
	m.rect.X = x
	m.rect.Y = y
	m.vp.SetRect(m.innerRect())
}

// innerRect is the outer rect minus title bar and border.
func (m *Menu) innerRect() Rect {
	b := m.th.BorderWidth
	return Rect{
		X: m.rect.X + b,
		Y: m.rect.Y + m.th.TitleHeight,
		W: m.rect.W - 2*b,
		H: m.rect.H - m.th.TitleHeight - b,
	}
}

// Add registers a widget. If the widget's action opens a submenu the
// link is checked for cycles before it is accepted.
func (m *Menu) Add(w Widget) error {
	if w == nil {
		return ErrNilWidget
	}
	act := w.Activate()
	if act.Kind == ActionOpenMenu && act.Target != nil {
		if err := checkAcyclic(m, act.Target); err != nil {
			return fmt.Errorf("%w: %q under %q", err, act.Target.id, m.id)
		}
		act.Target.parent = m
		m.children = append(m.children, act.Target)
	}
	if err := m.reg.Add(w); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// MustAdd is Add for static menu construction; it panics on error.
func (m *Menu) MustAdd(w Widget) {
	if err := m.Add(w); err != nil {
		panic(err)
	}
}

// Remove deletes the widget with the given id and relayouts.
func (m *Menu) Remove(id string) bool {
	i := m.reg.IndexOf(id)
	if i < 0 {
		return false
	}
	if m.cursor.Index() == i {
		m.cursor.Clear()
	}
	m.reg.Remove(id)
	m.refresh()
	if m.cursor.Index() > i {
		m.cursor.Select(m.cursor.Index() - 1)
	}
	return true
}

// AddButton appends a button widget.
func (m *Menu) AddButton(label string, action Action, opts ...Option) *Button {
	b := NewButton(label, action, opts...)
	m.MustAdd(b)
	return b
}

// AddLabel appends a non-selectable text widget.
func (m *Menu) AddLabel(text string, opts ...Option) *Label {
	l := NewLabel(text, opts...)
	m.MustAdd(l)
	return l
}

// AddSelector appends a cycling value selector.
func (m *Menu) AddSelector(label string, items []string, opts ...Option) *Selector {
	s := NewSelector(label, items, opts...)
	m.MustAdd(s)
	return s
}

// AddSlider appends a numeric slider.
func (m *Menu) AddSlider(label string, minV, maxV, step float64, opts ...Option) *Slider {
	s := NewSlider(label, minV, maxV, step, opts...)
	m.MustAdd(s)
	return s
}

// AddTextInput appends a single-line text field.
func (m *Menu) AddTextInput(label string, opts ...Option) *TextInput {
	t := NewTextInput(label, opts...)
	m.MustAdd(t)
	return t
}

// AddSubmenu appends a button that opens child when triggered.
func (m *Menu) AddSubmenu(label string, child *Menu, opts ...Option) *Button {
	return m.AddButton(label, OpenMenuAction(child), opts...)
}

// refresh propagates the registry's laid-out size to the viewport so
// scrollbars appear and disappear as content overflows.
func (m *Menu) refresh() {
	m.vp.SetContent(m.reg.ContentSize())
}

// closeBoxRect is the title-bar close box, right-aligned.
func (m *Menu) closeBoxRect() Rect {
	side := m.th.TitleHeight - 2*SpaceSM
	return Rect{
		X: m.rect.X + m.rect.W - side - SpaceSM,
		Y: m.rect.Y + SpaceSM,
		W: side,
		H: side,
	}
}

// hitCloseBox reports whether p lands on the visible close box.
func (m *Menu) hitCloseBox(p Vec2) bool {
	return m.closeBox && m.closeBoxRect().Contains(p)
}

// Draw renders the menu frame, title bar, and widgets into dl.
// Widget content is clipped to the viewport; scrollbars draw on top.
func (m *Menu) Draw(dl *DrawList) {
	th := m.th
	r := m.rect

	dl.AddRect(r.X, r.Y, r.W, r.H, th.BackgroundColor)
	dl.AddRect(r.X, r.Y, r.W, th.TitleHeight, th.TitleBgColor)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, th.BorderColor, th.BorderWidth)

	if th.Font != nil {
		tw := th.Font.Measure(m.title)
		tx := r.X + (r.W-tw.X)/2
		ty := r.Y + (th.TitleHeight-th.Font.LineHeight())/2
		dl.AddText(th.Font, tx, ty, m.title, th.TitleTextColor)
	}

	if m.closeBox {
		cb := m.closeBoxRect()
		dl.AddRect(cb.X, cb.Y, cb.W, cb.H, th.CloseBoxColor)
		inset := cb.W / 4
		dl.AddLine(cb.X+inset, cb.Y+inset, cb.X+cb.W-inset, cb.Y+cb.H-inset, th.TitleTextColor, 1)
		dl.AddLine(cb.X+inset, cb.Y+cb.H-inset, cb.X+cb.W-inset, cb.Y+inset, th.TitleTextColor, 1)
	}

	m.vp.BeginDraw(dl)
	m.reg.ensureLayout()
	for i := 0; i < m.reg.Len(); i++ {
		w := m.reg.At(i)
		wr := w.Rect()
		origin := m.vp.ToScreen(Vec2{X: wr.X, Y: wr.Y})
		w.Render(dl, th, origin)
	}
	m.vp.EndDraw(dl)

	m.vp.DrawBars(dl, th)
}

// CollectValues gathers the values of every value-bearing widget in
// this menu, keyed by widget id. With recursive set, linked submenus
// contribute too; an id appearing twice anywhere in the collected tree
// is ErrValueCollision.
func (m *Menu) CollectValues(recursive bool) (map[string]any, error) {
	out := make(map[string]any)
	if err := m.collectInto(out, recursive); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Menu) collectInto(out map[string]any, recursive bool) error {
	for i := 0; i < m.reg.Len(); i++ {
		w := m.reg.At(i)
		v, ok := w.Value()
		if !ok {
			continue
		}
		if _, dup := out[w.ID()]; dup {
			return fmt.Errorf("%w: %q", ErrValueCollision, w.ID())
		}
		out[w.ID()] = v
	}
	if recursive {
		for _, child := range m.children {
			if err := child.collectInto(out, recursive); err != nil {
				return err
			}
		}
	}
	return nil
}
