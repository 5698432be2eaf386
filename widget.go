package menu

// Alignment positions a widget horizontally within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Widget is a single UI element owned by exactly one Registry.
// Coordinates in Rect are content-local; the owning menu's viewport
// translates them to the screen at draw and hit-test time.
type Widget interface {
	// ID returns the widget id, unique within the owning registry.
	ID() string

	// Selectable reports whether the cursor may focus this widget.
	Selectable() bool

	// Value returns the widget's current value, if it holds one.
	Value() (any, bool)

	// Measure returns the widget's preferred size.
	Measure(th *Theme) Vec2

	// Render draws the widget into dl at origin, the screen position of
	// the widget rectangle's top-left corner.
	Render(dl *DrawList, th *Theme, origin Vec2)

	// Handle offers an input event to the widget.
	// Returns true if the event was consumed.
	Handle(ev Event) bool

	// Activate returns the action to apply when the focused widget is
	// triggered. Widgets without an apply contract return a none action.
	Activate() Action

	// Rect returns the bounding rectangle in content-local coordinates.
	Rect() Rect

	// Align returns the widget's alignment within its grid column.
	Align() Alignment

	// Selected reports focus state; SetSelected flips it. Only the
	// selection cursor calls SetSelected, keeping a single owner.
	Selected() bool
	SetSelected(bool)

	setID(string)
	setRect(Rect)
}

// BaseWidget carries the state every widget shares. Concrete widgets
// embed it and override the behavioral methods they care about.
type BaseWidget struct {
	id       string
	rect     Rect
	align    Alignment
	selected bool
}

func (b *BaseWidget) ID() string          { return b.id }
func (b *BaseWidget) Rect() Rect          { return b.rect }
func (b *BaseWidget) Align() Alignment    { return b.align }
func (b *BaseWidget) Selected() bool      { return b.selected }
func (b *BaseWidget) SetSelected(s bool)  { b.selected = s }
func (b *BaseWidget) Selectable() bool    { return true }
func (b *BaseWidget) Value() (any, bool)  { return nil, false }
func (b *BaseWidget) Handle(Event) bool   { return false }
func (b *BaseWidget) Activate() Action    { return Action{} }
func (b *BaseWidget) setID(id string)     { b.id = id }
func (b *BaseWidget) setRect(r Rect)      { b.rect = r }
func (b *BaseWidget) applyOpts(o options) {
	b.id = GetOpt(o, OptID)
	b.align = GetOpt(o, OptAlign)
}

// ActionKind discriminates the Action variant.
type ActionKind int

const (
	// ActionNone means the widget has no apply contract.
	ActionNone ActionKind = iota
	// ActionOpenMenu pushes the target menu onto the navigation stack.
	ActionOpenMenu
	// ActionCallback runs a plain function.
	ActionCallback
	// ActionBack pops one navigation frame.
	ActionBack
	// ActionExit asks the host to terminate.
	ActionExit
	// ActionCustom hands the payload to the host's custom handler.
	ActionCustom
)

// Action is what triggering a widget does. The variant is resolved once
// at construction, so dispatch is a single switch on Kind.
type Action struct {
	Kind    ActionKind
	Target  *Menu  // ActionOpenMenu
	Fn      func() // ActionCallback
	Payload any    // ActionCustom
}

// OpenMenuAction opens the given submenu.
func OpenMenuAction(m *Menu) Action {
	return Action{Kind: ActionOpenMenu, Target: m}
}

// CallbackAction runs fn when triggered.
func CallbackAction(fn func()) Action {
	return Action{Kind: ActionCallback, Fn: fn}
}

// BackAction navigates back one level.
func BackAction() Action {
	return Action{Kind: ActionBack}
}

// ExitAction signals the host to terminate.
func ExitAction() Action {
	return Action{Kind: ActionExit}
}

// CustomAction carries an opaque payload to the host's custom handler.
func CustomAction(payload any) Action {
	return Action{Kind: ActionCustom, Payload: payload}
}
