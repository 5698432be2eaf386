package menu

// Renderer turns a finalized DrawList into pixels. Backends also own
// the font atlas texture glyph quads sample from.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Feedback receives notifications for user-visible menu transitions,
// typically to play audio cues. All methods may be called every frame;
// implementations should be cheap.
type Feedback interface {
	// Selection fires when the focused widget changes.
	Selection()
	// Apply fires when a widget is activated.
	Apply()
	// Close fires when a close request is accepted.
	Close()
}

// nopFeedback is the default, silent Feedback.
type nopFeedback struct{}

func (nopFeedback) Selection() {}
func (nopFeedback) Apply()     {}
func (nopFeedback) Close()     {}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithFeedback installs a transition feedback sink.
func WithFeedback(f Feedback) GUIOption {
	return func(g *GUI) {
		if f != nil {
			g.feedback = f
		}
	}
}

// WithFPSLimit caps the host loop at the given rate through the GUI's
// limiter. Zero disables limiting.
func WithFPSLimit(fps int) GUIOption {
	return func(g *GUI) { g.limiter = NewFPSLimiter(fps) }
}

// WithCustomHandler installs the handler ActionCustom payloads are
// delivered to.
func WithCustomHandler(fn func(payload any)) GUIOption {
	return func(g *GUI) { g.onCustom = fn }
}

// GUI ties a menu tree to a renderer and an event stream. The host
// render loop feeds it the frame's input batch through Update and asks
// it to draw through Draw; the GUI never owns the loop.
type GUI struct {
	renderer Renderer
	nav      *NavStack
	feedback Feedback
	limiter  *FPSLimiter
	onCustom func(payload any)
}

// New creates a GUI bound to the given renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		nav:      NewNavStack(),
		feedback: nopFeedback{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Nav exposes the navigation stack.
func (g *GUI) Nav() *NavStack { return g.nav }

// SetRoot installs the root menu and shows the tree.
func (g *GUI) SetRoot(m *Menu) { g.nav.SetRoot(m) }

// Open pushes a submenu.
func (g *GUI) Open(m *Menu) { g.nav.Open(m) }

// Back pops up to n levels.
func (g *GUI) Back(n int) { g.nav.Back(n) }

// ResetToRoot pops back to the root menu.
func (g *GUI) ResetToRoot() { g.nav.ResetToRoot() }

// Enable shows the menu tree.
func (g *GUI) Enable() { g.nav.Enable() }

// Disable hides the menu tree.
func (g *GUI) Disable() { g.nav.Disable() }

// Enabled reports whether the tree is shown.
func (g *GUI) Enabled() bool { return g.nav.Enabled() }

// Blocking reports whether the active menu wants exclusive input.
func (g *GUI) Blocking() bool {
	return g.nav.Enabled() && g.nav.Current().Blocking()
}

// CollectValues gathers widget values from the active menu's tree root.
// Panics before SetRoot, like every other navigation operation.
func (g *GUI) CollectValues(recursive bool) (map[string]any, error) {
	g.nav.mustInit()
	return g.nav.Root().CollectValues(recursive)
}

// Tick applies the optional frame limiter; the host calls it once per
// loop iteration.
func (g *GUI) Tick() {
	if g.limiter != nil {
		g.limiter.Wait()
	}
}

// Update dispatches one frame's event batch to the active menu and
// reports whether the host should stop its loop.
//
// Dispatch order per event: menu chrome (close box), viewport
// scrollbars, the focused widget, navigation keys, then pointer
// hit-testing over the widgets.
func (g *GUI) Update(events []Event) bool {
	if !g.nav.Enabled() {
		return g.nav.ExitRequested()
	}
	m := g.nav.Current()

	for _, ev := range events {
		g.dispatch(m, ev)
		if g.nav.ExitRequested() {
			return true
		}
		// A transition mid-batch redirects the rest of the batch.
		if !g.nav.Enabled() {
			break
		}
		m = g.nav.Current()
	}
	return g.nav.ExitRequested()
}

// isPress reports whether ev is a left pointer press or a touch press.
// Both select and activate widgets the same way.
func isPress(ev Event) bool {
	if ev.Kind == EventTouchDown {
		return true
	}
	return ev.Kind == EventPointerDown && ev.Button == MouseButtonLeft
}

// dispatch routes a single event through the priority chain.
func (g *GUI) dispatch(m *Menu, ev Event) {
	if isPress(ev) && m.hitCloseBox(ev.Pos) {
		g.feedback.Close()
		g.nav.Close()
		return
	}

	if m.vp.HandleEvent(ev) {
		return
	}

	if w := m.cursor.Current(); w != nil && w.Handle(ev) {
		m.refresh()
		return
	}

	switch ev.Kind {
	case EventKeyDown:
		g.handleKey(m, ev.Key)
		return
	case EventDPad:
		g.handleDPad(m, ev.Dir)
		return
	}

	if isPress(ev) {
		g.handlePointerDown(m, ev)
	}
}

// handleKey maps navigation keys onto cursor and stack operations.
func (g *GUI) handleKey(m *Menu, key Key) {
	switch key {
	case KeyUp:
		g.moveCursor(m, -1)
	case KeyDown:
		g.moveCursor(m, 1)
	case KeyLeft:
		g.moveColumn(m, -1)
	case KeyRight:
		g.moveColumn(m, 1)
	case KeyEnter, KeySpace:
		g.activate(m)
	case KeyBackspace:
		g.nav.Back(1)
	case KeyEscape:
		g.feedback.Close()
		g.nav.Close()
	}
}

// handleDPad maps directional pad input the same way as arrow keys.
func (g *GUI) handleDPad(m *Menu, dir Direction) {
	switch dir {
	case DirUp:
		g.moveCursor(m, -1)
	case DirDown:
		g.moveCursor(m, 1)
	case DirLeft:
		g.moveColumn(m, -1)
	case DirRight:
		g.moveColumn(m, 1)
	}
}

func (g *GUI) moveCursor(m *Menu, delta int) {
	before := m.cursor.Index()
	m.cursor.Move(delta)
	if m.cursor.Index() != before {
		g.feedback.Selection()
		g.scrollToCursor(m)
	}
}

func (g *GUI) moveColumn(m *Menu, dir int) {
	before := m.cursor.Index()
	m.cursor.MoveColumn(dir)
	if m.cursor.Index() != before {
		g.feedback.Selection()
		g.scrollToCursor(m)
	}
}

// scrollToCursor keeps the focused widget inside the viewport.
func (g *GUI) scrollToCursor(m *Menu) {
	if i := m.cursor.Index(); i >= 0 {
		m.vp.ScrollIntoView(m.reg.WidgetRect(i))
	}
}

// activate triggers the focused widget and applies its action.
func (g *GUI) activate(m *Menu) {
	act := m.cursor.Activate()
	if act.Kind == ActionNone {
		return
	}
	g.feedback.Apply()
	g.applyAction(act)
}

// applyAction performs a resolved widget action.
func (g *GUI) applyAction(act Action) {
	switch act.Kind {
	case ActionOpenMenu:
		if act.Target != nil {
			g.nav.Open(act.Target)
		}
	case ActionCallback:
		if act.Fn != nil {
			act.Fn()
		}
	case ActionBack:
		g.nav.Back(1)
	case ActionExit:
		g.nav.exit = true
	case ActionCustom:
		if g.onCustom != nil {
			g.onCustom(act.Payload)
		}
	}
}

// handlePointerDown hit-tests the widgets under the pointer, moves the
// focus there, and activates when the widget does not consume the
// press itself.
func (g *GUI) handlePointerDown(m *Menu, ev Event) {
	if !m.vp.VisibleRect().Contains(ev.Pos) {
		return
	}
	idx := m.reg.hitTest(m.vp.ToContent(ev.Pos))
	if idx < 0 {
		return
	}
	w := m.reg.At(idx)
	if !w.Selectable() {
		return
	}
	if m.cursor.Index() != idx {
		m.cursor.Select(idx)
		g.feedback.Selection()
	}
	if !w.Handle(ev) {
		g.activate(m)
	}
}

// Draw renders the active menu through the bound renderer.
func (g *GUI) Draw() error {
	if !g.nav.Enabled() {
		return nil
	}
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTexture = g.renderer.FontTextureID()
	g.nav.Current().Draw(dl)
	dl.Finalize()
	return g.renderer.Render(dl)
}
