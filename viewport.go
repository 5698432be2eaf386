package menu

// Edge identifies a viewport border a scrollbar can mount on.
type Edge int

const (
	EdgeNorth Edge = iota
	EdgeSouth
	EdgeEast
	EdgeWest
	edgeCount
)

// ViewportOption configures a Viewport.
type ViewportOption func(*Viewport)

// ScrollbarThickness sets the bar thickness in pixels.
func ScrollbarThickness(px float32) ViewportOption {
	return func(vp *Viewport) { vp.thickness = px }
}

// HScrollEdge mounts the horizontal bar on EdgeNorth or EdgeSouth
// (default south). Other edges are ignored.
func HScrollEdge(e Edge) ViewportOption {
	return func(vp *Viewport) {
		if e == EdgeNorth || e == EdgeSouth {
			vp.hEdge = e
		}
	}
}

// VScrollEdge mounts the vertical bar on EdgeEast or EdgeWest
// (default east). Other edges are ignored.
func VScrollEdge(e Edge) ViewportOption {
	return func(vp *Viewport) {
		if e == EdgeEast || e == EdgeWest {
			vp.vEdge = e
		}
	}
}

// Viewport presents a rectangular window onto a content surface that may
// exceed it. Each overflowing axis gets an edge-mounted ScrollBar whose
// value is the scroll offset on that axis; a bar exists only while its
// axis overflows. The visible rectangle is the viewport rectangle minus
// the thickness of whichever bars are active.
type Viewport struct {
	rect      Rect
	content   Vec2
	bars      [edgeCount]*ScrollBar
	thickness float32
	hEdge     Edge
	vEdge     Edge
}

// NewViewport creates a viewport covering the given screen rectangle.
func NewViewport(rect Rect, opts ...ViewportOption) *Viewport {
	vp := &Viewport{
		rect:      rect,
		content:   Vec2{X: rect.W, Y: rect.H},
		thickness: 12,
		hEdge:     EdgeSouth,
		vEdge:     EdgeEast,
	}
	for _, opt := range opts {
		opt(vp)
	}
	return vp
}

// Rect returns the outer viewport rectangle.
func (vp *Viewport) Rect() Rect { return vp.rect }

// ContentSize returns the current content surface size.
func (vp *Viewport) ContentSize() Vec2 { return vp.content }

// Bar returns the scrollbar mounted on the given edge, or nil.
func (vp *Viewport) Bar(e Edge) *ScrollBar {
	if e < 0 || e >= edgeCount {
		return nil
	}
	return vp.bars[e]
}

// hbar returns the horizontal scrollbar, if any.
func (vp *Viewport) hbar() *ScrollBar { return vp.bars[vp.hEdge] }

// vbar returns the vertical scrollbar, if any.
func (vp *Viewport) vbar() *ScrollBar { return vp.bars[vp.vEdge] }

// SetRect moves or resizes the viewport and rebuilds the bars.
func (vp *Viewport) SetRect(r Rect) {
	vp.rect = r
	vp.rebuild()
}

// SetContent resizes the content surface. Bars are created for axes
// that now overflow and torn down for axes that fit; a torn-down axis
// snaps its offset back to zero.
func (vp *Viewport) SetContent(size Vec2) {
	vp.content = size
	vp.rebuild()
}

// visibleGiven computes the visible rectangle assuming the given bars
// are mounted.
func (vp *Viewport) visibleGiven(hasH, hasV bool) Rect {
	vis := vp.rect
	if hasH {
		vis.H -= vp.thickness
		if vp.hEdge == EdgeNorth {
			vis.Y += vp.thickness
		}
	}
	if hasV {
		vis.W -= vp.thickness
		if vp.vEdge == EdgeWest {
			vis.X += vp.thickness
		}
	}
	return vis
}

// rebuild recreates the bars for the current rect and content size.
// The overflow test is iterated because mounting one bar shrinks the
// visible area, which can make the other axis overflow too.
func (vp *Viewport) rebuild() {
	prevOff := vp.Offset()

	hasH, hasV := false, false
	for i := 0; i < 2; i++ {
		vis := vp.visibleGiven(hasH, hasV)
		newH := vp.content.X > vis.W
		newV := vp.content.Y > vis.H
		if newH == hasH && newV == hasV {
			break
		}
		hasH, hasV = newH, newV
	}

	vis := vp.visibleGiven(hasH, hasV)

	for e := Edge(0); e < edgeCount; e++ {
		vp.bars[e] = nil
	}
	if hasH && vis.W > 0 {
		bar, err := NewScrollBar(Horizontal, vis.W, 0, float64(vp.content.X-vis.W))
		if err == nil {
			bar.SetThickness(vp.thickness)
			bar.SetSliderRatio(float64(vis.W / vp.content.X))
			bar.SetValue(float64(prevOff.X))
			vp.bars[vp.hEdge] = bar
		}
	}
	if hasV && vis.H > 0 {
		bar, err := NewScrollBar(Vertical, vis.H, 0, float64(vp.content.Y-vis.H))
		if err == nil {
			bar.SetThickness(vp.thickness)
			bar.SetSliderRatio(float64(vis.H / vp.content.Y))
			bar.SetValue(float64(prevOff.Y))
			vp.bars[vp.vEdge] = bar
		}
	}

	vp.layoutBars()
}

// layoutBars positions the active bars along their edges.
func (vp *Viewport) layoutBars() {
	vis := vp.VisibleRect()
	if h := vp.hbar(); h != nil {
		y := vp.rect.Y + vp.rect.H - vp.thickness
		if vp.hEdge == EdgeNorth {
			y = vp.rect.Y
		}
		h.SetPosition(Vec2{X: vis.X, Y: y})
	}
	if v := vp.vbar(); v != nil {
		x := vp.rect.X + vp.rect.W - vp.thickness
		if vp.vEdge == EdgeWest {
			x = vp.rect.X
		}
		v.SetPosition(Vec2{X: x, Y: vis.Y})
	}
}

// VisibleRect returns the on-screen rectangle content shows through.
func (vp *Viewport) VisibleRect() Rect {
	return vp.visibleGiven(vp.hbar() != nil, vp.vbar() != nil)
}

// Offset returns the current scroll offset in content coordinates.
// An axis without a bar has offset zero.
func (vp *Viewport) Offset() Vec2 {
	var off Vec2
	if h := vp.hbar(); h != nil {
		off.X = float32(h.Value())
	}
	if v := vp.vbar(); v != nil {
		off.Y = float32(v.Value())
	}
	return off
}

// SetOffset scrolls both axes, clamped into each bar's domain.
func (vp *Viewport) SetOffset(off Vec2) {
	if h := vp.hbar(); h != nil {
		h.SetValue(float64(off.X))
	}
	if v := vp.vbar(); v != nil {
		v.SetValue(float64(off.Y))
	}
}

// ToScreen converts a content-local point to screen coordinates.
func (vp *Viewport) ToScreen(p Vec2) Vec2 {
	vis := vp.VisibleRect()
	off := vp.Offset()
	return Vec2{X: vis.X + p.X - off.X, Y: vis.Y + p.Y - off.Y}
}

// ToContent converts a screen point to content-local coordinates.
// It is the exact inverse of ToScreen.
func (vp *Viewport) ToContent(p Vec2) Vec2 {
	vis := vp.VisibleRect()
	off := vp.Offset()
	return Vec2{X: p.X - vis.X + off.X, Y: p.Y - vis.Y + off.Y}
}

// scrollAxis returns the minimal new offset that brings [start,end)
// into the visible span [off, off+size). When the span is larger than
// the viewport it aligns the nearer edge.
func scrollAxis(off, size, start, end float32) float32 {
	if end-start > size {
		// Too large to fit: align whichever edge is closer.
		lo := start           // align start edge
		hi := end - size      // align end edge
		if absf(lo-off) <= absf(hi-off) {
			return lo
		}
		return hi
	}
	if start < off {
		return start
	}
	if end > off+size {
		return end - size
	}
	return off
}

// ScrollIntoView adjusts the bar values by the minimal amount that
// brings r (content coordinates) fully inside the visible rectangle.
func (vp *Viewport) ScrollIntoView(r Rect) {
	vis := vp.VisibleRect()
	off := vp.Offset()
	if h := vp.hbar(); h != nil {
		h.SetValue(float64(scrollAxis(off.X, vis.W, r.X, r.X+r.W)))
	}
	if v := vp.vbar(); v != nil {
		v.SetValue(float64(scrollAxis(off.Y, vis.H, r.Y, r.Y+r.H)))
	}
}

// Dragging reports whether any bar has a drag in progress.
func (vp *Viewport) Dragging() bool {
	for _, bar := range vp.bars {
		if bar != nil && bar.Dragging() {
			return true
		}
	}
	return false
}

// HandleEvent offers an event to the viewport chrome: active drags
// first, then bar hit-testing, then wheel scrolling over the viewport.
// Returns true if the event was consumed.
func (vp *Viewport) HandleEvent(ev Event) bool {
	vp.layoutBars()

	// An in-progress drag owns pointer events outright.
	for _, bar := range vp.bars {
		if bar != nil && bar.Dragging() {
			return bar.HandleEvent(ev)
		}
	}

	for _, bar := range vp.bars {
		if bar != nil && bar.HandleEvent(ev) {
			return true
		}
	}

	if ev.Kind == EventWheel && vp.rect.Contains(ev.Pos) {
		consumed := false
		if v := vp.vbar(); v != nil && ev.Delta.Y != 0 {
			v.SetValue(v.Value() - float64(ev.Delta.Y)*wheelScrollStep)
			consumed = true
		}
		if h := vp.hbar(); h != nil && ev.Delta.X != 0 {
			h.SetValue(h.Value() - float64(ev.Delta.X)*wheelScrollStep)
			consumed = true
		}
		return consumed
	}

	return false
}

// wheelScrollStep is the offset change per wheel notch, in pixels.
const wheelScrollStep = 30

// BeginDraw pushes the visible rectangle as the clip region.
// Content drawn until EndDraw is clipped to the viewport.
func (vp *Viewport) BeginDraw(dl *DrawList) {
	vis := vp.VisibleRect()
	dl.PushClipRect(vis.X, vis.Y, vis.X+vis.W, vis.Y+vis.H)
}

// EndDraw pops the clip region pushed by BeginDraw.
func (vp *Viewport) EndDraw(dl *DrawList) {
	dl.PopClipRect()
}

// DrawBars renders the active scrollbars on top of the content.
func (vp *Viewport) DrawBars(dl *DrawList, th *Theme) {
	vp.layoutBars()
	for _, bar := range vp.bars {
		if bar != nil {
			bar.Draw(dl, th)
		}
	}
}
