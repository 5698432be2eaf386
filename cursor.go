package menu

// Cursor maintains the single focused-widget index for one menu.
// At most one widget per menu carries the selected flag; the cursor is
// the only writer of that flag, so ownership is never ambiguous.
type Cursor struct {
	reg   *Registry
	index int // -1 = no selection
}

// NewCursor creates a cursor over the given registry with no selection.
func NewCursor(reg *Registry) *Cursor {
	return &Cursor{reg: reg, index: -1}
}

// Index returns the focused widget index, or -1 if none.
func (c *Cursor) Index() int { return c.index }

// Current returns the focused widget, or nil.
func (c *Cursor) Current() Widget {
	if c.index < 0 {
		return nil
	}
	return c.reg.At(c.index)
}

// firstSelectable returns the lowest selectable index, or -1.
func (c *Cursor) firstSelectable() int {
	for i := 0; i < c.reg.Len(); i++ {
		if c.reg.At(i).Selectable() {
			return i
		}
	}
	return -1
}

// Reset focuses the first selectable widget, or clears the selection
// when the menu has none.
func (c *Cursor) Reset() {
	if i := c.firstSelectable(); i >= 0 {
		c.Select(i)
	} else {
		c.Clear()
	}
}

// Clear removes the selection.
func (c *Cursor) Clear() {
	if w := c.Current(); w != nil {
		w.SetSelected(false)
	}
	c.index = -1
}

// Select focuses the widget at index i, unselecting the previous one.
// Selecting from an empty registry or out of range is a programmer
// error and panics.
func (c *Cursor) Select(i int) {
	if c.reg.Len() == 0 {
		panic("menu: select on empty registry")
	}
	if i < 0 || i >= c.reg.Len() {
		panic("menu: selection index out of range")
	}
	if prev := c.Current(); prev != nil {
		prev.SetSelected(false)
	}
	c.index = i
	c.reg.At(i).SetSelected(true)
}

// wrap maps an index into [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Move shifts the focus by delta with wrap-around, skipping widgets
// that are not selectable. A registry without selectable widgets, or an
// empty one, makes this a no-op.
func (c *Cursor) Move(delta int) {
	n := c.reg.Len()
	if n == 0 || delta == 0 {
		return
	}
	first := c.firstSelectable()
	if first < 0 {
		return
	}
	if c.index < 0 {
		c.Select(first)
		return
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	idx := wrap(c.index+delta, n)
	for tries := 0; tries < n && !c.reg.At(idx).Selectable(); tries++ {
		idx = wrap(idx+step, n)
	}
	c.Select(idx)
}

// MoveColumn jumps one grid column in the given direction (±1). Unlike
// Move the target is clamped, not wrapped, so the focus never lands in
// an unexpected row. On single-column menus this is a no-op.
func (c *Cursor) MoveColumn(dir int) {
	n := c.reg.Len()
	if n == 0 || dir == 0 || c.reg.Cols() == 1 {
		return
	}
	if c.index < 0 {
		c.Reset()
		return
	}

	rows := c.reg.Rows()
	target := c.index + dir*rows
	if target < 0 {
		target = 0
	}
	if target >= n {
		target = n - 1
	}

	// Land on a selectable widget: back toward the start index first,
	// then onward.
	back := -1
	if dir < 0 {
		back = 1
	}
	idx := target
	for tries := 0; tries < n && !c.reg.At(idx).Selectable(); tries++ {
		idx += back
		if idx < 0 || idx >= n {
			return
		}
	}
	c.Select(idx)
}

// Activate returns the focused widget's action, or a none action if
// nothing selectable has focus.
func (c *Cursor) Activate() Action {
	w := c.Current()
	if w == nil || !w.Selectable() {
		return Action{}
	}
	return w.Activate()
}
