package menu

import (
	"errors"
	"fmt"
)

// Registry mutation errors, detected eagerly at insertion time.
var (
	ErrDuplicateID = errors.New("menu: duplicate widget id")
	ErrGridFull    = errors.New("menu: widget count exceeds columns x rows")
	ErrNilWidget   = errors.New("menu: nil widget")
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// Grid shapes the registry as cols x rows. With a single column the
// rows argument is ignored: single-column layout is a distinct mode
// where the row count is simply the live widget count.
func Grid(cols, rows int) RegistryOption {
	return func(r *Registry) {
		if cols < 1 {
			cols = 1
		}
		if rows < 1 {
			rows = 1
		}
		r.cols = cols
		r.rows = rows
	}
}

// ColumnWeights sets relative column widths. Missing columns get
// weight 1; extra weights are ignored.
func ColumnWeights(weights ...float32) RegistryOption {
	return func(r *Registry) { r.weights = weights }
}

// Spacing sets the vertical gap between widgets in a column.
func Spacing(px float32) RegistryOption {
	return func(r *Registry) { r.spacing = px }
}

// Registry is the ordered collection of widgets owned by one menu.
// Insertion order is navigation order. Widgets fill the grid one
// column at a time: widget i sits at column i/R, row i%R.
//
// Layout is lazy: geometry is recomputed on first access after any
// mutation, never eagerly and never at draw time only.
type Registry struct {
	th      *Theme
	width   float32
	widgets []Widget
	index   map[string]int
	cols    int
	rows    int
	weights []float32
	spacing float32

	laidOut bool
	bounds  Vec2
	ids     idAlloc
}

// NewRegistry creates a registry laying widgets out in the given
// content width.
func NewRegistry(th *Theme, width float32, opts ...RegistryOption) *Registry {
	r := &Registry{
		th:      th,
		width:   width,
		index:   make(map[string]int),
		cols:    1,
		rows:    1,
		spacing: th.ItemSpacing,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a widget. Widgets without an id get a generated one.
// Returns ErrDuplicateID if the id is already present and ErrGridFull
// when a multi-column grid has no free cell left.
func (r *Registry) Add(w Widget) error {
	if w == nil {
		return ErrNilWidget
	}
	if w.ID() == "" {
		w.setID(r.ids.next("widget"))
	}
	if _, dup := r.index[w.ID()]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, w.ID())
	}
	if r.cols > 1 && len(r.widgets)+1 > r.cols*r.rows {
		return fmt.Errorf("%w: %dx%d", ErrGridFull, r.cols, r.rows)
	}
	r.index[w.ID()] = len(r.widgets)
	r.widgets = append(r.widgets, w)
	r.invalidate()
	return nil
}

// Remove deletes the widget with the given id.
// Returns false if no such widget exists.
func (r *Registry) Remove(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.widgets = append(r.widgets[:i], r.widgets[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.widgets); j++ {
		r.index[r.widgets[j].ID()] = j
	}
	r.invalidate()
	return true
}

// Len returns the widget count.
func (r *Registry) Len() int { return len(r.widgets) }

// At returns the widget at index i, or nil if out of range.
func (r *Registry) At(i int) Widget {
	if i < 0 || i >= len(r.widgets) {
		return nil
	}
	return r.widgets[i]
}

// IndexOf returns the index of the widget with the given id, or -1.
func (r *Registry) IndexOf(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Cols returns the configured column count.
func (r *Registry) Cols() int { return r.cols }

// Rows returns the effective row count: the configured rows on a
// multi-column grid, the live widget count on a single column.
func (r *Registry) Rows() int {
	if r.cols == 1 {
		return len(r.widgets)
	}
	return r.rows
}

// Width returns the content width layout works within.
func (r *Registry) Width() float32 { return r.width }

// SetWidth changes the layout width.
func (r *Registry) SetWidth(w float32) {
	r.width = w
	r.invalidate()
}

func (r *Registry) invalidate() { r.laidOut = false }

// colMetrics derives per-column pixel widths and x-offsets from the
// weighted shares.
func (r *Registry) colMetrics() (widths, offsets []float32) {
	widths = make([]float32, r.cols)
	offsets = make([]float32, r.cols)

	var sum float32
	for c := 0; c < r.cols; c++ {
		w := float32(1)
		if c < len(r.weights) && r.weights[c] > 0 {
			w = r.weights[c]
		}
		widths[c] = w
		sum += w
	}
	var x float32
	for c := 0; c < r.cols; c++ {
		widths[c] = r.width * widths[c] / sum
		offsets[c] = x
		x += widths[c]
	}
	return widths, offsets
}

// ensureLayout recomputes widget rectangles if a mutation invalidated
// them. Accessing any geometry triggers this pass first, so reads
// never observe stale rectangles.
func (r *Registry) ensureLayout() {
	if r.laidOut {
		return
	}
	r.laidOut = true
	r.bounds = Vec2{X: r.width}
	if len(r.widgets) == 0 {
		return
	}

	rowsEff := r.Rows()
	widths, offsets := r.colMetrics()

	colY := make([]float32, r.cols)
	for c := range colY {
		colY[c] = r.spacing
	}

	for i, w := range r.widgets {
		col := 0
		if rowsEff > 0 {
			col = i / rowsEff
		}
		if col >= r.cols {
			col = r.cols - 1
		}

		size := w.Measure(r.th)
		width := minf(size.X, widths[col])

		x := offsets[col]
		switch w.Align() {
		case AlignCenter:
			x += (widths[col] - width) / 2
		case AlignRight:
			x += widths[col] - width
		}

		w.setRect(Rect{X: x, Y: colY[col], W: width, H: size.Y})
		colY[col] += size.Y + r.spacing
	}

	for _, y := range colY {
		r.bounds.Y = maxf(r.bounds.Y, y)
	}
}

// ContentSize returns the bounding size of the laid-out widgets.
func (r *Registry) ContentSize() Vec2 {
	r.ensureLayout()
	return r.bounds
}

// WidgetRect returns the content-local rectangle of widget i,
// computing layout first if needed.
func (r *Registry) WidgetRect(i int) Rect {
	r.ensureLayout()
	w := r.At(i)
	if w == nil {
		return Rect{}
	}
	return w.Rect()
}

// hitTest returns the index of the first widget whose rectangle
// contains the content-local point, in registry order, or -1.
func (r *Registry) hitTest(p Vec2) int {
	r.ensureLayout()
	for i, w := range r.widgets {
		if w.Rect().Contains(p) {
			return i
		}
	}
	return -1
}
