package backdrop

// Surface is the 2D drawing target an effect renders to. Hosts implement it
// over a window canvas, a terminal cell grid or an in-memory raster.
//
// Coordinates are in surface units with the origin at the top-left. Fills are
// composited source-over, so a translucent FillRect darkens what is below it.
type Surface interface {
	Width() int
	Height() int

	// Clear resets every pixel to transparent.
	Clear()

	FillRect(r Rect, c Color)

	// FillText draws s with its top-left corner at (x, y) in a monospace face
	// of the given pixel size.
	FillText(s string, x, y, size float64, c Color)

	FillCircle(circle Circle, c Color)
	StrokeLine(x1, y1, x2, y2 float64, c Color)

	// SetCursor changes the pointer cursor. Surfaces without a cursor ignore it.
	SetCursor(shape CursorShape)
}

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillText
	OpFillCircle
	OpStrokeLine
	OpSetCursor
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fillRect"
	case OpFillText:
		return "fillText"
	case OpFillCircle:
		return "fillCircle"
	case OpStrokeLine:
		return "strokeLine"
	case OpSetCursor:
		return "setCursor"
	default:
		return "unknown"
	}
}

// Op is one drawing call captured by a Recorder. Only the fields relevant to
// Kind are set.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Text   string
	X, Y   float64
	X2, Y2 float64
	Size   float64
	Circle Circle
	Color  Color
	Cursor CursorShape
}

// Recorder is an in-memory Surface that records every call. It draws nothing
// and is used for tests, headless stats and debugging.
type Recorder struct {
	W, H   int
	Ops    []Op
	Cursor CursorShape
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) FillText(s string, x, y, size float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: s, X: x, Y: y, Size: size, Color: c})
}

func (r *Recorder) FillCircle(circle Circle, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Circle: circle, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) SetCursor(shape CursorShape) {
	r.Cursor = shape
	r.Ops = append(r.Ops, Op{Kind: OpSetCursor, Cursor: shape})
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded operations of the given kind, in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
