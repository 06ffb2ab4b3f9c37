package field

import "image/color"

// Canvas is the 2D drawing surface a Field sizes itself to and renders onto.
// Alpha is in [0, 1]. Blur is the glow radius in canvas pixels; surfaces that
// cannot blur may approximate or ignore it.
type Canvas interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, r float64, c color.RGBA, alpha, blur float64)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha, blur float64)
}

type OpKind int

const (
	OpCircle OpKind = iota
	OpLine
)

// Op is one recorded draw command.
type Op struct {
	Kind   OpKind
	X1, Y1 float64
	X2, Y2 float64 // line end, unused for circles
	R      float64 // circle radius
	Width  float64 // line width
	Color  color.RGBA
	Alpha  float64
	Blur   float64
}

// Recorder is a Canvas that keeps a display list instead of drawing. Front
// ends that can only draw at a later point replay it; tests inspect it.
type Recorder struct {
	width, height int
	ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

// SetSize changes the reported viewport. The owning Field must be told to
// Resize separately.
func (r *Recorder) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) Clear() { r.ops = r.ops[:0] }

func (r *Recorder) FillCircle(x, y, radius float64, c color.RGBA, alpha, blur float64) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X1: x, Y1: y, R: radius, Color: c, Alpha: alpha, Blur: blur})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha, blur float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c, Alpha: alpha, Blur: blur})
}

// Ops returns the commands recorded since the last Clear. The slice is
// reused by the next frame.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many ops of the given kind are recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
