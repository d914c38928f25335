// core/interp/interp.go
package interp

import (
	"fmt"
	"sort"

	"edeck-core/deckvar"
)

// Method selects the interpolation strategy. The source data is a point
// cloud in 3 or 4 dimensions that may or may not lie on a full grid; Auto
// picks the tensor-product path when a grid is detected and falls back to
// scattered interpolation otherwise.
type Method int

const (
	Auto Method = iota
	Grid
	Simplex
	IDW
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Grid:
		return "grid"
	case Simplex:
		return "simplex"
	case IDW:
		return "idw"
	}
	return "unknown"
}

// ParseMethod maps a CLI spelling to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "grid":
		return Grid, nil
	case "simplex":
		return Simplex, nil
	case "idw":
		return IDW, nil
	}
	return Auto, fmt.Errorf("unknown interpolation method %q", s)
}

// Policy controls behavior for queries outside the sampled envelope.
type Policy int

const (
	// ClampToBoundary pins out-of-range query axes to the sampled bounds.
	// Default: unbounded extrapolation of engine data produces physically
	// nonsensical outputs (negative fuel flow and worse).
	ClampToBoundary Policy = iota
	Extrapolate
)

type Options struct {
	Method    Method
	Policy    Policy
	Neighbors int     // scattered paths: points considered per query (0 = dims+2)
	Power     float64 // IDW distance exponent (0 = 2)
}

// Notice reports out-of-envelope conditions for a single query. It is
// informational; results are still produced under the configured policy.
type Notice struct {
	Outside []int // axis indices where the query left the sampled range
}

func (n Notice) OutOfEnvelope() bool { return len(n.Outside) > 0 }

type field struct {
	v      deckvar.Variable
	values []float64
}

// Interpolant is an immutable query function built once from a parsed deck.
// Evaluate is safe for concurrent use.
type Interpolant struct {
	opt    Options
	dims   int
	points [][]float64
	fields []field

	lo, hi []float64
	scale  []float64 // per-axis normalization for distance computations

	grid *gridIndex // non-nil when the points form a full grid and it is used
}

// Build constructs an interpolant over the given sample points. Each entry
// in fields must have exactly one value per point. Duplicate sample points
// are rejected: a deck sampling the same operating condition twice is
// ambiguous.
func Build(points [][]float64, fields map[deckvar.Variable][]float64, opt Options) (*Interpolant, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("interp: no sample points")
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, fmt.Errorf("interp: zero-dimensional points")
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("interp: point %d has %d coordinates, want %d", i, len(p), dims)
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("interp: no dependent variables")
	}
	if opt.Neighbors == 0 {
		opt.Neighbors = dims + 2
	}
	if opt.Power == 0 {
		opt.Power = 2
	}

	it := &Interpolant{opt: opt, dims: dims, points: points}
	for _, v := range deckvar.All {
		vals, ok := fields[v]
		if !ok {
			continue
		}
		if len(vals) != n {
			return nil, fmt.Errorf("interp: %s has %d values for %d points", v, len(vals), n)
		}
		it.fields = append(it.fields, field{v, vals})
	}
	if len(it.fields) != len(fields) {
		return nil, fmt.Errorf("interp: unrecognized dependent variable in field set")
	}

	it.lo = make([]float64, dims)
	it.hi = make([]float64, dims)
	copy(it.lo, points[0])
	copy(it.hi, points[0])
	for _, p := range points[1:] {
		for d, x := range p {
			if x < it.lo[d] {
				it.lo[d] = x
			}
			if x > it.hi[d] {
				it.hi[d] = x
			}
		}
	}
	it.scale = make([]float64, dims)
	for d := range it.scale {
		if r := it.hi[d] - it.lo[d]; r > 0 {
			it.scale[d] = 1 / r
		} else {
			it.scale[d] = 1
		}
	}

	if err := checkDuplicates(points); err != nil {
		return nil, err
	}

	switch opt.Method {
	case Grid, Auto:
		g, ok := detectGrid(points)
		if ok {
			it.grid = g
		} else if opt.Method == Grid {
			return nil, fmt.Errorf("interp: grid method requested but %d points do not form a full grid", n)
		}
	}
	return it, nil
}

func (it *Interpolant) Dims() int      { return it.dims }
func (it *Interpolant) NumPoints() int { return len(it.points) }
func (it *Interpolant) OnGrid() bool   { return it.grid != nil }

// Bounds returns the per-axis sampled envelope.
func (it *Interpolant) Bounds() (lo, hi []float64) {
	lo = append([]float64(nil), it.lo...)
	hi = append([]float64(nil), it.hi...)
	return lo, hi
}

// Variables lists the dependent variables in canonical order.
func (it *Interpolant) Variables() []deckvar.Variable {
	out := make([]deckvar.Variable, len(it.fields))
	for i, f := range it.fields {
		out[i] = f.v
	}
	return out
}

// Evaluate interpolates every dependent variable at q. The notice flags
// axes where q left the sampled envelope; under ClampToBoundary those axes
// are pinned to the boundary before evaluation.
func (it *Interpolant) Evaluate(q []float64) (map[deckvar.Variable]float64, Notice, error) {
	if len(q) != it.dims {
		return nil, Notice{}, fmt.Errorf("interp: query has %d coordinates, want %d", len(q), it.dims)
	}

	var notice Notice
	eval := append([]float64(nil), q...)
	for d := range eval {
		if eval[d] < it.lo[d] || eval[d] > it.hi[d] {
			notice.Outside = append(notice.Outside, d)
			if it.opt.Policy == ClampToBoundary {
				if eval[d] < it.lo[d] {
					eval[d] = it.lo[d]
				} else {
					eval[d] = it.hi[d]
				}
			}
		}
	}

	var weights []weighted
	switch {
	case it.opt.Method == IDW:
		weights = it.idwWeights(eval)
	case it.grid != nil:
		weights = it.grid.cellWeights(eval)
	default:
		weights = it.simplexWeights(eval)
	}

	out := make(map[deckvar.Variable]float64, len(it.fields))
	for _, f := range it.fields {
		acc := 0.0
		for _, w := range weights {
			acc += w.w * f.values[w.idx]
		}
		out[f.v] = acc
	}
	return out, notice, nil
}

type weighted struct {
	idx int
	w   float64
}

func checkDuplicates(points [][]float64) error {
	keys := make([]string, len(points))
	for i, p := range points {
		keys[i] = fmt.Sprint(p)
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	for i := 1; i < len(idx); i++ {
		if keys[idx[i]] == keys[idx[i-1]] {
			return fmt.Errorf("interp: duplicate sample point %v", points[idx[i]])
		}
	}
	return nil
}
