// core/deck/table.go
package deck

import "edeck-core/deckvar"

// Table is a parsed engine deck: a dense rectangular block of rows with one
// column per resolved canonical variable, all values already converted to
// each variable's default unit. Immutable after Parse returns.
type Table struct {
	Name       string
	Columns    []deckvar.Variable // resolved columns in first-appearance order
	RawHeaders []string           // original header tokens, including unrecognized ones
	Warnings   []Warning

	data map[deckvar.Variable][]float64
	rows int
}

func (t *Table) NumRows() int { return t.rows }

func (t *Table) Has(v deckvar.Variable) bool {
	_, ok := t.data[v]
	return ok
}

// Column returns the full value slice for v, or nil when absent. Callers
// must not modify the returned slice.
func (t *Table) Column(v deckvar.Variable) []float64 { return t.data[v] }

// Value returns the value at a row for v. Panics on absent variables, like
// an out-of-range slice index would.
func (t *Table) Value(row int, v deckvar.Variable) float64 { return t.data[v][row] }

// Independents returns the independent axes present, in canonical order
// (Mach, Altitude, Throttle, then Hybrid Throttle when sampled).
func (t *Table) Independents() []deckvar.Variable {
	var out []deckvar.Variable
	for _, v := range deckvar.All {
		if v.Independent() && t.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Dependents returns the interpolated outputs present, in canonical order.
func (t *Table) Dependents() []deckvar.Variable {
	var out []deckvar.Variable
	for _, v := range deckvar.All {
		if !v.Independent() && t.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Bounds returns the sampled min and max for v. ok=false when absent or empty.
func (t *Table) Bounds(v deckvar.Variable) (lo, hi float64, ok bool) {
	col := t.data[v]
	if len(col) == 0 {
		return 0, 0, false
	}
	lo, hi = col[0], col[0]
	for _, x := range col[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}
