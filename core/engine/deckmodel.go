// core/engine/deckmodel.go
package engine

import (
	"fmt"
	"sort"

	"edeck-core/deck"
	"edeck-core/deckvar"
	"edeck-core/interp"
	"edeck-core/units"
)

// Config carries the scalar options that shape deck query behavior. They
// are applied around the interpolant; the parsed table itself is never
// mutated after construction.
type Config struct {
	ScaleFactor          float64 // linear scale on force/flow outputs; 0 means 1
	ClampNegativeThrust  bool
	GeopotentialAltitude bool // deck altitudes are geopotential, convert at load

	GenerateFlightIdle        bool
	FlightIdleThrustFraction  float64
	FlightIdleMinFuelFraction float64
	FlightIdleMaxFuelFraction float64

	Interp interp.Options
}

// DefaultConfig returns the documented option defaults.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:               1.0,
		FlightIdleThrustFraction:  0.0,
		FlightIdleMinFuelFraction: 0.08,
		FlightIdleMaxFuelFraction: 1.0,
	}
}

// T4 is intensive; everything else a deck reports scales with engine size.
var unscaled = map[deckvar.Variable]bool{
	deckvar.T4Temperature: true,
}

// Deck is the table-backed Model: it owns one immutable parsed table and
// the interpolant built from it. Queries are pure and safe for concurrent
// use.
type Deck struct {
	name string
	cfg  Config
	tab  *deck.Table
	axes []deckvar.Variable
	it   *interp.Interpolant
}

// NewDeck builds a deck model from a parsed table. Flight-idle synthesis
// and geopotential altitude conversion happen here, on a working copy of
// the column data, before the interpolant is constructed.
func NewDeck(name string, tab *deck.Table, cfg Config) (*Deck, error) {
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = 1
	}
	axes := tab.Independents()

	points := make([][]float64, tab.NumRows())
	for i := range points {
		p := make([]float64, len(axes))
		for d, v := range axes {
			x := tab.Value(i, v)
			if v == deckvar.Altitude && cfg.GeopotentialAltitude {
				x = units.GeopotentialToGeometric(x)
			}
			p[d] = x
		}
		points[i] = p
	}

	fields := map[deckvar.Variable][]float64{}
	for _, v := range tab.Dependents() {
		fields[v] = append([]float64(nil), tab.Column(v)...)
	}

	if cfg.GenerateFlightIdle {
		points, fields = synthesizeFlightIdle(points, fields, axes, cfg)
	}

	it, err := interp.Build(points, fields, cfg.Interp)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", name, err)
	}
	return &Deck{name: name, cfg: cfg, tab: tab, axes: axes, it: it}, nil
}

func (d *Deck) Name() string { return d.name }

// Table exposes the parsed source table (read-only by convention).
func (d *Deck) Table() *deck.Table { return d.tab }

// Axes returns the independent variables the deck samples, in query order.
func (d *Deck) Axes() []deckvar.Variable {
	return append([]deckvar.Variable(nil), d.axes...)
}

// Envelope returns the sampled bounds per axis, post flight-idle synthesis.
func (d *Deck) Envelope() (lo, hi []float64) { return d.it.Bounds() }

// OnGrid reports whether the samples form a full rectilinear grid.
func (d *Deck) OnGrid() bool { return d.it.OnGrid() }

func (d *Deck) query(c Conditions) []float64 {
	q := make([]float64, len(d.axes))
	for i, v := range d.axes {
		switch v {
		case deckvar.Mach:
			q[i] = c.Mach
		case deckvar.Altitude:
			q[i] = c.Altitude
		case deckvar.Throttle:
			q[i] = c.Throttle
		case deckvar.HybridThrottle:
			q[i] = c.HybridThrottle
		}
	}
	return q
}

// Query evaluates the deck and also reports the out-of-envelope notice.
func (d *Deck) Query(c Conditions) (Outputs, interp.Notice, error) {
	raw, notice, err := d.it.Evaluate(d.query(c))
	if err != nil {
		return nil, notice, err
	}
	out := make(Outputs, len(raw))
	for v, x := range raw {
		if !unscaled[v] {
			x *= d.cfg.ScaleFactor
		}
		out[v] = x
	}
	if d.cfg.ClampNegativeThrust {
		if x, ok := out[deckvar.NetThrust]; ok && x < 0 {
			out[deckvar.NetThrust] = 0
		}
	}
	return out, notice, nil
}

func (d *Deck) Performance(c Conditions) (Outputs, error) {
	out, _, err := d.Query(c)
	return out, err
}

// synthesizeFlightIdle adds one throttle=0 point per unique combination of
// the non-throttle axes when the deck's lowest sampled throttle is above
// zero. Idle net thrust is the configured fraction of the condition's peak
// thrust; idle fuel flow extrapolates the two lowest throttle samples and
// is then held inside the configured fraction bounds of the condition's
// peak fuel flow. Remaining dependents carry the lowest-throttle sample.
func synthesizeFlightIdle(points [][]float64, fields map[deckvar.Variable][]float64,
	axes []deckvar.Variable, cfg Config,
) ([][]float64, map[deckvar.Variable][]float64) {
	thrAxis := -1
	for i, v := range axes {
		if v == deckvar.Throttle {
			thrAxis = i
		}
	}
	if thrAxis < 0 {
		return points, fields
	}

	groups := map[string][]int{}
	var keys []string
	for i, p := range points {
		key := ""
		for d, x := range p {
			if d == thrAxis {
				continue
			}
			key += fmt.Sprintf("%v|", x)
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rows := groups[key]
		sort.Slice(rows, func(a, b int) bool {
			return points[rows[a]][thrAxis] < points[rows[b]][thrAxis]
		})
		low := rows[0]
		if points[low][thrAxis] <= 0 {
			continue
		}

		idle := append([]float64(nil), points[low]...)
		idle[thrAxis] = 0

		for v, vals := range fields {
			var x float64
			switch v {
			case deckvar.NetThrust:
				x = cfg.FlightIdleThrustFraction * maxOver(vals, rows)
			case deckvar.FuelFlow:
				x = extrapolateToZero(points, vals, rows, thrAxis)
				peak := maxOver(vals, rows)
				if min := cfg.FlightIdleMinFuelFraction * peak; x < min {
					x = min
				}
				if max := cfg.FlightIdleMaxFuelFraction * peak; x > max {
					x = max
				}
			default:
				x = vals[low]
			}
			fields[v] = append(vals, x)
		}
		points = append(points, idle)
	}
	return points, fields
}

func maxOver(vals []float64, rows []int) float64 {
	m := vals[rows[0]]
	for _, r := range rows[1:] {
		if vals[r] > m {
			m = vals[r]
		}
	}
	return m
}

// extrapolateToZero projects a dependent linearly to throttle zero using the
// two lowest throttle samples; with a single sample it holds that value.
func extrapolateToZero(points [][]float64, vals []float64, rows []int, thrAxis int) float64 {
	if len(rows) < 2 {
		return vals[rows[0]]
	}
	t0, t1 := points[rows[0]][thrAxis], points[rows[1]][thrAxis]
	if t1 == t0 {
		return vals[rows[0]]
	}
	v0, v1 := vals[rows[0]], vals[rows[1]]
	return v0 - t0*(v1-v0)/(t1-t0)
}
