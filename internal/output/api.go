// internal/output/api.go
package output

import (
	"edeck-core/deckvar"
	"edeck-core/engine"
	"edeck-core/interp"
	"edeck/pkg/api"
)

// ToAPIRow flattens one query into the wire schema. axes is the deck's
// independent-variable order, used to name out-of-envelope axes.
func ToAPIRow(deckName string, c engine.Conditions, hasHybrid bool,
	out engine.Outputs, notice interp.Notice, axes []deckvar.Variable,
) api.PerformanceV1 {
	row := api.PerformanceV1{
		Deck:       deckName,
		Mach:       c.Mach,
		AltitudeFt: c.Altitude,
		Throttle:   c.Throttle,
		Outputs:    make(map[string]float64, len(out)),
	}
	if hasHybrid {
		h := c.HybridThrottle
		row.HybridThrottle = &h
	}
	for v, x := range out {
		row.Outputs[v.Key()] = x
	}
	if notice.OutOfEnvelope() {
		row.OutOfEnvelope = true
		for _, d := range notice.Outside {
			if d < len(axes) {
				row.OutsideAxes = append(row.OutsideAxes, axes[d].Key())
			}
		}
	}
	return row
}

// OutputOrder returns the union of output keys across rows in canonical
// variable order, so tabular formats have stable columns.
func OutputOrder(rows []api.PerformanceV1) []string {
	present := map[string]bool{}
	for _, r := range rows {
		for k := range r.Outputs {
			present[k] = true
		}
	}
	var out []string
	for _, v := range deckvar.All {
		if present[v.Key()] {
			out = append(out, v.Key())
		}
	}
	return out
}
