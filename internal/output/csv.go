// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"edeck/pkg/api"
)

// WriteCSV mirrors the text layout in RFC 4180 form.
func WriteCSV(w io.Writer, rows []api.PerformanceV1, header bool) error {
	keys := OutputOrder(rows)
	hasHybrid := false
	for _, r := range rows {
		if r.HybridThrottle != nil {
			hasHybrid = true
		}
	}

	cw := csv.NewWriter(w)
	if header {
		cols := []string{"deck", "mach", "altitude_ft", "throttle"}
		if hasHybrid {
			cols = append(cols, "hybrid_throttle")
		}
		cols = append(cols, keys...)
		cols = append(cols, "out_of_envelope")
		if err := cw.Write(cols); err != nil {
			return err
		}
	}
	for _, r := range rows {
		cells := []string{r.Deck, formatNum(r.Mach), formatNum(r.AltitudeFt), formatNum(r.Throttle)}
		if hasHybrid {
			if r.HybridThrottle != nil {
				cells = append(cells, formatNum(*r.HybridThrottle))
			} else {
				cells = append(cells, "")
			}
		}
		for _, k := range keys {
			if x, ok := r.Outputs[k]; ok {
				cells = append(cells, formatNum(x))
			} else {
				cells = append(cells, "")
			}
		}
		cells = append(cells, strconv.FormatBool(r.OutOfEnvelope))
		if err := cw.Write(cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
