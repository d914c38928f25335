// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"edeck/pkg/api"
)

// WriteText prints one TSV line per query result.
func WriteText(w io.Writer, rows []api.PerformanceV1, header bool) error {
	keys := OutputOrder(rows)
	hasHybrid := false
	for _, r := range rows {
		if r.HybridThrottle != nil {
			hasHybrid = true
		}
	}

	if header {
		cols := []string{"deck", "mach", "altitude_ft", "throttle"}
		if hasHybrid {
			cols = append(cols, "hybrid_throttle")
		}
		cols = append(cols, keys...)
		cols = append(cols, "out_of_envelope")
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}

	for _, r := range rows {
		cells := []string{
			r.Deck,
			formatNum(r.Mach),
			formatNum(r.AltitudeFt),
			formatNum(r.Throttle),
		}
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
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func formatNum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
