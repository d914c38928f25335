// internal/render/render_test.go
package render

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edeck-core/deck"
	"edeck/pkg/api"
)

func init() {
	pterm.DisableColor()
}

func TestPerformanceTable(t *testing.T) {
	h := 0.25
	rows := []api.PerformanceV1{
		{Deck: "cf34", Mach: 0.8, AltitudeFt: 35000, Throttle: 1,
			Outputs: map[string]float64{"thrust_net": 4000, "fuel_flow": 3200}},
		{Deck: "cf34", Mach: 0.8, AltitudeFt: 35000, Throttle: 1.2, HybridThrottle: &h,
			Outputs:       map[string]float64{"thrust_net": 4100},
			OutOfEnvelope: true, OutsideAxes: []string{"throttle"}},
	}

	s := PerformanceTable(rows)
	assert.Contains(t, s, "cf34")
	assert.Contains(t, s, "thrust_net")
	assert.Contains(t, s, "Hybrid")
	assert.Contains(t, s, "outside: throttle")
	assert.Contains(t, s, "inside")
	assert.Contains(t, s, "4000")
}

func TestDeckReport(t *testing.T) {
	tab, err := deck.Parse(strings.NewReader(
		"# two-point deck\n"+
			"Mach, Alt (ft), Throttle, Net Thrust (lbf), Custom_Notes\n"+
			"0.0 0 0.5 500 1\n"+
			"0.0 0 1.0 5000 2\n"), "mini")
	require.NoError(t, err)

	s := DeckReport(tab, false)
	assert.Contains(t, s, "mini | 2 rows | 4 columns")
	assert.Contains(t, s, "Net Thrust")
	assert.Contains(t, s, "lbf")
	assert.Contains(t, s, "scattered samples")
	assert.Contains(t, s, "WARN")
	assert.Contains(t, s, "Custom_Notes")
}

func TestDeckReportGrid(t *testing.T) {
	tab, err := deck.Parse(strings.NewReader(
		"0.0 0 0.0 500\n"+
			"0.0 0 1.0 5000\n"), "grid")
	require.NoError(t, err)

	s := DeckReport(tab, true)
	assert.Contains(t, s, "rectilinear grid")
	assert.NotContains(t, s, "WARN")
}
