// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edeck-core/deck"
	"edeck-core/deckvar"
	"edeck-core/engine"
	"edeck-core/interp"
	"edeck/pkg/api"
)

func sampleRows() []api.PerformanceV1 {
	r1 := ToAPIRow("cf34", engine.Conditions{Mach: 0.8, Altitude: 35000, Throttle: 1},
		false,
		engine.Outputs{deckvar.NetThrust: 4000, deckvar.FuelFlow: 3200},
		interp.Notice{},
		[]deckvar.Variable{deckvar.Mach, deckvar.Altitude, deckvar.Throttle})
	r2 := ToAPIRow("cf34", engine.Conditions{Mach: 0.8, Altitude: 35000, Throttle: 1.2},
		false,
		engine.Outputs{deckvar.NetThrust: 4000},
		interp.Notice{Outside: []int{2}},
		[]deckvar.Variable{deckvar.Mach, deckvar.Altitude, deckvar.Throttle})
	return []api.PerformanceV1{r1, r2}
}

func TestToAPIRow(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, "cf34", rows[0].Deck)
	assert.Equal(t, 4000.0, rows[0].Outputs["thrust_net"])
	assert.False(t, rows[0].OutOfEnvelope)
	assert.Nil(t, rows[0].HybridThrottle)

	assert.True(t, rows[1].OutOfEnvelope)
	assert.Equal(t, []string{"throttle"}, rows[1].OutsideAxes)
}

func TestOutputOrderCanonical(t *testing.T) {
	// FuelFlow precedes NOxRate in the canonical ordering regardless of map
	// iteration order.
	rows := []api.PerformanceV1{{Outputs: map[string]float64{
		"nox_rate": 1, "thrust_net": 2, "fuel_flow": 3,
	}}}
	assert.Equal(t, []string{"thrust_net", "fuel_flow", "nox_rate"}, OutputOrder(rows))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleRows(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "deck\tmach\taltitude_ft\tthrottle\tthrust_net\tfuel_flow\tout_of_envelope", lines[0])
	assert.Equal(t, "cf34\t0.8\t35000\t1\t4000\t3200\tfalse", lines[1])
	// Missing fuel flow leaves an empty cell rather than shifting columns.
	assert.Equal(t, "cf34\t0.8\t35000\t1.2\t4000\t\ttrue", lines[2])
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleRows(), false))
	assert.NotContains(t, buf.String(), "deck\t")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "deck,mach,altitude_ft,throttle,thrust_net,fuel_flow,out_of_envelope", lines[0])
	assert.Equal(t, "cf34,0.8,35000,1.2,4000,,true", lines[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var got []api.PerformanceV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 3200.0, got[0].Outputs["fuel_flow"])
	assert.True(t, got[1].OutOfEnvelope)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestToValidation(t *testing.T) {
	tab, err := deck.Parse(strings.NewReader(
		"Mach, Alt (ft), Throttle, Net Thrust (lbf)\n"+
			"0.0 0 0.5 500\n"+
			"0.0 0 1.0 5000\n"), "mini")
	require.NoError(t, err)

	rep := ToValidation(tab, false)
	assert.Equal(t, "mini", rep.Deck)
	assert.Equal(t, 2, rep.Rows)
	require.Len(t, rep.Columns, 4)
	assert.Equal(t, "thrust_net", rep.Columns[3].Key)
	assert.Equal(t, "lbf", rep.Columns[3].Unit)
	require.Len(t, rep.Envelope, 3)
	assert.Equal(t, 0.5, rep.Envelope[2].Min)
	assert.Equal(t, 1.0, rep.Envelope[2].Max)
	assert.False(t, rep.OnGrid)
}
