// internal/render/render.go
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"edeck-core/deck"
	"edeck-core/deckvar"
	"edeck/internal/output"
	"edeck/pkg/api"
)

// PerformanceTable renders query results as a terminal table.
func PerformanceTable(rows []api.PerformanceV1) string {
	keys := output.OutputOrder(rows)

	hasHybrid := false
	for _, r := range rows {
		if r.HybridThrottle != nil {
			hasHybrid = true
			break
		}
	}

	header := []string{"Deck", "Mach", "Alt (ft)", "Throttle"}
	if hasHybrid {
		header = append(header, "Hybrid")
	}
	header = append(header, keys...)
	header = append(header, "Envelope")

	data := [][]string{header}
	for _, r := range rows {
		row := []string{r.Deck, num(r.Mach), num(r.AltitudeFt), num(r.Throttle)}
		if hasHybrid {
			h := ""
			if r.HybridThrottle != nil {
				h = num(*r.HybridThrottle)
			}
			row = append(row, h)
		}
		for _, k := range keys {
			v, ok := r.Outputs[k]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, num(v))
		}
		if r.OutOfEnvelope {
			row = append(row, pterm.FgYellow.Sprintf("outside: %s", strings.Join(r.OutsideAxes, ",")))
		} else {
			row = append(row, pterm.FgGreen.Sprint("inside"))
		}
		data = append(data, row)
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return plainTable(data)
	}
	return s + "\n"
}

// DeckReport renders a validation summary: column inventory, envelope per
// independent axis and any parse warnings.
func DeckReport(tab *deck.Table, onGrid bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s | %d rows | %d columns", tab.Name, tab.NumRows(), len(tab.Columns))

	cols := [][]string{{"Variable", "Key", "Unit", "Role"}}
	for _, v := range tab.Columns {
		cols = append(cols, []string{v.String(), v.Key(), v.DefaultUnit(), role(v)})
	}
	body, err := pterm.DefaultTable.WithHasHeader().WithData(cols).Srender()
	if err != nil {
		body = plainTable(cols)
	}
	b.WriteString(pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Sprint(body))
	b.WriteString("\n")

	env := [][]string{{"Axis", "Min", "Max"}}
	for _, v := range tab.Independents() {
		lo, hi, ok := tab.Bounds(v)
		if !ok {
			continue
		}
		env = append(env, []string{v.String(), num(lo), num(hi)})
	}
	envBody, err := pterm.DefaultTable.WithHasHeader().WithData(env).Srender()
	if err != nil {
		envBody = plainTable(env)
	}
	layout := "scattered samples"
	if onGrid {
		layout = "rectilinear grid"
	}
	b.WriteString(pterm.DefaultBox.WithTitle("Envelope | " + layout).WithTitleTopLeft().Sprint(envBody))
	b.WriteString("\n")

	for _, w := range tab.Warnings {
		b.WriteString(pterm.FgYellow.Sprintf("WARN: %s", w))
		b.WriteString("\n")
	}
	return b.String()
}

func role(v deckvar.Variable) string {
	if v.Independent() {
		return "independent"
	}
	return "dependent"
}

func num(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// plainTable is the fallback when the terminal renderer fails.
func plainTable(data [][]string) string {
	var b strings.Builder
	for _, row := range data {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}
