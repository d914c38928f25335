// internal/export/xlsx.go
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"edeck-core/deck"
	"edeck-core/deckvar"
)

// BuildXLSX builds a workbook from the deck: a "Deck" sheet holding the full
// table plus one sheet per dependent variable with just the independent axes
// and that output, which is the layout plotting tools want.
func BuildXLSX(tab *deck.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	const main = "Deck"
	if err := f.SetSheetName(f.GetSheetName(0), main); err != nil {
		return nil, err
	}

	if err := writeSheet(f, main, tab, tab.Columns); err != nil {
		return nil, err
	}
	for _, v := range tab.Dependents() {
		cols := append(append([]deckvar.Variable{}, tab.Independents()...), v)
		sheet := v.String()
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sheet, tab, cols); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, tab *deck.Table, cols []deckvar.Variable) error {
	header := make([]any, len(cols))
	for i, v := range cols {
		if u := v.DefaultUnit(); u != "" && u != "unitless" {
			header[i] = fmt.Sprintf("%s (%s)", v.String(), u)
			continue
		}
		header[i] = v.String()
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < tab.NumRows(); i++ {
		row := make([]any, len(cols))
		for j, v := range cols {
			row[j] = tab.Value(i, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
