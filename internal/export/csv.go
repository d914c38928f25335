// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"edeck-core/deck"
)

// WriteCSV writes the full deck table as CSV, one column per resolved
// variable with the default unit in the header.
func WriteCSV(w io.Writer, tab *deck.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(tab.Columns))
	for _, v := range tab.Columns {
		if u := v.DefaultUnit(); u != "" && u != "unitless" {
			header = append(header, fmt.Sprintf("%s (%s)", v.String(), u))
			continue
		}
		header = append(header, v.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(tab.Columns))
	for i := 0; i < tab.NumRows(); i++ {
		for j, v := range tab.Columns {
			row[j] = strconv.FormatFloat(tab.Value(i, v), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
