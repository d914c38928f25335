// internal/writers/performance.go
package writers

import (
	"io"

	"edeck/internal/jsonutil"
	"edeck/internal/output"
	"edeck/pkg/api"
)

func init() {
	RegisterPerformance("text", output.WriteText)
	RegisterPerformance("tsv", output.WriteText)
	RegisterPerformance("csv", output.WriteCSV)
	RegisterPerformance("json", func(w io.Writer, rows []api.PerformanceV1, _ bool) error {
		return output.WriteJSON(w, rows)
	})
	RegisterPerformance("jsonl", func(w io.Writer, rows []api.PerformanceV1, _ bool) error {
		for _, r := range rows {
			if err := jsonutil.EncodeCompact(w, r); err != nil {
				return err
			}
		}
		return nil
	})
}
