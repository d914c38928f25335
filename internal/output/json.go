// internal/output/json.go
package output

import (
	"io"

	"edeck/internal/jsonutil"
	"edeck/pkg/api"
)

// WriteJSON writes all rows as a single pretty-printed array.
func WriteJSON(w io.Writer, rows []api.PerformanceV1) error {
	if rows == nil {
		rows = []api.PerformanceV1{}
	}
	return jsonutil.EncodePretty(w, rows)
}
