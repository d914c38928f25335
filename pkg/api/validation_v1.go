// pkg/api/validation_v1.go
package api

// AxisRangeV1 is the sampled range of one independent variable.
type AxisRangeV1 struct {
	Key string  `json:"key"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ColumnV1 describes one resolved deck column.
type ColumnV1 struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Unit        string `json:"unit"`
	Independent bool   `json:"independent"`
}

// ValidationV1 is the stable JSON schema for a deck validation report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ValidationV1 struct {
	Deck     string        `json:"deck"`
	Rows     int           `json:"rows"`
	Columns  []ColumnV1    `json:"columns"`
	Envelope []AxisRangeV1 `json:"envelope"`
	OnGrid   bool          `json:"on_grid"`
	Warnings []string      `json:"warnings,omitempty"`
}
