// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeCompact writes v as a single JSON line.
func EncodeCompact(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
