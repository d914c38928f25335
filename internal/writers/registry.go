// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"edeck/pkg/api"
)

// Performance writers, keyed by format string. Registered from
// performance.go in init(); last registration wins.
var performanceWriters = map[string]func(w io.Writer, rows []api.PerformanceV1, header bool) error{}

func RegisterPerformance(format string, fn func(io.Writer, []api.PerformanceV1, bool) error) {
	performanceWriters[format] = fn
}

// Formats lists registered format names (unordered).
func Formats() []string {
	out := make([]string, 0, len(performanceWriters))
	for k := range performanceWriters {
		out = append(out, k)
	}
	return out
}

// Known reports whether a format has a registered writer.
func Known(format string) bool {
	_, ok := performanceWriters[format]
	return ok
}

// WritePerformance dispatches rows to the writer registered for format.
func WritePerformance(format string, w io.Writer, rows []api.PerformanceV1, header bool) error {
	fn, ok := performanceWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}
