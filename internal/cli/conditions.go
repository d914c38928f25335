// internal/cli/conditions.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"edeck-core/engine"
)

// ParseConditions reads one operating point from a comma- or
// whitespace-separated string of 3 or 4 values: mach, altitude (ft),
// throttle and optionally hybrid throttle.
func ParseConditions(s string) (engine.Conditions, bool, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return engine.Conditions{}, false, fmt.Errorf("operating point %q: want 3 or 4 values", s)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return engine.Conditions{}, false, fmt.Errorf("operating point %q: bad value %q", s, f)
		}
		vals[i] = x
	}
	c := engine.Conditions{Mach: vals[0], Altitude: vals[1], Throttle: vals[2]}
	if len(vals) == 4 {
		c.HybridThrottle = vals[3]
		return c, true, nil
	}
	return c, false, nil
}

// LoadConditions reads operating points from a file, one per line, with
// the same comment and blank-line rules as deck files.
func LoadConditions(path string) ([]engine.Conditions, bool, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = fh.Close() }()

	var (
		out       []engine.Conditions
		anyHybrid bool
	)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, hybrid, err := ParseConditions(line)
		if err != nil {
			return nil, false, fmt.Errorf("%s:%d: %v", path, ln, err)
		}
		anyHybrid = anyHybrid || hybrid
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, false, err
	}
	if len(out) == 0 {
		return nil, false, fmt.Errorf("%s: no operating points", path)
	}
	return out, anyHybrid, nil
}
