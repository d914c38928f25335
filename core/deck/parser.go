// core/deck/parser.go
package deck

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"edeck-core/deckvar"
	"edeck-core/units"
)

// Load reads and parses an engine deck file. The table is named after the
// file stem, matching how decks are referred to elsewhere.
func Load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(fh, stem)
}

// Parse reads a deck from r. Comments (# to end of line) and blank lines are
// stripped. If the first content line is not fully numeric it is treated as
// a header row and resolved through the alias table; otherwise the columns
// are assigned the canonical headerless order (Mach, Altitude, Throttle,
// Net Thrust). Fatal structure problems return *MalformedError and no table;
// recoverable ones (unrecognized columns) are collected as warnings.
func Parse(r io.Reader, name string) (*Table, error) {
	type srcLine struct {
		n    int
		text string
	}
	var lines []srcLine
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, srcLine{ln, text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, malformed(name, 0, "empty deck")
	}

	t := &Table{Name: name, data: map[deckvar.Variable][]float64{}}

	// Column resolution: either an explicit header row or the canonical
	// headerless assignment.
	first := splitRow(lines[0].text)
	var (
		colVars  []deckvar.Variable // Unrecognized marks dropped columns
		colUnits []string
		width    int
	)
	if allNumeric(first) {
		width = len(first)
		if width < len(deckvar.HeaderlessOrder) {
			return nil, malformed(name, lines[0].n,
				"headerless deck has %d columns, need %d (Mach, Altitude, Throttle, Net Thrust)",
				width, len(deckvar.HeaderlessOrder))
		}
		for i := 0; i < width; i++ {
			if i < len(deckvar.HeaderlessOrder) {
				v := deckvar.HeaderlessOrder[i]
				colVars = append(colVars, v)
				colUnits = append(colUnits, "")
				t.RawHeaders = append(t.RawHeaders, v.String())
			} else {
				colVars = append(colVars, deckvar.Unrecognized)
				colUnits = append(colUnits, "")
				t.RawHeaders = append(t.RawHeaders, "")
				t.Warnings = append(t.Warnings, Warning{
					Line:    lines[0].n,
					Message: "headerless deck: extra column " + strconv.Itoa(i+1) + " dropped",
				})
			}
		}
	} else {
		headers := splitHeader(lines[0].text)
		width = len(headers)
		seen := map[deckvar.Variable]string{}
		for _, h := range headers {
			t.RawHeaders = append(t.RawHeaders, h)
			v, unit, ok := deckvar.Resolve(h)
			if !ok {
				colVars = append(colVars, deckvar.Unrecognized)
				colUnits = append(colUnits, "")
				t.Warnings = append(t.Warnings, Warning{
					Line:    lines[0].n,
					Column:  h,
					Message: "unrecognized column " + strconv.Quote(h) + " ignored",
				})
				continue
			}
			if prev, dup := seen[v]; dup {
				return nil, malformed(name, lines[0].n,
					"duplicate column for %s (%q and %q)", v, prev, h)
			}
			seen[v] = h
			colVars = append(colVars, v)
			colUnits = append(colUnits, unit)
		}
		lines = lines[1:]
		if len(lines) == 0 {
			return nil, malformed(name, 0, "deck has a header but no data rows")
		}
	}

	// Row parsing. Every row must match the header width exactly; engine
	// tables are dense and rectangular, so a ragged row fails the parse
	// rather than being skipped.
	raw := make([][]float64, 0, len(lines))
	for _, l := range lines {
		fields := splitRow(l.text)
		if len(fields) != width {
			return nil, malformed(name, l.n, "ragged row: got %d fields, want %d", len(fields), width)
		}
		row := make([]float64, width)
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, malformed(name, l.n, "bad numeric value %q in column %d", f, i+1)
			}
			row[i] = x
		}
		raw = append(raw, row)
	}
	t.rows = len(raw)

	// Column extraction with unit normalization to each variable's default.
	for i, v := range colVars {
		if v == deckvar.Unrecognized {
			continue
		}
		col := make([]float64, t.rows)
		for r := range raw {
			col[r] = raw[r][i]
		}
		if u := colUnits[i]; u != "" {
			def := v.DefaultUnit()
			if _, ok := units.Normalize(u); !ok {
				return nil, malformed(name, 0, "column %s declares unknown unit %q", v, u)
			}
			if !units.Compatible(u, def) {
				return nil, malformed(name, 0, "column %s declares unit %q, incompatible with %s", v, u, def)
			}
			for r := range col {
				x, err := units.Convert(col[r], u, def)
				if err != nil {
					return nil, malformed(name, 0, "column %s: %v", v, err)
				}
				col[r] = x
			}
		}
		t.data[v] = col
		t.Columns = append(t.Columns, v)
	}

	if err := t.validateRequired(); err != nil {
		return nil, err
	}
	return t, nil
}

// validateRequired enforces the presence rules: Mach, Altitude and Throttle
// always; Net Thrust either directly or derived per row from Gross Thrust
// and Ram Drag. When all three thrust columns are present they must agree.
func (t *Table) validateRequired() error {
	for _, v := range []deckvar.Variable{deckvar.Mach, deckvar.Altitude, deckvar.Throttle} {
		if !t.Has(v) {
			return malformed(t.Name, 0, "required variable %s not found", v)
		}
	}

	gross, ram := t.data[deckvar.GrossThrust], t.data[deckvar.RamDrag]
	net, hasNet := t.data[deckvar.NetThrust]
	switch {
	case hasNet && gross != nil && ram != nil:
		const tol = 1e-6
		for i := range net {
			want := gross[i] - ram[i]
			if diff := net[i] - want; diff > tol || diff < -tol {
				return malformed(t.Name, 0,
					"conflicting net-thrust sources: row %d has %s=%g but %s-%s=%g",
					i+1, deckvar.NetThrust, net[i], deckvar.GrossThrust, deckvar.RamDrag, want)
			}
		}
	case !hasNet && gross != nil && ram != nil:
		derived := make([]float64, t.rows)
		for i := range derived {
			derived[i] = gross[i] - ram[i]
		}
		t.data[deckvar.NetThrust] = derived
		t.Columns = append(t.Columns, deckvar.NetThrust)
	case !hasNet:
		return malformed(t.Name, 0,
			"%s not found and not derivable (%s and %s both required)",
			deckvar.NetThrust, deckvar.GrossThrust, deckvar.RamDrag)
	}
	return nil
}

func allNumeric(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

// splitRow tokenizes a data line on whitespace or commas.
func splitRow(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// splitHeader tokenizes a header line. Comma-separated headers may contain
// spaces ("Gross Thrust (lbf)"); whitespace-separated headers use
// underscores for multi-word names, and a bare "(unit)" token is attached
// to the column before it.
func splitHeader(s string) []string {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	var out []string
	for _, f := range strings.Fields(s) {
		if strings.HasPrefix(f, "(") && len(out) > 0 {
			out[len(out)-1] += " " + f
			continue
		}
		out = append(out, f)
	}
	return out
}
