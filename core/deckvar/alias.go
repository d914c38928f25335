// core/deckvar/alias.go
package deckvar

import (
	"fmt"
	"strings"
)

// Per-variable alias lists. Lookup keys are normalized (lowercase, internal
// underscores/hyphens/whitespace collapsed to single spaces), so "Fuel_Flow",
// "fuel-flow" and "Fuel  Flow" all land on the same entry.
var aliasLists = map[Variable][]string{
	Mach:           {"mach", "mach number", "mn"},
	Altitude:       {"altitude", "alt"},
	Throttle:       {"throttle", "thr", "power code", "pc"},
	HybridThrottle: {"hybrid throttle", "hybrid", "electric throttle"},
	NetThrust:      {"net thrust", "thrust net", "thrust", "fn"},
	GrossThrust:    {"gross thrust", "thrust gross", "fg"},
	RamDrag:        {"ram drag", "fram"},
	TailpipeThrust: {"tailpipe thrust"},
	ShaftPower:     {"shaft power", "shp"},
	Torque:         {"torque"},
	FuelFlow:       {"fuel flow", "fuel flow rate", "wf", "fuelflow"},
	ElectricPower:  {"electric power", "electric power in", "electrical power"},
	NOxRate:        {"nox rate", "nox"},
	T4Temperature:  {"t4 temperature", "temperature t4", "t4"},
}

var aliasTable = buildAliasTable()

// buildAliasTable flattens aliasLists and enforces the one-owner rule: no
// alias may resolve to two different variables. Violations are programming
// errors, caught at init.
func buildAliasTable() map[string]Variable {
	out := make(map[string]Variable)
	for _, v := range All {
		for _, a := range aliasLists[v] {
			key := normalize(a)
			if prev, dup := out[key]; dup && prev != v {
				panic(fmt.Sprintf("deckvar: alias %q claimed by both %s and %s", key, prev, v))
			}
			out[key] = v
		}
	}
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '_', '-':
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitUnit separates a trailing parenthesized unit annotation from a header
// token: "Alt (ft)" -> ("Alt", "ft"). Headers without an annotation come back
// with an empty unit.
func SplitUnit(header string) (name, unit string) {
	h := strings.TrimSpace(header)
	if strings.HasSuffix(h, ")") {
		if i := strings.LastIndex(h, "("); i >= 0 {
			return strings.TrimSpace(h[:i]), strings.TrimSpace(h[i+1 : len(h)-1])
		}
	}
	return h, ""
}

// Resolve maps a raw column header to a canonical variable. The returned
// unit is the raw inline annotation, if any; it is not validated here.
// ok=false means the header is unrecognized and the column should be dropped
// with a warning.
func Resolve(header string) (v Variable, unit string, ok bool) {
	name, unit := SplitUnit(header)
	v, ok = aliasTable[normalize(name)]
	if !ok {
		return Unrecognized, unit, false
	}
	return v, unit, true
}
